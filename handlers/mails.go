package handlers

import (
	"appsus/app"
	"appsus/models"

	"github.com/gofiber/fiber/v2"
)

// GetMails lists mails of a folder, filtered and sorted
func GetMails(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var criteria models.MailCriteria
		if err := c.QueryParser(&criteria); err != nil {
			return badRequest(c, "Invalid query parameters")
		}
		if err := a.Validator.Validate(criteria); err != nil {
			return serviceError(c, "Invalid query parameters", err)
		}

		mails, err := a.Mails.Query(criteria)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch mails", err)
		}

		return success(c, fiber.Map{"mails": mails})
	}
}

// GetMail retrieves a single mail and marks it read
func GetMail(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mail, err := a.Mails.MarkRead(c.Params("id"))
		if err != nil {
			return serviceError(c, "Failed to fetch mail", err)
		}
		return success(c, fiber.Map{"mail": mail})
	}
}

// SendMail stores an outgoing mail
func SendMail(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SendMailRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		mail, err := a.Mails.Send(req)
		if err != nil {
			return serviceError(c, "Failed to send mail", err)
		}

		return created(c, fiber.Map{"mail": mail})
	}
}

// DeleteMail removes a mail
func DeleteMail(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Mails.Remove(c.Params("id")); err != nil {
			return serviceError(c, "Failed to delete mail", err)
		}

		return success(c, fiber.Map{
			"message": "Mail deleted successfully",
		})
	}
}

// ToggleMailRead flips the read flag
func ToggleMailRead(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mail, err := a.Mails.ToggleRead(c.Params("id"))
		if err != nil {
			return serviceError(c, "Failed to update mail", err)
		}
		return success(c, fiber.Map{"mail": mail})
	}
}

// ToggleMailStar flips the starred flag
func ToggleMailStar(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mail, err := a.Mails.ToggleStar(c.Params("id"))
		if err != nil {
			return serviceError(c, "Failed to update mail", err)
		}
		return success(c, fiber.Map{"mail": mail})
	}
}

// GetUnreadCount returns the number of unread inbox mails
func GetUnreadCount(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := a.Mails.UnreadCount()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to count mails", err)
		}
		return success(c, fiber.Map{"unread": count})
	}
}

// ComposeMail turns subject/body query parameters into a draft
func ComposeMail(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		draft, err := a.Mails.ComposeFromParams(string(c.Request().URI().QueryString()))
		if err != nil {
			return badRequest(c, "Invalid compose parameters")
		}

		return success(c, fiber.Map{
			"draft": draft,
			"from":  a.Mails.Mailbox().Email,
		})
	}
}
