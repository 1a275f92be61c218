package handlers

import (
	"appsus/app"
	"appsus/models"
	"appsus/services"

	"github.com/gofiber/fiber/v2"
)

// GetNotes lists notes, optionally filtered by type and search text
func GetNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filter models.NoteFilter
		if err := c.QueryParser(&filter); err != nil {
			return badRequest(c, "Invalid query parameters")
		}
		if err := a.Validator.Validate(filter); err != nil {
			return serviceError(c, "Invalid query parameters", err)
		}

		notes, err := a.Notes.Query(filter)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch notes", err)
		}

		return success(c, fiber.Map{"notes": notes})
	}
}

// GetTemplateNote returns a blank note for the editor
func GetTemplateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return success(c, fiber.Map{"note": a.Notes.GetTemplateNote()})
	}
}

// GetNote retrieves a single note
func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		note, err := a.Notes.GetByID(c.Params("id"))
		if err != nil {
			return serviceError(c, "Failed to fetch note", err)
		}
		return success(c, fiber.Map{"note": note})
	}
}

// CreateNote fills a template note with the request and stores it
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return serviceError(c, "Invalid request body", err)
		}

		template := a.Notes.GetTemplateNote()
		if req.Type != "" {
			template.Type = req.Type
		}

		note, err := a.Notes.AddNote(template, models.NoteData{Title: req.Title, Txt: req.Txt})
		if err != nil {
			return serviceError(c, "Failed to save note", err)
		}

		return created(c, fiber.Map{"note": note})
	}
}

// UpdateNote edits title, type and payload of a note
func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.EditNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		req.ID = c.Params("id")
		if err := a.Validator.Validate(req); err != nil {
			return serviceError(c, "Invalid request body", err)
		}

		note, err := a.Notes.EditNote(req)
		if err != nil {
			return serviceError(c, "Failed to update note", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// DeleteNote removes a note
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Notes.RemoveNote(c.Params("id")); err != nil {
			return serviceError(c, "Failed to delete note", err)
		}

		return success(c, fiber.Map{
			"message": "Note deleted successfully",
		})
	}
}

// PinNote toggles the pinned flag
func PinNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		note, err := a.Notes.PinNote(c.Params("id"))
		if err != nil {
			return serviceError(c, "Failed to pin note", err)
		}
		return success(c, fiber.Map{"note": note})
	}
}

// ColorNote sets the background color
func ColorNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ColorNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return serviceError(c, "Invalid request body", err)
		}

		note, err := a.Notes.ColorNote(c.Params("id"), req.Color)
		if err != nil {
			return serviceError(c, "Failed to color note", err)
		}
		return success(c, fiber.Map{"note": note})
	}
}

// DuplicateNote stores an unpinned copy
func DuplicateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		note, err := a.Notes.DupNote(c.Params("id"))
		if err != nil {
			return serviceError(c, "Failed to duplicate note", err)
		}
		return created(c, fiber.Map{"note": note})
	}
}

// AddTodo appends an item to a todo list
func AddTodo(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.AddTodoRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return serviceError(c, "Invalid request body", err)
		}

		note, err := a.Notes.AddTodo(c.Params("id"), req.Txt)
		if err != nil {
			return serviceError(c, "Failed to add todo", err)
		}
		return success(c, fiber.Map{"note": note})
	}
}

// ToggleTodo checks or unchecks a todo
func ToggleTodo(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		index, ok := paramIndex(c, "index")
		if !ok {
			return badRequest(c, "index must be a non-negative integer")
		}

		note, err := a.Notes.ToggleTodo(c.Params("id"), index)
		if err != nil {
			return serviceError(c, "Failed to toggle todo", err)
		}
		return success(c, fiber.Map{"note": note})
	}
}

// RemoveTodo drops a todo from the list
func RemoveTodo(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		index, ok := paramIndex(c, "index")
		if !ok {
			return badRequest(c, "index must be a non-negative integer")
		}

		note, err := a.Notes.RemoveTodo(c.Params("id"), index)
		if err != nil {
			return serviceError(c, "Failed to remove todo", err)
		}
		return success(c, fiber.Map{"note": note})
	}
}

// GetNoteMailParams returns the mail compose fields for a note
func GetNoteMailParams(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		note, err := a.Notes.GetByID(c.Params("id"))
		if err != nil {
			return serviceError(c, "Failed to fetch note", err)
		}
		return success(c, fiber.Map{"params": services.PrepareParams(note)})
	}
}

// SendNote mails a note, to the local user unless a recipient is given
func SendNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			To string `json:"to"`
		}
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return badRequest(c, "Invalid request body")
			}
		}

		note, err := a.Notes.GetByID(c.Params("id"))
		if err != nil {
			return serviceError(c, "Failed to fetch note", err)
		}

		mail, err := a.Mails.SendNote(note, req.To)
		if err != nil {
			return serviceError(c, "Failed to send note", err)
		}

		return created(c, fiber.Map{"mail": mail})
	}
}
