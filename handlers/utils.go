package handlers

import (
	"appsus/services"
	"appsus/validator"
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func validationFailed(c *fiber.Ctx, errs validator.ValidationErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  errs.Error(),
		"fields": errs,
	})
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// serviceError maps service errors to HTTP responses, falling back to a 500 with message
func serviceError(c *fiber.Ctx, message string, err error) error {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrs):
		return validationFailed(c, validationErrs)
	case errors.Is(err, services.ErrNoteNotFound):
		return notFound(c, "Note not found")
	case errors.Is(err, services.ErrMailNotFound):
		return notFound(c, "Mail not found")
	case errors.Is(err, services.ErrTodoNotFound):
		return notFound(c, "Todo not found")
	case errors.Is(err, services.ErrInputsRequired):
		return badRequest(c, services.ErrInputsRequired.Error())
	case errors.Is(err, services.ErrNotTodoList):
		return badRequest(c, "Note is not a todo list")
	default:
		return serverErrorWithDetails(c, message, err)
	}
}

func paramIndex(c *fiber.Ctx, name string) (int, bool) {
	index, err := strconv.Atoi(c.Params(name))
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}
