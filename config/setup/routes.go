package setup

import (
	"appsus/app"
	"appsus/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", handlers.HealthCheck(application))

	api := fiberApp.Group("/api")

	notes := api.Group("/notes")
	notes.Get("/", handlers.GetNotes(application))
	notes.Get("/template", handlers.GetTemplateNote(application))
	notes.Post("/", handlers.CreateNote(application))
	notes.Get("/:id", handlers.GetNote(application))
	notes.Put("/:id", handlers.UpdateNote(application))
	notes.Delete("/:id", handlers.DeleteNote(application))
	notes.Post("/:id/pin", handlers.PinNote(application))
	notes.Put("/:id/color", handlers.ColorNote(application))
	notes.Post("/:id/duplicate", handlers.DuplicateNote(application))
	notes.Post("/:id/todos", handlers.AddTodo(application))
	notes.Delete("/:id/todos/:index", handlers.RemoveTodo(application))
	notes.Post("/:id/todos/:index/toggle", handlers.ToggleTodo(application))
	notes.Get("/:id/mail-params", handlers.GetNoteMailParams(application))
	notes.Post("/:id/send", handlers.SendNote(application))

	mails := api.Group("/mails")
	mails.Get("/", handlers.GetMails(application))
	mails.Get("/unread-count", handlers.GetUnreadCount(application))
	mails.Get("/compose", handlers.ComposeMail(application))
	mails.Post("/", handlers.SendMail(application))
	mails.Get("/:id", handlers.GetMail(application))
	mails.Delete("/:id", handlers.DeleteMail(application))
	mails.Post("/:id/read", handlers.ToggleMailRead(application))
	mails.Post("/:id/star", handlers.ToggleMailStar(application))
}
