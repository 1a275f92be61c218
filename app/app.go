package app

import (
	"appsus/database"
	"appsus/models"
	"appsus/services"
	"appsus/storage"
	"appsus/validator"
	"log/slog"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo      *database.Repository
	Notes     *services.NoteService
	Mails     *services.MailService
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, mailbox services.Mailbox, logger *slog.Logger) *App {
	v := validator.New()

	notes := storage.NewCollection[models.Note](repo, storage.NotesKey)
	mails := storage.NewCollection[models.Mail](repo, storage.MailsKey)

	return &App{
		Repo:      repo,
		Notes:     services.NewNoteService(notes, v, logger),
		Mails:     services.NewMailService(mails, mailbox, v, logger),
		Validator: v,
		Logger:    logger,
	}
}
