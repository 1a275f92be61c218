package setup

import (
	"appsus/app"
	"appsus/config"
	"appsus/database"
	"appsus/models"
	"appsus/seed"
	"appsus/services"
	"appsus/storage"
	"log/slog"
)

// InitDatabase opens the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp wires the storage collections, services and demo data
func InitApp(db *database.DB, cfg *config.Config, logger *slog.Logger) (*app.App, error) {
	repo := database.NewRepository(db)

	if cfg.SeedDemoData {
		importer := seed.NewImporter(
			storage.NewCollection[models.Note](repo, storage.NotesKey),
			storage.NewCollection[models.Mail](repo, storage.MailsKey),
			cfg.UserEmail,
			logger,
		)
		if _, _, err := importer.ImportDemo(); err != nil {
			return nil, err
		}
	}

	mailbox := services.Mailbox{Email: cfg.UserEmail, Name: cfg.UserName}
	application := app.New(repo, mailbox, logger)
	logger.Info("application initialized", "mailbox", mailbox.Email)

	return application, nil
}

// Shutdown closes the database
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
