package services

import "appsus/models"

// NoteStore defines the interface for note data access
type NoteStore interface {
	Query() ([]models.Note, error)
	Get(id string) (*models.Note, error)
	Post(note *models.Note) (*models.Note, error)
	Save(note *models.Note) (*models.Note, error)
	Remove(id string) error
}

// MailStore defines the interface for mail data access
type MailStore interface {
	Query() ([]models.Mail, error)
	Get(id string) (*models.Mail, error)
	Post(mail *models.Mail) (*models.Mail, error)
	Save(mail *models.Mail) (*models.Mail, error)
	Remove(id string) error
}

// Validator validates request structs
type Validator interface {
	Validate(i interface{}) error
}
