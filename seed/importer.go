package seed

import (
	"appsus/models"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoData []byte

// Store is the part of a collection the importer needs
type Store[T any] interface {
	Count() (int, error)
	Post(entity *T) (*T, error)
}

// Data is the demo content written to empty collections
type Data struct {
	Notes []models.Note `yaml:"notes"`
	Mails []DemoMail    `yaml:"mails"`
}

// DemoMail is a mail whose timestamp is relative to the import time
type DemoMail struct {
	models.Mail `yaml:",inline"`
	HoursAgo    int `yaml:"hoursAgo"`
}

// Importer fills empty note and mail collections with demo content
type Importer struct {
	notes     Store[models.Note]
	mails     Store[models.Mail]
	userEmail string
	logger    *slog.Logger
	now       func() time.Time
}

// NewImporter creates an importer. Demo mails addressed to the default demo user
// are rewritten to userEmail.
func NewImporter(notes Store[models.Note], mails Store[models.Mail], userEmail string, logger *slog.Logger) *Importer {
	return &Importer{
		notes:     notes,
		mails:     mails,
		userEmail: userEmail,
		logger:    logger,
		now:       time.Now,
	}
}

// Load parses the embedded demo data
func Load() (*Data, error) {
	return Parse(demoData)
}

// Parse decodes demo data from YAML
func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse demo data: %w", err)
	}

	for i, note := range data.Notes {
		if !note.Type.Valid() {
			return nil, fmt.Errorf("demo note %d: unknown type %q", i, note.Type)
		}
	}
	return &data, nil
}

// Import writes data into collections that are still empty and reports how many entities were written
func (im *Importer) Import(data *Data) (notes int, mails int, err error) {
	now := im.now()

	notes, err = importInto(im.notes, data.Notes, func(note models.Note, i int) models.Note {
		// Keep the file order when listing newest first
		note.CreatedAt = now.Add(-time.Duration(i) * time.Second)
		note.UpdatedAt = note.CreatedAt
		return note
	})
	if err != nil {
		return 0, 0, fmt.Errorf("import notes: %w", err)
	}

	mails, err = importInto(im.mails, data.Mails, func(demo DemoMail, _ int) models.Mail {
		mail := demo.Mail
		mail.To = im.rewriteAddress(mail.To)
		mail.From = im.rewriteAddress(mail.From)
		mail.SentAt = now.Add(-time.Duration(demo.HoursAgo) * time.Hour)
		mail.UpdatedAt = mail.SentAt
		return mail
	})
	if err != nil {
		return notes, 0, fmt.Errorf("import mails: %w", err)
	}

	im.logger.Info("demo data imported", "notes", notes, "mails", mails)
	return notes, mails, nil
}

// ImportDemo imports the embedded demo data
func (im *Importer) ImportDemo() (int, int, error) {
	data, err := Load()
	if err != nil {
		return 0, 0, err
	}
	return im.Import(data)
}

func (im *Importer) rewriteAddress(addr string) string {
	if im.userEmail != "" && strings.EqualFold(addr, DefaultUserEmail) {
		return im.userEmail
	}
	return addr
}

// DefaultUserEmail is the mailbox the demo mails are written for
const DefaultUserEmail = "user@appsus.com"

func importInto[S any, T any](store Store[T], items []S, build func(item S, i int) T) (int, error) {
	count, err := store.Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	written := 0
	for i, item := range items {
		entity := build(item, i)
		if _, err := store.Post(&entity); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}
