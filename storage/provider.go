package storage

import "errors"

// Collection keys used by the applications.
const (
	NotesKey = "notesStorage"
	MailsKey = "mailsStorage"
)

var (
	ErrNotFound    = errors.New("entity not found")
	ErrDuplicateID = errors.New("entity id already exists")
	ErrMissingID   = errors.New("entity id is required")
)

// Record is a single stored entity in its encoded form.
type Record struct {
	ID   string
	Data []byte
}

// Provider is the interface for local key-value backends.
// Entities live in named collections and are addressed by id.
type Provider interface {
	// Query returns every record of a collection in insertion order
	Query(collection string) ([]Record, error)

	// Get returns a single record or ErrNotFound
	Get(collection, id string) (*Record, error)

	// Insert stores a new record, failing with ErrDuplicateID if the id is taken
	Insert(collection string, rec Record) error

	// Update replaces the data of an existing record or returns ErrNotFound
	Update(collection string, rec Record) error

	// Delete removes a record or returns ErrNotFound
	Delete(collection, id string) error

	// Count returns the number of records in a collection
	Count(collection string) (int, error)
}
