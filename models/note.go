package models

import "time"

type NoteType string

const (
	NoteTypeText  NoteType = "text"
	NoteTypeImage NoteType = "img"
	NoteTypeVideo NoteType = "vid"
	NoteTypeTodos NoteType = "todos"
)

// Valid reports whether t is a known note type.
func (t NoteType) Valid() bool {
	switch t {
	case NoteTypeText, NoteTypeImage, NoteTypeVideo, NoteTypeTodos:
		return true
	}
	return false
}

type Todo struct {
	Txt    string `json:"txt" yaml:"txt"`
	IsDone bool   `json:"isDone" yaml:"isDone"`
	DoneAt string `json:"doneAt" yaml:"doneAt"`
}

type NoteInfo struct {
	Title string `json:"title" yaml:"title"`
	Txt   string `json:"txt,omitempty" yaml:"txt"`
	URL   string `json:"url,omitempty" yaml:"url"`
	Todos []Todo `json:"todos,omitempty" yaml:"todos"`
}

type NoteStyle struct {
	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor"`
}

type Note struct {
	ID        string    `json:"id" yaml:"-"`
	Type      NoteType  `json:"type" yaml:"type"`
	Info      NoteInfo  `json:"info" yaml:"info"`
	Style     NoteStyle `json:"style" yaml:"style"`
	IsPinned  bool      `json:"isPinned" yaml:"isPinned"`
	CreatedAt time.Time `json:"createdAt" yaml:"-"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"-"`
}

func (n *Note) EntityID() string      { return n.ID }
func (n *Note) SetEntityID(id string) { n.ID = id }

// NoteData is the user input used to fill a note template.
type NoteData struct {
	Title string `json:"title" validate:"required,max=300"`
	Txt   string `json:"txt" validate:"required"`
}

type CreateNoteRequest struct {
	Type  NoteType `json:"type" validate:"omitempty,notetype"`
	Title string   `json:"title" validate:"max=300"`
	Txt   string   `json:"txt"`
}

type EditNoteRequest struct {
	ID    string   `json:"id"`
	Type  NoteType `json:"type" validate:"required,notetype"`
	Title string   `json:"title" validate:"max=300"`
	Txt   string   `json:"txt"`
}

type ColorNoteRequest struct {
	Color string `json:"color" validate:"omitempty,notecolor"`
}

type AddTodoRequest struct {
	Txt string `json:"txt" validate:"required,max=500"`
}

// NoteFilter narrows a note listing.
type NoteFilter struct {
	Type   NoteType `query:"type" validate:"omitempty,notetype"`
	Search string   `query:"search"`
}

// MailParams are the compose fields derived from a note.
type MailParams struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Query   string `json:"query"`
}
