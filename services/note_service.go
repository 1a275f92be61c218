package services

import (
	"appsus/models"
	"appsus/storage"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
)

// doneAtLayout is the clock time recorded when a todo is checked off
const doneAtLayout = "15:04:05"

// NoteService handles business logic for notes
type NoteService struct {
	notes     NoteStore
	validator Validator
	logger    *slog.Logger
	now       func() time.Time
}

// NewNoteService creates a new note service
func NewNoteService(notes NoteStore, validator Validator, logger *slog.Logger) *NoteService {
	return &NoteService{
		notes:     notes,
		validator: validator,
		logger:    logger,
		now:       time.Now,
	}
}

// Query lists notes matching filter, pinned notes first and newest first within each group
func (ns *NoteService) Query(filter models.NoteFilter) ([]models.Note, error) {
	notes, err := ns.notes.Query()
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	matched := make([]models.Note, 0, len(notes))
	for _, note := range notes {
		if filter.Type != "" && note.Type != filter.Type {
			continue
		}
		if search != "" && !noteContains(&note, search) {
			continue
		}
		matched = append(matched, note)
	}

	slices.SortStableFunc(matched, func(a, b models.Note) int {
		if a.IsPinned != b.IsPinned {
			if a.IsPinned {
				return -1
			}
			return 1
		}
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})

	return matched, nil
}

// GetTemplateNote returns a blank text note ready to be filled by AddNote
func (ns *NoteService) GetTemplateNote() *models.Note {
	return &models.Note{
		Type:  models.NoteTypeText,
		Info:  models.NoteInfo{},
		Style: models.NoteStyle{BackgroundColor: ""},
	}
}

// GetByID retrieves a single note
func (ns *NoteService) GetByID(noteID string) (*models.Note, error) {
	note, err := ns.notes.Get(noteID)
	if err != nil {
		return nil, notFound(err, ErrNoteNotFound, noteID)
	}
	return note, nil
}

// AddNote fills template with data according to its type and stores it under a new id.
// Missing title or text rejects the note without writing anything.
func (ns *NoteService) AddNote(template *models.Note, data models.NoteData) (*models.Note, error) {
	data.Title = strings.TrimSpace(data.Title)
	data.Txt = strings.TrimSpace(data.Txt)
	if data.Title == "" || data.Txt == "" {
		return nil, ErrInputsRequired
	}
	if err := ns.validator.Validate(data); err != nil {
		return nil, err
	}

	note := template
	if note == nil {
		note = ns.GetTemplateNote()
	}
	if note.Type == "" {
		note.Type = models.NoteTypeText
	}

	note.Info.Title = data.Title
	if err := applyPayload(note, data.Txt); err != nil {
		return nil, err
	}

	now := ns.now()
	note.CreatedAt = now
	note.UpdatedAt = now

	saved, err := ns.notes.Post(note)
	if err != nil {
		return nil, err
	}

	ns.logger.Debug("note added", "note_id", saved.ID, "type", saved.Type)
	return saved, nil
}

// RemoveNote deletes a note
func (ns *NoteService) RemoveNote(noteID string) error {
	if err := ns.notes.Remove(noteID); err != nil {
		return notFound(err, ErrNoteNotFound, noteID)
	}
	return nil
}

// PinNote flips the pinned flag
func (ns *NoteService) PinNote(noteID string) (*models.Note, error) {
	return ns.mutate(noteID, func(note *models.Note) error {
		note.IsPinned = !note.IsPinned
		return nil
	})
}

// ColorNote sets the note background color, a CSS hex color or empty for the default
func (ns *NoteService) ColorNote(noteID, color string) (*models.Note, error) {
	if err := ns.validator.Validate(models.ColorNoteRequest{Color: color}); err != nil {
		return nil, err
	}

	return ns.mutate(noteID, func(note *models.Note) error {
		note.Style.BackgroundColor = color
		return nil
	})
}

// EditNote replaces the title, type and payload of an existing note
func (ns *NoteService) EditNote(req models.EditNoteRequest) (*models.Note, error) {
	return ns.mutate(req.ID, func(note *models.Note) error {
		if req.Type != "" {
			note.Type = req.Type
		}
		note.Info.Title = strings.TrimSpace(req.Title)
		return applyPayload(note, strings.TrimSpace(req.Txt))
	})
}

// DupNote stores an unpinned copy of a note under a new id
func (ns *NoteService) DupNote(noteID string) (*models.Note, error) {
	note, err := ns.GetByID(noteID)
	if err != nil {
		return nil, err
	}

	dup := *note
	dup.Info.Todos = slices.Clone(note.Info.Todos)
	dup.IsPinned = false
	now := ns.now()
	dup.CreatedAt = now
	dup.UpdatedAt = now

	return ns.notes.Post(&dup)
}

// ToggleTodo checks or unchecks the todo at index, stamping the time it was done
func (ns *NoteService) ToggleTodo(noteID string, index int) (*models.Note, error) {
	return ns.mutate(noteID, func(note *models.Note) error {
		if note.Type != models.NoteTypeTodos {
			return ErrNotTodoList
		}
		if index < 0 || index >= len(note.Info.Todos) {
			return fmt.Errorf("%w: index %d", ErrTodoNotFound, index)
		}

		todo := &note.Info.Todos[index]
		todo.IsDone = !todo.IsDone
		if todo.IsDone {
			todo.DoneAt = ns.now().Format(doneAtLayout)
		} else {
			todo.DoneAt = ""
		}
		return nil
	})
}

// AddTodo appends an open item to a todo list
func (ns *NoteService) AddTodo(noteID, txt string) (*models.Note, error) {
	txt = strings.TrimSpace(txt)
	if txt == "" {
		return nil, ErrInputsRequired
	}

	return ns.mutate(noteID, func(note *models.Note) error {
		if note.Type != models.NoteTypeTodos {
			return ErrNotTodoList
		}
		note.Info.Todos = append(note.Info.Todos, models.Todo{Txt: txt})
		return nil
	})
}

// RemoveTodo drops the todo at index
func (ns *NoteService) RemoveTodo(noteID string, index int) (*models.Note, error) {
	return ns.mutate(noteID, func(note *models.Note) error {
		if note.Type != models.NoteTypeTodos {
			return ErrNotTodoList
		}
		if index < 0 || index >= len(note.Info.Todos) {
			return fmt.Errorf("%w: index %d", ErrTodoNotFound, index)
		}
		note.Info.Todos = slices.Delete(note.Info.Todos, index, index+1)
		return nil
	})
}

// mutate runs one read-modify-write cycle on a stored note
func (ns *NoteService) mutate(noteID string, fn func(note *models.Note) error) (*models.Note, error) {
	note, err := ns.GetByID(noteID)
	if err != nil {
		return nil, err
	}

	if err := fn(note); err != nil {
		return nil, err
	}
	note.UpdatedAt = ns.now()

	saved, err := ns.notes.Save(note)
	if err != nil {
		return nil, notFound(err, ErrNoteNotFound, noteID)
	}
	return saved, nil
}

// applyPayload stores txt in the field matching the note type and clears the others
func applyPayload(note *models.Note, txt string) error {
	switch note.Type {
	case models.NoteTypeText:
		note.Info.Txt = txt
		note.Info.URL = ""
		note.Info.Todos = nil
	case models.NoteTypeTodos:
		todos := parseTodos(txt, note.Info.Todos)
		if len(todos) == 0 {
			return ErrInputsRequired
		}
		note.Info.Todos = todos
		note.Info.Txt = ""
		note.Info.URL = ""
	case models.NoteTypeImage:
		note.Info.URL = txt
		note.Info.Txt = ""
		note.Info.Todos = nil
	case models.NoteTypeVideo:
		if id, ok := YouTubeID(txt); ok {
			txt = id
		}
		note.Info.URL = txt
		note.Info.Txt = ""
		note.Info.Todos = nil
	default:
		return fmt.Errorf("unknown note type %q", note.Type)
	}
	return nil
}

// parseTodos splits a comma separated list. An item keeps the state of the existing
// todo at the same position when the text matches, otherwise of the first unused todo
// with that text.
func parseTodos(txt string, existing []models.Todo) []models.Todo {
	used := make([]bool, len(existing))
	match := func(pos int, item string) (models.Todo, bool) {
		if pos < len(existing) && !used[pos] && existing[pos].Txt == item {
			used[pos] = true
			return existing[pos], true
		}
		for i, todo := range existing {
			if !used[i] && todo.Txt == item {
				used[i] = true
				return todo, true
			}
		}
		return models.Todo{}, false
	}

	var todos []models.Todo
	for _, item := range strings.Split(txt, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if todo, ok := match(len(todos), item); ok {
			todos = append(todos, todo)
			continue
		}
		todos = append(todos, models.Todo{Txt: item})
	}
	return todos
}

func noteContains(note *models.Note, search string) bool {
	fields := []string{note.Info.Title, note.Info.Txt, note.Info.URL}
	for _, todo := range note.Info.Todos {
		fields = append(fields, todo.Txt)
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// notFound translates storage misses into the service sentinel
func notFound(err, sentinel error, id string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", sentinel, id)
	}
	return err
}
