package services

import "errors"

// Common service-level errors
var (
	// Note errors
	ErrNoteNotFound   = errors.New("note not found")
	ErrInputsRequired = errors.New("Inputs are required.")
	ErrNotTodoList    = errors.New("note is not a todo list")
	ErrTodoNotFound   = errors.New("todo not found")

	// Mail errors
	ErrMailNotFound = errors.New("mail not found")
)
