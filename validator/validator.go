package validator

import (
	"appsus/models"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag"`
	Value   string `json:"value,omitempty"`
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// New creates a new validator instance
func New() *Validator {
	v := validator.New()

	// Prefer JSON names, then query names, so messages match what the client sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return ""
	})

	v.RegisterValidation("notetype", validateNoteType)
	v.RegisterValidation("notecolor", validateNoteColor)
	v.RegisterValidation("mailfolder", validateMailFolder)
	v.RegisterValidation("sortkey", validateSortKey)

	return &Validator{validate: v}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var validationErrs ValidationErrors
	for _, fe := range fieldErrs {
		validationErrs = append(validationErrs, ValidationError{
			Field:   fe.Field(),
			Message: msgForTag(fe),
			Tag:     fe.Tag(),
			Value:   fmt.Sprintf("%v", fe.Value()),
		})
	}

	return validationErrs
}

// msgForTag returns a human-readable error message for a validation tag
func msgForTag(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_without":
		return fmt.Sprintf("%s is required when %s is empty", field, strings.ToLower(fe.Param()))
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "notetype":
		return fmt.Sprintf("%s must be one of: text, img, vid, todos", field)
	case "notecolor":
		return fmt.Sprintf("%s must be a hex color such as #faf0e6", field)
	case "mailfolder":
		return fmt.Sprintf("%s must be one of: all, inbox, sent, starred, unread", field)
	case "sortkey":
		return fmt.Sprintf("%s must be one of: title, date, subject, from", field)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// Custom validators

func validateNoteType(fl validator.FieldLevel) bool {
	return models.NoteType(fl.Field().String()).Valid()
}

func validateNoteColor(fl validator.FieldLevel) bool {
	return hexColorPattern.MatchString(fl.Field().String())
}

func validateMailFolder(fl validator.FieldLevel) bool {
	switch models.MailFolder(fl.Field().String()) {
	case models.FolderAll, models.FolderInbox, models.FolderSent, models.FolderStarred, models.FolderUnread:
		return true
	}
	return false
}

func validateSortKey(fl validator.FieldLevel) bool {
	switch models.MailSortKey(fl.Field().String()) {
	case models.SortByTitle, models.SortByDate, models.SortBySubject, models.SortByFrom:
		return true
	}
	return false
}
