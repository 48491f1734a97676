package validate

import "strings"

const (
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldConfirm     = "confirm"
	FieldTerms       = "terms"
	FieldDisplayName = "displayName"
)

type FieldError struct {
	Field   string
	Message string
}

// Errors collects every failed field of a form in the order they were
// checked.
type Errors struct {
	Fields []FieldError
}

func (e *Errors) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Get returns the message for field, or "" when the field passed.
func (e *Errors) Get(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, "; ")
}

// Err returns e as an error, or nil when nothing was added.
func (e *Errors) Err() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}
