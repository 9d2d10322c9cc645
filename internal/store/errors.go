package store

import (
	"errors"
	"strings"
)

// ErrNotFound indicates that no record has the requested key
var ErrNotFound = errors.New("store: record not found")

// Field names used in validation errors
const (
	FieldName         = "name"
	FieldDate         = "date"
	FieldNumericValue = "numericValue"
)

// Validation messages shown next to the offending form field
const (
	MsgNameRequired         = "Пожалуйста, введите имя"
	MsgNameTooShort         = "Имя должно содержать минимум 2 символа"
	MsgDateRequired         = "Пожалуйста, выберите дату"
	MsgNumericValueRequired = "Пожалуйста, введите числовое значение"
	MsgNumericValueNegative = "Значение должно быть положительным"
)

// FieldError is a single rule violation on one field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports every field that failed validation. The store is
// never mutated when one is returned.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// For returns the first message reported for field, or "" if the field passed
func (e *ValidationError) For(field string) string {
	if e == nil {
		return ""
	}
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// AsValidationError extracts a *ValidationError from err
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
