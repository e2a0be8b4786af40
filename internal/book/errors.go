package book

import (
	"errors"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Sentinel errors for lookups that found nothing.
var (
	ErrContactNotFound = errors.New(config.ErrContactNotFound)
	ErrPhoneNotFound   = errors.New(config.ErrPhoneNotFound)
)

// ValidationError reports input that violates a value type's format.
// Field names the value that failed (config.FieldPhone, config.FieldBirthday, ...).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// IsValidationError reports whether err is a ValidationError for field.
// An empty field matches any ValidationError.
func IsValidationError(err error, field string) bool {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	return field == "" || ve.Field == field
}
