package book

import (
	"regexp"

	"github.com/tartampluch/go-addressbook/internal/config"
)

var phoneRe = regexp.MustCompile(config.PhonePattern)

// PhoneNumber is a validated phone number: exactly ten ASCII digits.
// The zero value is not a valid number; use NewPhoneNumber.
type PhoneNumber struct {
	digits string
}

// NewPhoneNumber validates raw and wraps it. No separators, spaces or a
// leading "+" are accepted.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	if !phoneRe.MatchString(raw) {
		return PhoneNumber{}, NewValidationError(config.FieldPhone, config.ErrPhoneFormat)
	}
	return PhoneNumber{digits: raw}, nil
}

// String returns the digits.
func (p PhoneNumber) String() string {
	return p.digits
}
