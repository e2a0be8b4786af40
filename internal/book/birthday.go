package book

import (
	"regexp"
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

var birthdayRe = regexp.MustCompile(config.BirthdayPattern)

// Birthday is a calendar date (no time of day) parsed from DD.MM.YYYY.
type Birthday struct {
	date time.Time // midnight UTC of the birth date
}

// ParseBirthday parses raw strictly as DD.MM.YYYY. Impossible dates such as
// 31.02.2000 are rejected together with malformed input.
func ParseBirthday(raw string) (Birthday, error) {
	if !birthdayRe.MatchString(raw) {
		return Birthday{}, NewValidationError(config.FieldBirthday, config.ErrDateFormat)
	}
	t, err := time.Parse(config.DateFormatBirthday, raw)
	if err != nil {
		return Birthday{}, NewValidationError(config.FieldBirthday, config.ErrDateFormat)
	}
	return Birthday{date: t}, nil
}

// String formats the birthday back to DD.MM.YYYY.
func (b Birthday) String() string {
	return b.date.Format(config.DateFormatBirthday)
}

// Date returns the birth date at midnight UTC.
func (b Birthday) Date() time.Time {
	return b.date
}

// NextOccurrence returns the first anniversary on or after today's calendar date.
// Only the year, month and day of today are used.
//
// February 29 is observed on March 1 in non-leap years: time.Date normalizes
// the overflowing day.
func (b Birthday) NextOccurrence(today time.Time) time.Time {
	day := civilDate(today)
	candidate := time.Date(day.Year(), b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Before(day) {
		candidate = time.Date(day.Year()+1, b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	}
	return candidate
}

// DaysUntil returns the whole days from today to the next anniversary.
// It is 0 on the anniversary and never negative.
func (b Birthday) DaysUntil(today time.Time) int {
	next := b.NextOccurrence(today)
	return int(next.Sub(civilDate(today)).Hours() / config.HoursPerDay)
}

// civilDate drops the clock and the location of t, keeping its local calendar date.
// Arithmetic happens in UTC so that DST shifts never produce partial days.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
