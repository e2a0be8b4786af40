package book

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Record is one contact: a display name, an ordered list of phones and an
// optional birthday. The name is kept verbatim; lookups lowercase it.
type Record struct {
	name     string
	phones   []PhoneNumber
	birthday *Birthday
}

// NewRecord creates a record with no phones and no birthday.
func NewRecord(name string) *Record {
	return &Record{name: name}
}

// Name returns the name as it was entered.
func (r *Record) Name() string {
	return r.name
}

// Phones returns a copy of the phones in insertion order.
func (r *Record) Phones() []PhoneNumber {
	return slices.Clone(r.phones)
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates raw and appends it. Duplicates are allowed.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhoneNumber(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to raw.
func (r *Record) RemovePhone(raw string) error {
	i := r.indexOf(raw)
	if i < 0 {
		return ErrPhoneNotFound
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return nil
}

// EditPhone replaces the first phone equal to oldRaw with newRaw, keeping its
// position. A missing oldRaw wins over an invalid newRaw.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	i := r.indexOf(oldRaw)
	if i < 0 {
		return ErrPhoneNotFound
	}
	p, err := NewPhoneNumber(newRaw)
	if err != nil {
		return err
	}
	r.phones[i] = p
	return nil
}

// FindPhone returns the first phone equal to raw.
func (r *Record) FindPhone(raw string) (PhoneNumber, error) {
	i := r.indexOf(raw)
	if i < 0 {
		return PhoneNumber{}, ErrPhoneNotFound
	}
	return r.phones[i], nil
}

// AddBirthday parses raw and replaces any birthday already set.
func (r *Record) AddBirthday(raw string) error {
	b, err := ParseBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// DaysToBirthday returns the days until the next anniversary, or false when
// no birthday is set.
func (r *Record) DaysToBirthday(today time.Time) (int, bool) {
	if r.birthday == nil {
		return 0, false
	}
	return r.birthday.DaysUntil(today), true
}

// PhoneList joins the phones with "; ", or returns "" when there are none.
func (r *Record) PhoneList() string {
	parts := make([]string, len(r.phones))
	for i, p := range r.phones {
		parts[i] = p.String()
	}
	return strings.Join(parts, config.PhoneSeparator)
}

// String renders a single-line summary of the record.
func (r *Record) String() string {
	phones := r.PhoneList()
	if phones == "" {
		phones = config.MarkerNoPhones
	}
	bday := config.MarkerNoData
	if r.birthday != nil {
		bday = r.birthday.String()
	}
	return fmt.Sprintf(config.FormatRecord, r.name, phones, bday)
}

func (r *Record) indexOf(raw string) int {
	return slices.IndexFunc(r.phones, func(p PhoneNumber) bool {
		return p.digits == raw
	})
}
