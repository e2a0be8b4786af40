package book

import (
	"slices"
	"strings"
	"time"
)

// Upcoming is one entry of an upcoming-birthdays query.
type Upcoming struct {
	Name string
	Days int
}

// Directory is the address book: records keyed by lowercase name.
// Iteration follows the order in which each key was first added.
//
// A Directory is not safe for concurrent use; the command loop owns it.
type Directory struct {
	records map[string]*Record
	order   []string
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{records: make(map[string]*Record)}
}

// Add stores rec under its lowercase name, replacing any record already there.
// A replaced record keeps its position.
func (d *Directory) Add(rec *Record) {
	key := strings.ToLower(rec.Name())
	if _, exists := d.records[key]; !exists {
		d.order = append(d.order, key)
	}
	d.records[key] = rec
}

// Find looks name up case-insensitively.
func (d *Directory) Find(name string) (*Record, error) {
	rec, ok := d.records[strings.ToLower(name)]
	if !ok {
		return nil, ErrContactNotFound
	}
	return rec, nil
}

// Delete removes the record stored under name.
func (d *Directory) Delete(name string) error {
	key := strings.ToLower(name)
	if _, ok := d.records[key]; !ok {
		return ErrContactNotFound
	}
	delete(d.records, key)
	d.order = slices.DeleteFunc(d.order, func(k string) bool { return k == key })
	return nil
}

// Len returns the number of records.
func (d *Directory) Len() int {
	return len(d.records)
}

// Records returns the records in insertion order.
func (d *Directory) Records() []*Record {
	out := make([]*Record, 0, len(d.order))
	for _, key := range d.order {
		out = append(out, d.records[key])
	}
	return out
}

// UpcomingBirthdays lists the records whose next birthday is within
// [0, windowDays] days of today, in insertion order. A negative window
// matches nothing.
func (d *Directory) UpcomingBirthdays(windowDays int, today time.Time) []Upcoming {
	var result []Upcoming
	for _, rec := range d.Records() {
		days, ok := rec.DaysToBirthday(today)
		if !ok {
			continue
		}
		if days >= 0 && days <= windowDays {
			result = append(result, Upcoming{Name: rec.Name(), Days: days})
		}
	}
	return result
}
