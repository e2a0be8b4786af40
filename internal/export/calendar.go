package export

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// Generator renders the birthdays of a directory as an iCalendar feed.
type Generator struct {
	Clock book.Clock // Interface for time mocking.

	// FormatSummary allows the command layer to inject localized strings.
	FormatSummary func(name string, age int) string

	// ReminderTrigger is an ISO8601 duration (e.g. "-P1D"). Empty disables alarms.
	ReminderTrigger string
}

// Calendar builds the feed. Every contact with a birthday gets one all-day
// event for the previous, current and next year, skipping years before birth.
// A directory without birthdays yields a valid empty VCALENDAR.
func (g *Generator) Calendar(dir *book.Directory) ([]byte, error) {
	start := time.Now()

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, rec := range dir.Records() {
		bday, ok := rec.Birthday()
		if !ok {
			continue
		}
		for _, e := range g.createEvents(rec.Name(), bday, now) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgCalendarBuilt,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyEvents, len(cal.Children),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// createEvents generates events for CurrentYear-1, CurrentYear and CurrentYear+1.
func (g *Generator) createEvents(name string, bday book.Birthday, now time.Time) []*ical.Event {
	birthDate := bday.Date()
	currentYear := now.Year()

	// Deterministic UID generation for stability across exports
	input := fmt.Sprintf(config.FormatHashInput, name, bday.String(), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])

	var events []*ical.Event
	for _, y := range []int{currentYear - 1, currentYear, currentYear + 1} {
		if y < birthDate.Year() {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))

		age := y - birthDate.Year()
		summary := fmt.Sprintf("%s (%d)", name, age)
		if g.FormatSummary != nil {
			summary = g.FormatSummary(name, age)
		}
		event.Props.SetText(config.PropSummary, summary)

		// Feb 29 becomes Mar 1 in common years, matching book.Birthday.
		eventDate := time.Date(y, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)

		if g.ReminderTrigger != "" {
			addAlarm(event, g.ReminderTrigger, summary)
		}

		events = append(events, event)
	}
	return events
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
