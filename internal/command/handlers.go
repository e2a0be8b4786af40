package command

import (
	"strconv"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/export"
)

func (d *Dispatcher) hello(_ []string, _ *book.Directory) (string, error) {
	return d.msg(config.TKeyHello, nil), nil
}

func (d *Dispatcher) help(_ []string, _ *book.Directory) (string, error) {
	return d.msg(config.TKeyHelp, nil), nil
}

func (d *Dispatcher) goodbye(_ []string, _ *book.Directory) (string, error) {
	return d.msg(config.TKeyGoodbye, nil), nil
}

// addContact appends a phone to an existing contact or creates the contact.
// The phone is validated first so that a bad number never creates a record.
func (d *Dispatcher) addContact(args []string, dir *book.Directory) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]

	if _, err := book.NewPhoneNumber(phone); err != nil {
		return "", err
	}

	key := config.TKeyContactUpdated
	rec, err := dir.Find(name)
	if err != nil {
		rec = book.NewRecord(name)
		dir.Add(rec)
		key = config.TKeyContactAdded
	}

	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	return d.msg(key, nil), nil
}

func (d *Dispatcher) changeContact(args []string, dir *book.Directory) (string, error) {
	if err := requireArgs(args, 3); err != nil {
		return "", err
	}
	rec, err := dir.Find(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return d.msg(config.TKeyPhoneChanged, map[string]any{"Old": args[1], "New": args[2]}), nil
}

func (d *Dispatcher) showPhones(args []string, dir *book.Directory) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	rec, err := dir.Find(args[0])
	if err != nil {
		return "", err
	}
	phones := rec.PhoneList()
	if phones == "" {
		return d.msg(config.TKeyNoPhones, map[string]any{"Name": rec.Name()}), nil
	}
	return phones, nil
}

func (d *Dispatcher) removePhone(args []string, dir *book.Directory) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	rec, err := dir.Find(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.RemovePhone(args[1]); err != nil {
		return "", err
	}
	return d.msg(config.TKeyPhoneRemoved, map[string]any{"Phone": args[1]}), nil
}

func (d *Dispatcher) deleteContact(args []string, dir *book.Directory) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	rec, err := dir.Find(args[0])
	if err != nil {
		return "", err
	}
	if err := dir.Delete(rec.Name()); err != nil {
		return "", err
	}
	return d.msg(config.TKeyContactDeleted, map[string]any{"Name": rec.Name()}), nil
}

func (d *Dispatcher) showAll(_ []string, dir *book.Directory) (string, error) {
	if dir.Len() == 0 {
		return d.msg(config.TKeyBookEmpty, nil), nil
	}
	lines := make([]string, 0, dir.Len())
	for _, rec := range dir.Records() {
		lines = append(lines, rec.String())
	}
	return strings.Join(lines, config.RecordSeparator), nil
}

func (d *Dispatcher) addBirthday(args []string, dir *book.Directory) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	rec, err := dir.Find(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.AddBirthday(args[1]); err != nil {
		return "", err
	}
	bday, _ := rec.Birthday()
	return d.msg(config.TKeyBirthdayAdded, map[string]any{"Name": rec.Name(), "Date": bday.String()}), nil
}

func (d *Dispatcher) showBirthday(args []string, dir *book.Directory) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	rec, err := dir.Find(args[0])
	if err != nil {
		return "", err
	}
	bday, ok := rec.Birthday()
	if !ok {
		return d.msg(config.TKeyBirthdayNotSet, map[string]any{"Name": rec.Name()}), nil
	}
	return d.msg(config.TKeyBirthdayShow, map[string]any{"Name": rec.Name(), "Date": bday.String()}), nil
}

// birthdays lists contacts whose birthday falls within the window. An optional
// first argument overrides the configured window.
func (d *Dispatcher) birthdays(args []string, dir *book.Directory) (string, error) {
	window := d.Window
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return "", book.NewValidationError(config.FieldWindow, config.ErrWindowFormat)
		}
		window = n
	}

	upcoming := dir.UpcomingBirthdays(window, d.Clock.Now())
	if len(upcoming) == 0 {
		return d.msg(config.TKeyNoBirthdays, map[string]any{"Days": window}), nil
	}

	lines := make([]string, 0, len(upcoming))
	for _, u := range upcoming {
		if u.Days == 0 {
			lines = append(lines, d.msg(config.TKeyBirthdayToday, map[string]any{"Name": u.Name}))
			continue
		}
		lines = append(lines, d.msg(config.TKeyBirthdayLine, map[string]any{"Name": u.Name, "Days": u.Days}))
	}
	return strings.Join(lines, config.RecordSeparator), nil
}

func (d *Dispatcher) vcard(args []string, dir *book.Directory) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	rec, err := dir.Find(args[0])
	if err != nil {
		return "", err
	}
	card, err := export.VCard(rec)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(card, "\r\n"), nil
}

func (d *Dispatcher) calendar(_ []string, dir *book.Directory) (string, error) {
	gen := &export.Generator{
		Clock:           d.Clock,
		FormatSummary:   d.eventSummary,
		ReminderTrigger: d.Reminder,
	}
	ics, err := gen.Calendar(dir)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(ics), "\r\n"), nil
}

// eventSummary localizes calendar event titles; age 0 is the birth itself.
func (d *Dispatcher) eventSummary(name string, age int) string {
	if age == 0 {
		return d.msg(config.TKeyEvtSummary, map[string]any{"Name": name})
	}
	return d.msg(config.TKeyEvtSummaryAge, map[string]any{"Name": name, "Age": age})
}
