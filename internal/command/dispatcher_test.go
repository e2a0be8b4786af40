package command_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/command"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

func newDispatcher(t *testing.T, lang string, now time.Time) *command.Dispatcher {
	t.Helper()
	bundle, _, err := command.LoadBundle()
	require.NoError(t, err)
	return command.NewDispatcher(command.NewLocalizer(bundle, lang), MockClock{CurrentTime: now}, 7)
}

// run feeds a raw line through Parse and Dispatch, the way the command loop does.
func run(d *command.Dispatcher, dir *book.Directory, line string) string {
	cmd, args := command.Parse(line)
	return d.Dispatch(cmd, args, dir)
}

var today = time.Date(2025, 4, 2, 9, 30, 0, 0, time.Local)

func TestParse(t *testing.T) {
	tests := []struct {
		line     string
		wantCmd  string
		wantArgs []string
	}{
		{"add John 1234567890", "add", []string{"John", "1234567890"}},
		{"  ADD   John\t1234567890  ", "add", []string{"John", "1234567890"}},
		{"Show-Birthday JOHN", "show-birthday", []string{"JOHN"}},
		{"all", "all", []string{}},
		{"", "", nil},
		{"   \t ", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, args := command.Parse(tt.line)
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestDispatch_AddInvalidPhone(t *testing.T) {
	d := newDispatcher(t, "en", today)
	dir := book.NewDirectory()

	out := d.Dispatch("add", []string{"Mary", "123"}, dir)

	assert.Equal(t, "Phone number must consist of exactly 10 digits.", out)
	_, err := dir.Find("Mary")
	assert.ErrorIs(t, err, book.ErrContactNotFound, "A rejected phone must not create the contact")
	assert.Equal(t, 0, dir.Len())
}

func TestDispatch_AddInvalidPhoneKeepsExistingContact(t *testing.T) {
	d := newDispatcher(t, "en", today)
	dir := book.NewDirectory()
	require.Equal(t, "Contact added.", run(d, dir, "add Mary 1111111111"))

	assert.Equal(t, "Phone number must consist of exactly 10 digits.", run(d, dir, "add mary +380501234567"))

	rec, err := dir.Find("Mary")
	require.NoError(t, err)
	assert.Len(t, rec.Phones(), 1)
}

func TestDispatch_AddThenUpdate(t *testing.T) {
	d := newDispatcher(t, "en", today)
	dir := book.NewDirectory()

	assert.Equal(t, "Contact added.", run(d, dir, "add John 1234567890"))
	assert.Equal(t, "Contact updated.", run(d, dir, "add JOHN 5555555555"))
	assert.Equal(t, "1234567890; 5555555555", run(d, dir, "phone john"))
	assert.Equal(t, 1, dir.Len())

	rec, err := dir.Find("john")
	require.NoError(t, err)
	assert.Equal(t, "John", rec.Name(), "The first spelling is kept for display")
}

func TestDispatch_ShowBirthdayUnknownContact(t *testing.T) {
	d := newDispatcher(t, "en", today)

	out := d.Dispatch("show-birthday", []string{"Unknown"}, book.NewDirectory())
	assert.Equal(t, "Contact not found.", out)
}

func TestDispatch_MissingArguments(t *testing.T) {
	d := newDispatcher(t, "en", today)
	dir := book.NewDirectory()

	lines := []string{
		"add",
		"add John",
		"change John 1234567890",
		"phone",
		"remove-phone John",
		"delete",
		"add-birthday John",
		"show-birthday",
		"vcard",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			assert.Equal(t, "Enter the argument for the command.", run(d, dir, line))
		})
	}
	assert.Equal(t, 0, dir.Len(), "Failed commands must not touch the directory")
}

func TestDispatch_UnknownCommand(t *testing.T) {
	d := newDispatcher(t, "en", today)
	dir := book.NewDirectory()

	assert.Equal(t, "Invalid command.", run(d, dir, "launch rockets"))
	assert.Equal(t, "Invalid command.", run(d, dir, ""))
}

func TestDispatch_Greetings(t *testing.T) {
	d := newDispatcher(t, "en", today)
	dir := book.NewDirectory()

	assert.Equal(t, "How can I help you?", run(d, dir, "hello"))
	assert.Equal(t, "Good bye!", run(d, dir, "exit"))
	assert.Equal(t, "Good bye!", run(d, dir, "CLOSE"))
	assert.Equal(t, "Welcome to the assistant bot!", d.Welcome())
	assert.Contains(t, run(d, dir, "help"), "add-birthday <name> <DD.MM.YYYY>")

	assert.True(t, d.IsExit("exit"))
	assert.True(t, d.IsExit("close"))
	assert.False(t, d.IsExit("hello"))
}

func TestDispatch_Change(t *testing.T) {
	d := newDispatcher(t, "en", today)
	dir := book.NewDirectory()
	run(d, dir, "add John 1234567890")

	assert.Equal(t, "Phone 1234567890 changed to 0000000000.", run(d, dir, "change john 1234567890 0000000000"))
	assert.Equal(t, "0000000000", run(d, dir, "phone John"))

	assert.Equal(t, "Phone not found.", run(d, dir, "change John 1234567890 1111111111"))
	assert.Equal(t, "Phone number must consist of exactly 10 digits.", run(d, dir, "change John 0000000000 12"))
	assert.Equal(t, "Contact not found.", run(d, dir, "change Mary 0000000000 1111111111"))
}

func TestDispatch_RemovePhoneAndDelete(t *testing.T) {
	d := newDispatcher(t, "en", today)
	dir := book.NewDirectory()
	run(d, dir, "add John 1234567890")

	assert.Equal(t, "Phone 1234567890 removed.", run(d, dir, "remove-phone John 1234567890"))
	assert.Equal(t, "John has no phones.", run(d, dir, "phone John"))
	assert.Equal(t, "Phone not found.", run(d, dir, "remove-phone John 1234567890"))

	assert.Equal(t, "Contact John deleted.", run(d, dir, "delete JOHN"))
	assert.Equal(t, "Contact not found.", run(d, dir, "delete John"))
	assert.Equal(t, "The address book is empty.", run(d, dir, "all"))
}

func TestDispatch_All(t *testing.T) {
	d := newDispatcher(t, "en", today)
	dir := book.NewDirectory()

	assert.Equal(t, "The address book is empty.", run(d, dir, "all"))

	run(d, dir, "add John 1234567890")
	run(d, dir, "add-birthday John 09.04.1990")
	run(d, dir, "add Mary 5555555555")

	assert.Equal(t,
		"Contact name: John, phones: 1234567890, birthday: 09.04.1990\n"+
			"Contact name: Mary, phones: 5555555555, birthday: no data",
		run(d, dir, "all"))
}

func TestDispatch_Birthdays(t *testing.T) {
	d := newDispatcher(t, "en", today) // 2 April 2025
	dir := book.NewDirectory()

	assert.Equal(t, "Contact not found.", run(d, dir, "add-birthday John 09.04.1990"))

	run(d, dir, "add John 1234567890")
	run(d, dir, "add Mary 5555555555")
	run(d, dir, "add Ann 1111111111")

	assert.Equal(t, "John has no birthday set.", run(d, dir, "show-birthday john"))
	assert.Equal(t, "No birthdays in the next 7 days.", run(d, dir, "birthdays"))

	assert.Equal(t, "Invalid date format. Use DD.MM.YYYY.", run(d, dir, "add-birthday John 31.02.1990"))
	assert.Equal(t, "Invalid date format. Use DD.MM.YYYY.", run(d, dir, "add-birthday John 1990-04-09"))
	assert.Equal(t, "Birthday 09.04.1990 added for John.", run(d, dir, "add-birthday John 09.04.1990"))
	assert.Equal(t, "John's birthday is on 09.04.1990", run(d, dir, "show-birthday JOHN"))

	run(d, dir, "add-birthday Mary 02.04.1985") // today
	run(d, dir, "add-birthday Ann 10.04.1999")  // 8 days

	assert.Equal(t, "John: in 7 days\nMary: today", run(d, dir, "birthdays"))
	assert.Equal(t, "John: in 7 days\nMary: today\nAnn: in 8 days", run(d, dir, "birthdays 8"))
	assert.Equal(t, "Mary: today", run(d, dir, "birthdays 0"))
	assert.Equal(t, "The number of days must be a non-negative integer.", run(d, dir, "birthdays -1"))
	assert.Equal(t, "The number of days must be a non-negative integer.", run(d, dir, "birthdays week"))
}

func TestDispatch_ConfiguredWindow(t *testing.T) {
	d := newDispatcher(t, "en", today)
	d.Window = 30
	dir := book.NewDirectory()
	run(d, dir, "add John 1234567890")
	run(d, dir, "add-birthday John 01.05.1990")

	assert.Equal(t, "John: in 29 days", run(d, dir, "birthdays"))
}

func TestDispatch_VCard(t *testing.T) {
	d := newDispatcher(t, "en", today)
	dir := book.NewDirectory()
	run(d, dir, "add John 1234567890")
	run(d, dir, "add-birthday John 09.04.1990")

	out := run(d, dir, "vcard john")
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCARD"))
	assert.True(t, strings.HasSuffix(out, "END:VCARD"))
	assert.Contains(t, out, "FN:John")
	assert.Contains(t, out, "BDAY:19900409")
	assert.Contains(t, out, "1234567890")

	assert.Equal(t, "Contact not found.", run(d, dir, "vcard Mary"))
}

func TestDispatch_Calendar(t *testing.T) {
	d := newDispatcher(t, "en", today)
	dir := book.NewDirectory()

	assert.Contains(t, run(d, dir, "calendar"), "BEGIN:VCALENDAR")

	run(d, dir, "add John 1234567890")
	run(d, dir, "add-birthday John 09.04.1990")

	out := run(d, dir, "calendar")
	assert.Contains(t, out, "SUMMARY:Birthday: John (35)")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20250409")
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR"))
}

func TestDispatch_CalendarWithReminder(t *testing.T) {
	d := newDispatcher(t, "en", today)
	dir := book.NewDirectory()
	run(d, dir, "add John 1234567890")
	run(d, dir, "add-birthday John 09.04.1990")

	assert.NotContains(t, run(d, dir, "calendar"), "BEGIN:VALARM", "Alarms are off by default")

	d.Reminder = "-P1D"
	out := run(d, dir, "calendar")
	assert.Contains(t, out, "BEGIN:VALARM")
	assert.Contains(t, out, "TRIGGER:-P1D")
	assert.Contains(t, out, "DESCRIPTION:Birthday: John (35)")
}

func TestDispatch_Ukrainian(t *testing.T) {
	d := newDispatcher(t, "uk", today)
	dir := book.NewDirectory()

	assert.Equal(t, "Контакт додано.", run(d, dir, "add John 1234567890"))
	assert.Equal(t, "Номер телефону має складатися з 10 цифр.", run(d, dir, "add John 12"))
	assert.Equal(t, "Контакт не знайдено.", run(d, dir, "phone Mary"))
	assert.Equal(t, "Невідома команда.", run(d, dir, "foo"))
}

func TestDispatch_WithoutLocalizer(t *testing.T) {
	d := command.NewDispatcher(nil, MockClock{CurrentTime: today}, 7)

	assert.Equal(t, "err_contact_not_found", d.Dispatch("phone", []string{"x"}, book.NewDirectory()),
		"Without a localizer the message key is returned")
}

func TestNewLocalizer_FallsBackToDefault(t *testing.T) {
	bundle, langs, err := command.LoadBundle()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"en", "uk"}, langs)

	d := command.NewDispatcher(command.NewLocalizer(bundle, "fr"), MockClock{CurrentTime: today}, 7)
	assert.Equal(t, "How can I help you?", d.Dispatch("hello", nil, book.NewDirectory()))
}
