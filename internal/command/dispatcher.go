package command

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// ErrMissingArgument means the command got fewer tokens than it needs.
var ErrMissingArgument = errors.New(config.ErrMissingArgument)

// handler runs one command. Checked failures come back as errors and are
// turned into messages by Dispatch.
type handler func(args []string, dir *book.Directory) (string, error)

// Dispatcher routes parsed commands to their handlers and normalizes every
// failure into a single displayable string. It holds no directory state.
type Dispatcher struct {
	Localizer *i18n.Localizer
	Clock     book.Clock
	Window    int    // Default window of the birthdays command, in days.
	Reminder  string // Alarm trigger of calendar events; empty disables alarms.

	handlers map[string]handler
}

// NewDispatcher wires the command table.
func NewDispatcher(loc *i18n.Localizer, clock book.Clock, window int) *Dispatcher {
	d := &Dispatcher{
		Localizer: loc,
		Clock:     clock,
		Window:    window,
	}
	d.handlers = map[string]handler{
		config.CmdHello:        d.hello,
		config.CmdHelp:         d.help,
		config.CmdAdd:          d.addContact,
		config.CmdChange:       d.changeContact,
		config.CmdPhone:        d.showPhones,
		config.CmdRemovePhone:  d.removePhone,
		config.CmdDelete:       d.deleteContact,
		config.CmdAll:          d.showAll,
		config.CmdAddBirthday:  d.addBirthday,
		config.CmdShowBirthday: d.showBirthday,
		config.CmdBirthdays:    d.birthdays,
		config.CmdVCard:        d.vcard,
		config.CmdCalendar:     d.calendar,
		config.CmdExit:         d.goodbye,
		config.CmdClose:        d.goodbye,
	}
	return d
}

// IsExit reports whether cmd ends the session.
func (d *Dispatcher) IsExit(cmd string) bool {
	return cmd == config.CmdExit || cmd == config.CmdClose
}

// Welcome returns the greeting printed when the loop starts.
func (d *Dispatcher) Welcome() string {
	return d.msg(config.TKeyWelcome, nil)
}

// Dispatch runs cmd against dir and always returns a message for the user.
// Unknown commands, missing arguments, invalid input and absent contacts all
// produce a message; nothing escapes to the caller.
func (d *Dispatcher) Dispatch(cmd string, args []string, dir *book.Directory) (out string) {
	h, ok := d.handlers[cmd]
	if !ok {
		slog.Debug(config.MsgUnknownCmd,
			config.LogKeyComponent, config.CompCommand,
			config.LogKeyCommand, cmd,
		)
		return d.msg(config.TKeyErrInvalidCmd, nil)
	}

	slog.Debug(config.MsgCommand,
		config.LogKeyComponent, config.CompCommand,
		config.LogKeyCommand, cmd,
		config.LogKeyArgs, len(args),
	)

	defer func() {
		if r := recover(); r != nil {
			slog.Error(config.ErrHandlerPanicked,
				config.LogKeyComponent, config.CompCommand,
				config.LogKeyCommand, cmd,
				config.LogKeyError, fmt.Sprint(r),
			)
			out = d.msg(config.TKeyErrUnexpected, nil)
		}
	}()

	res, err := h(args, dir)
	if err != nil {
		slog.Info(config.MsgCommandFailed,
			config.LogKeyComponent, config.CompCommand,
			config.LogKeyCommand, cmd,
			config.LogKeyError, err,
		)
		return d.normalize(err)
	}
	return res
}

// normalize maps a handler error to its user-facing message.
func (d *Dispatcher) normalize(err error) string {
	switch {
	case errors.Is(err, ErrMissingArgument):
		return d.msg(config.TKeyErrMissingArg, nil)
	case book.IsValidationError(err, config.FieldPhone):
		return d.msg(config.TKeyErrPhoneFormat, nil)
	case book.IsValidationError(err, config.FieldBirthday):
		return d.msg(config.TKeyErrDateFormat, nil)
	case book.IsValidationError(err, config.FieldWindow):
		return d.msg(config.TKeyErrWindowFormat, nil)
	case errors.Is(err, book.ErrContactNotFound):
		return d.msg(config.TKeyErrContactAbsent, nil)
	case errors.Is(err, book.ErrPhoneNotFound):
		return d.msg(config.TKeyErrPhoneAbsent, nil)
	default:
		slog.Error(config.ErrUnexpectedResult,
			config.LogKeyComponent, config.CompCommand,
			config.LogKeyError, err,
		)
		return d.msg(config.TKeyErrUnexpected, nil)
	}
}

// Parse splits a raw input line into a lowercase command and its arguments.
// A blank line yields an empty command.
func Parse(line string) (string, []string) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return "", nil
	}
	return strings.ToLower(tokens[0]), tokens[1:]
}

// requireArgs returns ErrMissingArgument when args has fewer than n tokens.
func requireArgs(args []string, n int) error {
	if len(args) < n {
		return fmt.Errorf("%w: want %d, got %d", ErrMissingArgument, n, len(args))
	}
	return nil
}
