package config

import (
	"io/fs"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Address Book"
	AppID       = "com.github.tartampluch.go-addressbook"
	LogFileName = "app.log"
	EnvFileName = ".env"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagLang         = "lang"
	FlagWindow       = "window"
	FlagReminder     = "reminder"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stderr"
	FlagDescLang     = "Language of the messages (en, uk)"
	FlagDescWindow   = "Default number of days searched by the birthdays command"
	FlagDescReminder = "Alarm trigger of calendar events as an ISO8601 duration (e.g. -P1D)"
	MsgVersionOutput = "%s version %s (commit %s, built %s) %s/%s\n"
	PromptInput      = "Enter a command: "
)

// SupportedLanguages defines the list of available message languages (ISO 639-1).
var SupportedLanguages = []string{"en", "uk"}

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdHelp         = "help"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdRemovePhone  = "remove-phone"
	CmdDelete       = "delete"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdVCard        = "vcard"
	CmdCalendar     = "calendar"
	CmdExit         = "exit"
	CmdClose        = "close"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome          = "msg_welcome"
	TKeyGoodbye          = "msg_goodbye"
	TKeyHello            = "msg_hello"
	TKeyHelp             = "msg_help"
	TKeyContactAdded     = "msg_contact_added"
	TKeyContactUpdated   = "msg_contact_updated"
	TKeyContactDeleted   = "msg_contact_deleted"
	TKeyPhoneChanged     = "msg_phone_changed"    // Requires Old, New
	TKeyPhoneRemoved     = "msg_phone_removed"    // Requires Phone
	TKeyNoPhones         = "msg_no_phones"        // Requires Name
	TKeyBookEmpty        = "msg_book_empty"
	TKeyBirthdayAdded    = "msg_birthday_added"   // Requires Name, Date
	TKeyBirthdayShow     = "msg_birthday_show"    // Requires Name, Date
	TKeyBirthdayNotSet   = "msg_birthday_not_set" // Requires Name
	TKeyBirthdayLine     = "msg_birthday_line"    // Requires Name, Days
	TKeyBirthdayToday    = "msg_birthday_today"   // Requires Name
	TKeyNoBirthdays      = "msg_no_birthdays"     // Requires Days
	TKeyEvtSummary       = "event_summary"        // Requires Name
	TKeyEvtSummaryAge    = "event_summary_age"    // Requires Name, Age
	TKeyErrMissingArg    = "err_missing_argument"
	TKeyErrPhoneFormat   = "err_phone_format"
	TKeyErrDateFormat    = "err_date_format"
	TKeyErrWindowFormat  = "err_window_format"
	TKeyErrContactAbsent = "err_contact_not_found"
	TKeyErrPhoneAbsent   = "err_phone_not_found"
	TKeyErrInvalidCmd    = "err_invalid_command"
	TKeyErrUnexpected    = "err_unexpected"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage       = "en"
	DefaultBirthdayWindow = 7
	PhoneDigits           = 10
	PhonePattern          = `^[0-9]{10}$`
	BirthdayPattern       = `^[0-9]{2}\.[0-9]{2}\.[0-9]{4}$`
	PhoneSeparator        = "; "
	UIDSalt               = "go-addressbook-v1-" // Salt for deterministic UID generation

	// ReminderPattern accepts the ISO8601 durations iCalendar uses for
	// TRIGGER, e.g. "-P1D", "-PT2H", "P1DT12H".
	ReminderPattern = `^[+-]?P(?:[0-9]+W|[0-9]+D(?:T[0-9]+[HMS])?|T[0-9]+[HMS])$`
)

// Validated field names carried by book.ValidationError.
const (
	FieldPhone    = "phone"
	FieldBirthday = "birthday"
	FieldWindow   = "window"
)

// Record rendering.
const (
	FormatRecord    = "Contact name: %s, phones: %s, birthday: %s"
	MarkerNoPhones  = "no phones"
	MarkerNoData    = "no data"
	RecordSeparator = "\n"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Address Book//Export//EN"
	ICalCalName   = "Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "goaddressbook"

	// iCal Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	// vCard
	VCardUIDPrefix = "urn:uuid:"
	VCardTelType   = "cell"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Data Formats & Limits
// -----------------------------------------------------------------------------

const (
	DateFormatBirthday = "02.01.2006"
	DateFormatVCard    = "20060102"

	HoursPerDay = 24

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrPhoneFormat      = "phone number must consist of exactly 10 digits"
	ErrDateFormat       = "invalid date format, use DD.MM.YYYY"
	ErrWindowFormat     = "birthday window must be a non-negative integer"
	ErrReminderFormat   = "reminder must be an ISO8601 duration such as -P1D"
	ErrContactNotFound  = "contact not found"
	ErrPhoneNotFound    = "phone not found"
	ErrMissingArgument  = "not enough arguments for the command"
	ErrUnknownLanguage  = "unsupported language"
	ErrSettingsLoad     = "failed to load settings from environment"
	ErrEnvFile          = "failed to read env file"
	ErrVCardEncode      = "failed to encode vCard"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrReadInput        = "failed to read input"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrHandlerPanicked  = "command handler panicked"
	ErrUnexpectedResult = "unexpected command failure"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, leaving command loop"
	MsgCommand       = "Dispatching command"
	MsgCommandFailed = "Command failed"
	MsgUnknownCmd    = "Unknown command"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgCalendarBuilt = "Calendar generation successful"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgEnvFileSkip   = "No env file loaded"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyCommand   = "command"
	LogKeyArgs      = "arg_count"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyWindow    = "window"
	LogKeyReminder  = "reminder"
	LogKeyEvents    = "events"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain    = "main"
	CompCommand = "command"
	CompExport  = "export"
	CompI18n    = "i18n"
	CompConfig  = "config"
)
