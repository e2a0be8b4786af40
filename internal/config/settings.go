package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"regexp"
	"slices"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var reminderRe = regexp.MustCompile(ReminderPattern)

// Settings holds the runtime options that may come from the environment.
// Command-line flags override them in main.
type Settings struct {
	Language       string `env:"GOADDR_LANG" envDefault:"en"`
	BirthdayWindow int    `env:"GOADDR_BIRTHDAY_WINDOW" envDefault:"7"`
	Debug          bool   `env:"GOADDR_DEBUG" envDefault:"false"`

	// ReminderTrigger is an ISO8601 duration such as "-P1D". Empty disables
	// calendar alarms.
	ReminderTrigger string `env:"GOADDR_REMINDER"`
}

// LoadSettings reads an optional env file and then the process environment.
// A missing env file is not an error; variables already set take precedence
// over the file.
func LoadSettings(envFile string) (Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Settings{}, fmt.Errorf("%s: %w", ErrEnvFile, err)
			}
			slog.Debug(MsgEnvFileSkip,
				LogKeyComponent, CompConfig,
				LogKeyFile, envFile,
			)
		}
	}

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", ErrSettingsLoad, err)
	}
	return s, s.Validate()
}

// Validate rejects languages without a locale file, negative windows and
// malformed reminder triggers.
func (s Settings) Validate() error {
	if !slices.Contains(SupportedLanguages, s.Language) {
		return fmt.Errorf("%s: %q", ErrUnknownLanguage, s.Language)
	}
	if s.BirthdayWindow < 0 {
		return fmt.Errorf("%s: %d", ErrWindowFormat, s.BirthdayWindow)
	}
	if s.ReminderTrigger != "" && !reminderRe.MatchString(s.ReminderTrigger) {
		return fmt.Errorf("%s: %q", ErrReminderFormat, s.ReminderTrigger)
	}
	return nil
}
