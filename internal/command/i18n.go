package command

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-addressbook/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// LoadBundle initializes the translation bundle from the embedded locale files
// and returns the languages it detected.
func LoadBundle() (*i18n.Bundle, []string, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	var detectedLangs []string

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		detectedLangs = append(detectedLangs, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	return bundle, detectedLangs, nil
}

// NewLocalizer returns a translator for lang. Messages missing in lang fall
// back to the default language.
func NewLocalizer(bundle *i18n.Bundle, lang string) *i18n.Localizer {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	return i18n.NewLocalizer(bundle, lang, config.DefaultLanguage)
}

// msg translates key with optional template data. An unknown key or a missing
// localizer yields the key itself.
func (d *Dispatcher) msg(key string, data map[string]any) string {
	if d.Localizer == nil {
		return key
	}
	out, err := d.Localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return out
}
