package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"
)

// Translator looks up messages by language and dot-separated key.
// It is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.DiscardHandler),
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := t.validateTranslations(ctx, translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "Translations loaded", slog.Any("languages", t.supportedLanguages()))
	return t, nil
}

func (t *Translator) validateTranslations(ctx context.Context, trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.WarnContext(ctx, "No translations provided")
		return nil
	}

	for lang, messages := range trans {
		if lang == "" {
			return ErrEmptyLanguageCode
		}
		if messages == nil {
			return fmt.Errorf("%w for language %q", ErrNilTranslations, lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// SupportedLanguages returns the sorted language codes that have translations.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used when a message is missing in the requested one.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// getTranslation traverses a nested map using dot-separated keys,
// e.g. "home.title" reads m["home"]["title"].
func getTranslation(m map[string]any, key string) (any, bool) {
	current := m
	parts := strings.Split(key, ".")

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}

	return nil, false
}

// lookup returns the message for lang, falling back to the default language.
func (t *Translator) lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, l := range []string{lang, t.defaultLang} {
		langMap, ok := t.translations[l]
		if !ok {
			continue
		}
		val, ok := getTranslation(langMap, key)
		if !ok {
			continue
		}
		switch v := val.(type) {
		case string:
			return v, true
		case fmt.Stringer:
			return v.String(), true
		}
	}

	return "", false
}

// HasTranslation checks if a string translation exists for the given language and key.
// The default language is not consulted.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	val, ok := getTranslation(langMap, key)
	if !ok {
		return false
	}
	_, isString := val.(string)
	return isString
}

// T translates a key for the given language.
// Arguments are key-value pairs substituted into "%{name}" placeholders:
//
//	// With translation "logged_in_as": "You are logged in as %{username}."
//	msg := translator.T("en", "logged_in_as", "username", "Balou")
//	// Returns: "You are logged in as Balou."
//
// Missing messages are looked up in the default language; if that fails too
// the key itself is returned when FallbackToKey is enabled, otherwise "".
func (t *Translator) T(lang, key string, args ...string) string {
	if msg, ok := t.lookup(lang, key); ok {
		return sprintf(msg, args)
	}

	if t.missingLogMode {
		t.logger.Warn("Translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// Td translates a key with an explicit default used when the key is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if msg, ok := t.lookup(lang, key); ok {
		return sprintf(msg, args)
	}
	return sprintf(defaultValue, args)
}

// Tc translates a key using the language stored in ctx by SetLocale.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf substitutes "%{name}" placeholders from key-value pairs.
// An odd trailing argument is ignored; unknown placeholders are kept as is.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
