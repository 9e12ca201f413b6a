package web

import (
	"bytes"
	"context"
	"embed"
	"log/slog"

	"github.com/dmitrymomot/localekit/pkg/i18n"
	"github.com/dmitrymomot/localekit/pkg/user"
)

//go:embed translations/*.yaml
var translationsFS embed.FS

//go:embed fixtures/users.yaml
var defaultUsers []byte

// NewTranslator loads the bundled translations.
func NewTranslator(ctx context.Context, defaultLang string, log *slog.Logger) (*i18n.Translator, error) {
	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), translationsFS, "translations", log)
	return i18n.NewTranslator(ctx, adapter,
		i18n.WithDefaultLanguage(defaultLang),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
}

// DefaultUsers returns the bundled demo users.
func DefaultUsers() (*user.MemoryDirectory, error) {
	return user.LoadYAML(bytes.NewReader(defaultUsers))
}
