// Package i18n provides the language side of request localisation: parsing and
// negotiating the Accept-Language header, carrying the chosen locale through a
// context.Context, and translating messages loaded from YAML, JSON or TOML files.
//
// # Negotiation
//
// BestMatch implements quality-weighted best-match lookup against a static list
// of supported languages. Exact tags are preferred over primary-subtag matches
// and the value returned is always one of the supported entries:
//
//	lang, ok := i18n.BestMatch("fr-CA;q=0.8, en;q=0.5", []string{"en", "fr"})
//	// lang == "fr", ok == true
//
// # Translation
//
// A Translator delegates storage to a TranslationAdapter. MapAdapter serves
// in-memory data, FSAdapter reads every supported file from an fs.FS (embed.FS
// included) and NewDirectoryAdapter does the same for a directory on disk:
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), translationsFS, "translations", log)
//	translator, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//		return err
//	}
//
//	msg := translator.Tc(r.Context(), "home.logged_in_as", "username", "Balou")
//
// Messages use named placeholders in the form "%{name}" and dot-separated keys
// address nested maps. A message missing in the requested language is looked up
// in the default language before the key itself is returned.
//
// # Context
//
// SetLocale stores the resolved locale in a context and GetLocale reads it back,
// defaulting to DefaultLanguage. LoggerExtractor exposes it to structured logs.
package i18n
