package locale

import (
	"strings"

	"github.com/dmitrymomot/localekit/pkg/i18n"
	"github.com/dmitrymomot/localekit/pkg/timezone"
)

// UserPreference is the locale and timezone a user has chosen.
// Empty fields mean the user has no preference.
type UserPreference struct {
	Locale   string
	Timezone string
}

// RequestContext carries the per-request inputs of the resolution policy.
// Empty strings mean the value is absent.
type RequestContext struct {
	QueryLocale          string
	QueryTimezone        string
	AcceptLanguageHeader string
	User                 *UserPreference
}

// ResolveLocale picks the locale for a request. First match wins:
//  1. query locale, if supported;
//  2. user locale, if supported;
//  3. best match of the Accept-Language header;
//  4. fallback.
//
// Unsupported or malformed values are skipped, never reported. The result is
// always an element of supported; if fallback is not, the first supported
// locale stands in for it. With an empty supported list fallback is returned.
func ResolveLocale(rc RequestContext, supported []string, fallback string) string {
	lang, _ := resolveLocale(rc, supported, fallback, allSources, i18n.BestMatch)
	return lang
}

// ResolveTimezone picks the timezone for a request. First match wins:
//  1. query timezone, if it is a known timezone;
//  2. user timezone, if it is a known timezone;
//  3. fallback.
//
// Unknown values such as "Vulcan" are skipped, never reported.
func ResolveTimezone(rc RequestContext, fallback string) string {
	tz, _ := resolveTimezone(rc, fallback, allSources, timezone.Canonicalize)
	return tz
}

// Matcher selects the best supported locale for an Accept-Language header.
type Matcher func(header string, supported []string) (string, bool)

// TimezoneLookup returns the canonical name of a known timezone.
type TimezoneLookup func(name string) (string, bool)

func resolveLocale(rc RequestContext, supported []string, fallback string, sources sourceSet, match Matcher) (string, Source) {
	if sources.has(SourceQuery) {
		if lang, ok := lookupSupported(rc.QueryLocale, supported); ok {
			return lang, SourceQuery
		}
	}

	if sources.has(SourceUser) && rc.User != nil {
		if lang, ok := lookupSupported(rc.User.Locale, supported); ok {
			return lang, SourceUser
		}
	}

	if sources.has(SourceHeader) && rc.AcceptLanguageHeader != "" {
		if lang, ok := safeMatch(match, rc.AcceptLanguageHeader, supported); ok {
			// a custom matcher may return anything, keep the invariant
			if lang, ok := lookupSupported(lang, supported); ok {
				return lang, SourceHeader
			}
		}
	}

	return fallbackLocale(supported, fallback), SourceDefault
}

func resolveTimezone(rc RequestContext, fallback string, sources sourceSet, lookup TimezoneLookup) (string, Source) {
	if sources.has(SourceQuery) {
		if tz, ok := safeLookup(lookup, rc.QueryTimezone); ok {
			return tz, SourceQuery
		}
	}

	if sources.has(SourceUser) && rc.User != nil {
		if tz, ok := safeLookup(lookup, rc.User.Timezone); ok {
			return tz, SourceUser
		}
	}

	return fallback, SourceDefault
}

// lookupSupported returns the supported entry equal to lang, ignoring case,
// surrounding spaces and the "_"/"-" separator difference.
func lookupSupported(lang string, supported []string) (string, bool) {
	lang = i18n.NormalizeTag(lang)
	if lang == "" {
		return "", false
	}
	for _, s := range supported {
		if i18n.NormalizeTag(s) == lang {
			return s, true
		}
	}
	return "", false
}

func fallbackLocale(supported []string, fallback string) string {
	if len(supported) == 0 {
		return fallback
	}
	if lang, ok := lookupSupported(fallback, supported); ok {
		return lang
	}
	return supported[0]
}

// safeMatch treats a panicking matcher as "no match".
func safeMatch(match Matcher, header string, supported []string) (lang string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			lang, ok = "", false
		}
	}()
	return match(header, supported)
}

// safeLookup treats a panicking lookup as "no match".
func safeLookup(lookup TimezoneLookup, name string) (tz string, ok bool) {
	if strings.TrimSpace(name) == "" {
		return "", false
	}
	defer func() {
		if r := recover(); r != nil {
			tz, ok = "", false
		}
	}()
	tz, ok = lookup(name)
	if tz == "" {
		return "", false
	}
	return tz, ok
}
