package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// DefaultLanguage is the default language code used when no language is detected
const DefaultLanguage = "en"

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
// RFC 7231 doesn't specify a limit, but 4KB is generous for legitimate headers.
const maxAcceptLanguageLength = 4096

// maxLangCodeLength is the maximum allowed length for a language code
const maxLangCodeLength = 35 // RFC 5646 recommends 35 characters max

// wildcard matches any supported language.
const wildcard = "*"

// Preference is a single entry of an Accept-Language header.
type Preference struct {
	Tag     string
	Quality float64
}

// specificity ranks how precise a language range is: "*" < "fr" < "fr-ca".
func (p Preference) specificity() int {
	if p.Tag == wildcard {
		return 0
	}
	return strings.Count(p.Tag, "-") + 1
}

// NormalizeTag lowercases a language tag, trims it and unifies "_" to "-".
func NormalizeTag(tag string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(tag)), "_", "-")
}

// PrimaryTag returns the primary language subtag ("fr-CA" -> "fr").
func PrimaryTag(tag string) string {
	tag = NormalizeTag(tag)
	if idx := strings.Index(tag, "-"); idx > 0 {
		return tag[:idx]
	}
	return tag
}

// isWellFormedRange accepts alphanumeric subtags separated by "-" and the wildcard.
func isWellFormedRange(tag string) bool {
	if tag == wildcard {
		return true
	}
	if tag == "" || len(tag) > maxLangCodeLength {
		return false
	}
	for sub := range strings.SplitSeq(tag, "-") {
		if sub == "" || len(sub) > 8 {
			return false
		}
		for _, r := range sub {
			if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
				return false
			}
		}
	}
	return true
}

// truncateHeader cuts an oversized header back to the last complete entry,
// so a tag split at the limit is dropped rather than read as a shorter range.
func truncateHeader(header string) string {
	if len(header) <= maxAcceptLanguageLength {
		return header
	}
	if header[maxAcceptLanguageLength] == ',' {
		return header[:maxAcceptLanguageLength]
	}
	i := strings.LastIndexByte(header[:maxAcceptLanguageLength], ',')
	if i < 0 {
		return ""
	}
	return header[:i]
}

// ParseAcceptLanguage parses an Accept-Language header according to RFC 7231.
// Entries are sorted by quality, descending; entries with equal quality keep
// the order the client sent them in. Malformed quality values count as 1,
// malformed tags are skipped, and "q=0" entries are dropped as not acceptable.
func ParseAcceptLanguage(header string) []Preference {
	if header == "" {
		return nil
	}

	header = truncateHeader(header)

	var prefs []Preference

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		params := strings.Split(part, ";")
		tag := NormalizeTag(params[0])
		if !isWellFormedRange(tag) {
			continue
		}

		q := 1.0
		for _, param := range params[1:] {
			param = strings.TrimSpace(param)
			if !strings.HasPrefix(param, "q=") {
				continue
			}
			if qVal, err := strconv.ParseFloat(param[2:], 64); err == nil && qVal >= 0 && qVal <= 1 {
				q = qVal
			}
		}

		if q == 0 {
			continue
		}
		prefs = append(prefs, Preference{Tag: tag, Quality: q})
	}

	slices.SortStableFunc(prefs, func(a, b Preference) int {
		return cmp.Compare(b.Quality, a.Quality)
	})

	return prefs
}

// BestMatch picks the supported language the client prefers most.
//
// Matching runs in three phases and stops at the first phase that produces a result:
//  1. exact tags ("fr-ca" offered, "fr-CA" supported);
//  2. primary subtag of the offered tag against supported tags ("fr-ca" -> "fr");
//  3. offered tag against the primary subtag of supported tags ("fr" -> "fr-CA").
//
// Within a phase the highest quality wins; on equal quality the more specific
// offered range wins, then the earlier supported entry. The returned value is
// spelled exactly as in supported.
func BestMatch(header string, supported []string) (string, bool) {
	prefs := ParseAcceptLanguage(header)
	if len(prefs) == 0 || len(supported) == 0 {
		return "", false
	}

	normalized := make([]string, len(supported))
	primaries := make([]string, len(supported))
	for i, lang := range supported {
		normalized[i] = NormalizeTag(lang)
		primaries[i] = PrimaryTag(lang)
	}

	if idx := bestIndex(prefs, normalized); idx >= 0 {
		return supported[idx], true
	}

	primaryPrefs := make([]Preference, len(prefs))
	for i, p := range prefs {
		primaryPrefs[i] = Preference{Tag: PrimaryTag(p.Tag), Quality: p.Quality}
	}
	if idx := bestIndex(primaryPrefs, normalized); idx >= 0 {
		return supported[idx], true
	}

	if idx := bestIndex(prefs, primaries); idx >= 0 {
		return supported[idx], true
	}

	return "", false
}

// bestIndex returns the index of the best candidate or -1.
func bestIndex(prefs []Preference, candidates []string) int {
	best := -1
	bestQuality := -1.0
	bestSpecificity := -1

	for i, candidate := range candidates {
		for _, p := range prefs {
			spec := p.specificity()
			if p.Quality < bestQuality {
				continue
			}
			if p.Quality == bestQuality && spec <= bestSpecificity {
				continue
			}
			if p.Tag == wildcard || p.Tag == candidate {
				best, bestQuality, bestSpecificity = i, p.Quality, spec
			}
		}
	}

	return best
}

// Negotiate returns the best supported language for the header or defaultLang.
func Negotiate(header string, supported []string, defaultLang string) string {
	if lang, ok := BestMatch(header, supported); ok {
		return lang
	}
	return defaultLang
}
