package locale

import (
	"fmt"
	"strings"
)

// Source names the precedence level a resolved value came from.
type Source string

const (
	SourceQuery   Source = "query"
	SourceUser    Source = "user"
	SourceHeader  Source = "header"
	SourceDefault Source = "default"
)

// ParseSource parses a source name, case-insensitively.
func ParseSource(s string) (Source, error) {
	switch src := Source(strings.ToLower(strings.TrimSpace(s))); src {
	case SourceQuery, SourceUser, SourceHeader, SourceDefault:
		return src, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSource, s)
	}
}

// ParseSources parses a list of source names. Empty entries are ignored.
func ParseSources(names []string) ([]Source, error) {
	sources := make([]Source, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		src, err := ParseSource(name)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// sourceSet enables precedence levels. The default level is always on.
type sourceSet uint8

const (
	bitQuery sourceSet = 1 << iota
	bitUser
	bitHeader
)

const allSources = bitQuery | bitUser | bitHeader

func newSourceSet(sources ...Source) sourceSet {
	var set sourceSet
	for _, src := range sources {
		switch src {
		case SourceQuery:
			set |= bitQuery
		case SourceUser:
			set |= bitUser
		case SourceHeader:
			set |= bitHeader
		}
	}
	return set
}

func (s sourceSet) has(src Source) bool {
	switch src {
	case SourceQuery:
		return s&bitQuery != 0
	case SourceUser:
		return s&bitUser != 0
	case SourceHeader:
		return s&bitHeader != 0
	case SourceDefault:
		return true
	}
	return false
}
