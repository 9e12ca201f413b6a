package timezone

import (
	"bufio"
	_ "embed"
	"strings"
	"sync"
	"time"
)

// Default is the timezone used when nothing else is known.
const Default = "UTC"

// maxNameLength bounds identifiers accepted from untrusted input.
// The longest IANA name is well below this.
const maxNameLength = 64

// cache holds successfully loaded locations keyed by names from the embedded
// list, so arbitrary query input cannot grow it.
var cache sync.Map // map[string]*time.Location

// names lists the identifiers of the IANA timezone database, backward
// links included, one per line.
//
//go:embed names.txt
var names string

// index maps lower-cased identifiers to their canonical spelling.
var index = sync.OnceValue(func() map[string]string {
	m := make(map[string]string, 600)
	s := bufio.NewScanner(strings.NewReader(names))
	for s.Scan() {
		if name := strings.TrimSpace(s.Text()); name != "" {
			m[strings.ToLower(name)] = name
		}
	}
	return m
})

// lookup returns the canonical spelling of name and whether the embedded
// list knows it. Unknown names are returned unchanged so a newer database
// can still resolve them.
func lookup(name string) (string, bool) {
	if canonical, ok := index()[strings.ToLower(name)]; ok {
		return canonical, true
	}
	return name, false
}

// Load returns the location for an IANA timezone name.
// Names are matched case-insensitively, so "europe/paris" loads
// "Europe/Paris".
// Empty names and "Local" are rejected: both are valid for time.LoadLocation
// but do not name an entry of the timezone database.
func Load(name string) (*time.Location, bool) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameLength || strings.EqualFold(name, "Local") {
		return nil, false
	}
	name, known := lookup(name)

	if cached, ok := cache.Load(name); ok {
		return cached.(*time.Location), true
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, false
	}
	if known {
		cache.Store(name, loc)
	}
	return loc, true
}

// IsValid reports whether name is a known timezone identifier.
func IsValid(name string) bool {
	_, ok := Load(name)
	return ok
}

// Canonicalize returns the canonical spelling of the identifier name
// resolves to.
func Canonicalize(name string) (string, bool) {
	loc, ok := Load(name)
	if !ok {
		return "", false
	}
	return loc.String(), true
}
