package user

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

// User is a directory record. Empty Locale or Timezone means no preference.
type User struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Locale   string `yaml:"locale"`
	Timezone string `yaml:"timezone"`
}

// Directory looks users up by identifier.
// An unknown identifier yields (nil, nil); errors are reserved for
// infrastructure failures.
type Directory interface {
	Lookup(ctx context.Context, id string) (*User, error)
}

var (
	ErrEmptyID     = errors.New("user id is empty")
	ErrDuplicateID = errors.New("duplicate user id")
	ErrLookup      = errors.New("user lookup failed")
	ErrDecode      = errors.New("failed to decode users")
)

// NormalizeID trims id and rewrites integer ids in their shortest decimal
// form, so "01" and "1" name the same user. Other ids are only trimmed.
func NormalizeID(id string) string {
	id = strings.TrimSpace(id)
	if n, err := strconv.Atoi(id); err == nil {
		return strconv.Itoa(n)
	}
	return id
}
