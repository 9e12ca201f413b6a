package user

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// MemoryDirectory is a read-only in-memory Directory.
type MemoryDirectory struct {
	users map[string]User
}

// NewMemoryDirectory builds a directory from users. IDs must be unique and non-empty.
func NewMemoryDirectory(users ...User) (*MemoryDirectory, error) {
	d := &MemoryDirectory{users: make(map[string]User, len(users))}
	for _, u := range users {
		id := NormalizeID(u.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: user %q", ErrEmptyID, u.Name)
		}
		if _, exists := d.users[id]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		u.ID = id
		d.users[id] = u
	}
	return d, nil
}

// LoadYAML builds a directory from a YAML document of the form:
//
//	users:
//	  - id: "1"
//	    name: Balou
//	    locale: fr
//	    timezone: Europe/Paris
func LoadYAML(r io.Reader) (*MemoryDirectory, error) {
	var doc struct {
		Users []User `yaml:"users"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrDecode, err)
	}
	return NewMemoryDirectory(doc.Users...)
}

// Lookup implements Directory. Integer ids match regardless of leading
// zeros or sign. The returned user is a copy.
func (d *MemoryDirectory) Lookup(_ context.Context, id string) (*User, error) {
	u, ok := d.users[NormalizeID(id)]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// Len returns the number of users.
func (d *MemoryDirectory) Len() int {
	return len(d.users)
}
