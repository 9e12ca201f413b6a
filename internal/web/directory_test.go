package web_test

import (
	"context"

	"github.com/dmitrymomot/localekit/pkg/user"
)

type directoryFunc func(ctx context.Context, id string) (*user.User, error)

func (f directoryFunc) Lookup(ctx context.Context, id string) (*user.User, error) {
	return f(ctx, id)
}

func evilUser(_ context.Context, id string) (*user.User, error) {
	return &user.User{ID: id, Name: "<script>alert(1)</script>"}, nil
}
