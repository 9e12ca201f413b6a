package user

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithContext stores the current user in ctx.
func WithContext(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext returns the current user, or nil for anonymous requests.
func FromContext(ctx context.Context) *User {
	if ctx == nil {
		return nil
	}
	u, _ := ctx.Value(contextKey{}).(*User)
	return u
}

// LoggerExtractor returns a ContextExtractor for the logger
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if u := FromContext(ctx); u != nil {
			return slog.String("user_id", u.ID), true
		}
		return slog.Attr{}, false
	}
}
