package timezone

import (
	"context"
	"log/slog"
	"time"
)

type contextKey struct{}

// WithContext stores the timezone name in ctx.
func WithContext(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, contextKey{}, name)
}

// FromContext returns the timezone name stored in ctx, or Default.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return Default
	}
	name, _ := ctx.Value(contextKey{}).(string)
	if name == "" {
		return Default
	}
	return name
}

// Location returns the location of the timezone stored in ctx.
// Falls back to UTC if the stored name cannot be loaded.
func Location(ctx context.Context) *time.Location {
	if loc, ok := Load(FromContext(ctx)); ok {
		return loc
	}
	return time.UTC
}

// LoggerExtractor returns a ContextExtractor for the logger
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if name, _ := ctx.Value(contextKey{}).(string); name != "" {
			return slog.String("timezone", name), true
		}
		return slog.Attr{}, false
	}
}
