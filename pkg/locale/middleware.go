package locale

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/localekit/pkg/i18n"
	"github.com/dmitrymomot/localekit/pkg/timezone"
)

// PreferenceFunc returns the preference of the user the request belongs to, or nil.
type PreferenceFunc func(ctx context.Context) *UserPreference

type middlewareConfig struct {
	localeParam   string
	timezoneParam string
	preference    PreferenceFunc
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithLocaleParam sets the query parameter that forces a locale. Default "locale".
func WithLocaleParam(name string) MiddlewareOption {
	return func(c *middlewareConfig) {
		if name != "" {
			c.localeParam = name
		}
	}
}

// WithTimezoneParam sets the query parameter that forces a timezone. Default "timezone".
func WithTimezoneParam(name string) MiddlewareOption {
	return func(c *middlewareConfig) {
		if name != "" {
			c.timezoneParam = name
		}
	}
}

// WithPreference sets how the current user's preference is found.
// Without it requests are treated as anonymous.
func WithPreference(fn PreferenceFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.preference = fn
		}
	}
}

// RequestContextFrom builds the resolution input from an HTTP request.
func RequestContextFrom(r *http.Request, opts ...MiddlewareOption) RequestContext {
	return newMiddlewareConfig(opts).requestContext(r)
}

func newMiddlewareConfig(opts []MiddlewareOption) *middlewareConfig {
	cfg := &middlewareConfig{
		localeParam:   "locale",
		timezoneParam: "timezone",
		preference:    func(context.Context) *UserPreference { return nil },
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *middlewareConfig) requestContext(r *http.Request) RequestContext {
	query := r.URL.Query()
	return RequestContext{
		QueryLocale:          query.Get(c.localeParam),
		QueryTimezone:        query.Get(c.timezoneParam),
		AcceptLanguageHeader: r.Header.Get("Accept-Language"),
		User:                 c.preference(r.Context()),
	}
}

// Middleware resolves the locale and timezone of every request and stores them
// in the request context, readable with i18n.GetLocale and timezone.FromContext.
// The resolved locale is also sent back in the Content-Language header.
func Middleware(resolver *Resolver, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := newMiddlewareConfig(opts)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := resolver.Resolve(r.Context(), cfg.requestContext(r))

			ctx := i18n.SetLocale(r.Context(), res.Locale)
			ctx = timezone.WithContext(ctx, res.Timezone)

			w.Header().Set("Content-Language", res.Locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
