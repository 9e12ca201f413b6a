package user

import (
	"log/slog"
	"net/http"
)

// DefaultParam is the query parameter naming the user a request acts as.
const DefaultParam = "login_as"

type middlewareConfig struct {
	param  string
	logger *slog.Logger
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithParam sets the query parameter holding the user id.
func WithParam(name string) MiddlewareOption {
	return func(c *middlewareConfig) {
		if name != "" {
			c.param = name
		}
	}
}

// WithLogger sets the logger used to report directory failures.
func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Middleware looks up the user named by the login_as query parameter and
// stores it in the request context. Unknown ids leave the request anonymous;
// directory failures are logged and the request continues anonymously.
func Middleware(dir Directory, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		param:  DefaultParam,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.URL.Query().Get(cfg.param)
			if id == "" {
				next.ServeHTTP(w, r)
				return
			}

			u, err := dir.Lookup(r.Context(), id)
			if err != nil {
				cfg.logger.ErrorContext(r.Context(), "User lookup failed",
					slog.String("user_id", id),
					slog.Any("error", err),
				)
				next.ServeHTTP(w, r)
				return
			}
			if u == nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), u)))
		})
	}
}
