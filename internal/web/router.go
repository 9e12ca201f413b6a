package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/localekit/pkg/httpserver"
	"github.com/dmitrymomot/localekit/pkg/i18n"
	"github.com/dmitrymomot/localekit/pkg/locale"
	"github.com/dmitrymomot/localekit/pkg/logger"
	"github.com/dmitrymomot/localekit/pkg/requestid"
	"github.com/dmitrymomot/localekit/pkg/user"
)

// readinessTimeout bounds all readiness checks of one probe.
const readinessTimeout = 2 * time.Second

// Config carries the collaborators of the web application.
type Config struct {
	Translator  *i18n.Translator
	Resolver    *locale.Resolver
	Users       user.Directory
	Logger      *slog.Logger
	Now         func() time.Time
	ReadyChecks []httpserver.Check
}

// NewRouter mounts the index page and the health probes.
//
// Middleware order matters for the index page: the user is looked up from
// login_as before the locale middleware asks for the user's preference.
func NewRouter(cfg Config) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(log))

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, readinessTimeout, cfg.ReadyChecks...))

	r.Group(func(r chi.Router) {
		r.Use(user.Middleware(cfg.Users, user.WithLogger(log)))
		r.Use(locale.Middleware(cfg.Resolver, locale.WithPreference(userPreference)))

		r.Method(http.MethodGet, "/", &indexHandler{
			translator: cfg.Translator,
			logger:     log,
			now:        now,
		})
	})

	return r
}

// userPreference exposes the logged in user to the locale resolver.
func userPreference(ctx context.Context) *locale.UserPreference {
	u := user.FromContext(ctx)
	if u == nil {
		return nil
	}
	return &locale.UserPreference{Locale: u.Locale, Timezone: u.Timezone}
}

// accessLog logs one line per request once the response is written.
func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.InfoContext(r.Context(), "HTTP request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.String("content_language", ww.Header().Get("Content-Language")),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
