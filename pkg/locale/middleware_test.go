package locale_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/localekit/pkg/i18n"
	"github.com/dmitrymomot/localekit/pkg/locale"
	"github.com/dmitrymomot/localekit/pkg/timezone"
)

type captured struct {
	locale   string
	timezone string
}

func serve(t *testing.T, mw func(http.Handler) http.Handler, req *http.Request) (captured, *httptest.ResponseRecorder) {
	t.Helper()

	var got captured
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.locale = i18n.GetLocale(r.Context())
		got.timezone = timezone.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return got, rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	resolver := newResolver(t)

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		got, rec := serve(t, locale.Middleware(resolver), req)

		assert.Equal(t, captured{locale: "en", timezone: "UTC"}, got)
		assert.Equal(t, "en", rec.Header().Get("Content-Language"))
	})

	t.Run("accept-language header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "fr;q=0.8, en;q=0.5")
		got, rec := serve(t, locale.Middleware(resolver), req)

		assert.Equal(t, "fr", got.locale)
		assert.Equal(t, "fr", rec.Header().Get("Content-Language"))
	})

	t.Run("query parameters", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/?locale=fr&timezone=Europe/Paris", nil)
		req.Header.Set("Accept-Language", "en")
		got, _ := serve(t, locale.Middleware(resolver), req)

		assert.Equal(t, captured{locale: "fr", timezone: "Europe/Paris"}, got)
	})

	t.Run("user preference", func(t *testing.T) {
		t.Parallel()

		pref := func(context.Context) *locale.UserPreference { return balou }
		req := httptest.NewRequest(http.MethodGet, "/?locale=xx&timezone=Vulcan", nil)
		got, _ := serve(t, locale.Middleware(resolver, locale.WithPreference(pref)), req)

		assert.Equal(t, captured{locale: "fr", timezone: "Europe/Paris"}, got)
	})

	t.Run("custom parameter names", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/?lang=fr&tz=Asia/Tokyo&locale=en", nil)
		mw := locale.Middleware(resolver, locale.WithLocaleParam("lang"), locale.WithTimezoneParam("tz"))
		got, _ := serve(t, mw, req)

		assert.Equal(t, captured{locale: "fr", timezone: "Asia/Tokyo"}, got)
	})
}

func TestRequestContextFrom(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?locale=fr&timezone=US/Central", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	rc := locale.RequestContextFrom(req, locale.WithPreference(func(context.Context) *locale.UserPreference {
		return teletubby
	}))

	assert.Equal(t, locale.RequestContext{
		QueryLocale:          "fr",
		QueryTimezone:        "US/Central",
		AcceptLanguageHeader: "en-US,en;q=0.9",
		User:                 teletubby,
	}, rc)
}
