package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/localekit/pkg/i18n"
	"github.com/dmitrymomot/localekit/pkg/timezone"
	"github.com/dmitrymomot/localekit/pkg/user"
)

// fallbackLayout is used when a locale has no datetime.layout message.
const fallbackLayout = "2006-01-02 15:04:05 MST"

type indexHandler struct {
	translator *i18n.Translator
	logger     *slog.Logger
	now        func() time.Time
}

// ServeHTTP renders the greeting page in the locale and timezone resolved by
// the locale middleware.
func (h *indexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := i18n.GetLocale(ctx)
	t := h.translator

	status := t.T(lang, "not_logged_in")
	if u := user.FromContext(ctx); u != nil {
		status = t.T(lang, "logged_in_as", "username", u.Name)
	}

	now := h.now().In(timezone.Location(ctx))
	formatted := now.Format(t.Td(lang, "datetime.layout", fallbackLayout))

	render(w, r, h.logger, http.StatusOK, indexPage(indexView{
		Lang:        lang,
		Title:       t.T(lang, "home_title"),
		Header:      t.T(lang, "home_header"),
		LoginStatus: status,
		CurrentTime: t.T(lang, "current_time_is", "current_time", formatted),
	}))
}
