package web

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/localekit/pkg/logger"
)

// indexView holds the already translated strings of the index page.
type indexView struct {
	Lang        string
	Title       string
	Header      string
	LoginStatus string
	CurrentTime string
}

// layout wraps body into an HTML document in the given language.
func layout(lang, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="`+templ.EscapeString(lang)+`">
<head>
<meta charset="utf-8">
<title>`+templ.EscapeString(title)+`</title>
</head>
<body>
`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

func indexBody(v indexView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			"<h1>"+templ.EscapeString(v.Header)+"</h1>\n"+
				`<p id="login-status">`+templ.EscapeString(v.LoginStatus)+"</p>\n"+
				`<p id="current-time">`+templ.EscapeString(v.CurrentTime)+"</p>\n",
		)
		return err
	})
}

func indexPage(v indexView) templ.Component {
	return layout(v.Lang, v.Title, indexBody(v))
}

// render writes c as an HTML response. The component is rendered into a
// buffer first so a failure can still produce a clean 500.
func render(w http.ResponseWriter, r *http.Request, log *slog.Logger, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		log.ErrorContext(r.Context(), "Failed to render page", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
