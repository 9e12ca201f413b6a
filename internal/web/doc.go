// Package web is the HTTP surface of localekit: a chi router serving a
// translated greeting page whose locale and timezone come from the locale
// resolver, plus liveness and readiness probes.
//
// The page honours ?locale=, ?timezone= and ?login_as= query parameters and
// the Accept-Language header. Translations and the demo user directory are
// embedded in the binary.
package web
