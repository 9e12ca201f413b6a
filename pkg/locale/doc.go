// Package locale decides which locale and timezone a request is served in.
//
// The decision is a fixed precedence chain over explicit inputs. For the locale:
// a supported "locale" query parameter, then the user's supported preference,
// then the best match of the Accept-Language header, then the configured
// fallback. For the timezone: a known "timezone" query parameter, then the
// user's known preference, then the fallback. Values that are unsupported,
// malformed or missing from the timezone database are skipped without error,
// so a typo in a URL can never fail a request.
//
// The pure functions ResolveLocale and ResolveTimezone take a RequestContext
// and return a value. A Resolver binds them to validated configuration and
// Middleware wires a Resolver into net/http:
//
//	resolver, err := locale.NewResolver(locale.Config{
//		SupportedLocales: []string{"en", "fr"},
//		FallbackLocale:   "en",
//		FallbackTimezone: "UTC",
//	})
//	if err != nil {
//		return err
//	}
//
//	r.Use(locale.Middleware(resolver, locale.WithPreference(currentUserPreference)))
//
// Handlers then read the results with i18n.GetLocale and timezone.FromContext.
//
// WithSources narrows the chain to a subset of levels, e.g. header negotiation
// only, without changing their order.
package locale
