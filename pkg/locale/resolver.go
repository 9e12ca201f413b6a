package locale

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/localekit/pkg/i18n"
	"github.com/dmitrymomot/localekit/pkg/timezone"
)

// Config is the process-wide configuration of the resolution policy.
type Config struct {
	SupportedLocales []string `env:"LOCALES" envDefault:"en,fr" envSeparator:","`
	FallbackLocale   string   `env:"DEFAULT_LOCALE" envDefault:"en"`
	FallbackTimezone string   `env:"DEFAULT_TIMEZONE" envDefault:"UTC"`
	Sources          []string `env:"LOCALE_SOURCES" envDefault:"query,user,header" envSeparator:","`
}

// Result is the outcome of resolving one request.
type Result struct {
	Locale         string
	Timezone       string
	LocaleSource   Source
	TimezoneSource Source
}

// Resolver applies the resolution policy with a fixed configuration.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	supported        []string
	fallbackLocale   string
	fallbackTimezone string
	sources          sourceSet
	match            Matcher
	lookup           TimezoneLookup
	logger           *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMatcher replaces the Accept-Language matcher (i18n.BestMatch by default).
func WithMatcher(m Matcher) Option {
	return func(r *Resolver) {
		if m != nil {
			r.match = m
		}
	}
}

// WithTimezoneLookup replaces the timezone database lookup (timezone.Canonicalize by default).
func WithTimezoneLookup(l TimezoneLookup) Option {
	return func(r *Resolver) {
		if l != nil {
			r.lookup = l
		}
	}
}

// WithSources enables only the given precedence levels. Their order is fixed:
// query, user, header, default. The default level cannot be disabled.
// Overrides Config.Sources.
func WithSources(sources ...Source) Option {
	return func(r *Resolver) {
		r.sources = newSourceSet(sources...)
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver validates cfg and returns a Resolver.
// Every supported locale must be a well-formed BCP 47 tag, the fallback locale
// must be one of them and the fallback timezone must be known.
func NewResolver(cfg Config, opts ...Option) (*Resolver, error) {
	if len(cfg.SupportedLocales) == 0 {
		return nil, ErrNoSupportedLocales
	}

	for _, lang := range cfg.SupportedLocales {
		if _, err := language.Parse(lang); err != nil {
			return nil, errors.Join(fmt.Errorf("%w: %q", ErrInvalidLocaleTag, lang), err)
		}
	}

	fallbackLocale, ok := lookupSupported(cfg.FallbackLocale, cfg.SupportedLocales)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFallbackLocaleNotSupported, cfg.FallbackLocale)
	}

	fallbackTimezone, ok := timezone.Canonicalize(cfg.FallbackTimezone)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFallbackTimezone, cfg.FallbackTimezone)
	}

	sources := allSources
	if len(cfg.Sources) > 0 {
		parsed, err := ParseSources(cfg.Sources)
		if err != nil {
			return nil, err
		}
		sources = newSourceSet(parsed...)
	}

	r := &Resolver{
		supported:        slices.Clone(cfg.SupportedLocales),
		fallbackLocale:   fallbackLocale,
		fallbackTimezone: fallbackTimezone,
		sources:          sources,
		match:            i18n.BestMatch,
		lookup:           timezone.Canonicalize,
		logger:           slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// SupportedLocales returns a copy of the supported locales in configured order.
func (r *Resolver) SupportedLocales() []string {
	return slices.Clone(r.supported)
}

func (r *Resolver) FallbackLocale() string   { return r.fallbackLocale }
func (r *Resolver) FallbackTimezone() string { return r.fallbackTimezone }

// Locale resolves the locale for rc.
func (r *Resolver) Locale(rc RequestContext) string {
	lang, _ := resolveLocale(rc, r.supported, r.fallbackLocale, r.sources, r.match)
	return lang
}

// Timezone resolves the timezone for rc.
func (r *Resolver) Timezone(rc RequestContext) string {
	tz, _ := resolveTimezone(rc, r.fallbackTimezone, r.sources, r.lookup)
	return tz
}

// Resolve resolves both values and reports where they came from.
func (r *Resolver) Resolve(ctx context.Context, rc RequestContext) Result {
	var res Result
	res.Locale, res.LocaleSource = resolveLocale(rc, r.supported, r.fallbackLocale, r.sources, r.match)
	res.Timezone, res.TimezoneSource = resolveTimezone(rc, r.fallbackTimezone, r.sources, r.lookup)

	r.logger.DebugContext(ctx, "Locale resolved",
		slog.String("locale", res.Locale),
		slog.String("locale_source", string(res.LocaleSource)),
		slog.String("timezone", res.Timezone),
		slog.String("timezone_source", string(res.TimezoneSource)),
	)

	return res
}
