package locale

import "errors"

var (
	ErrNoSupportedLocales         = errors.New("no supported locales configured")
	ErrInvalidLocaleTag           = errors.New("invalid locale tag")
	ErrFallbackLocaleNotSupported = errors.New("fallback locale is not a supported locale")
	ErrInvalidFallbackTimezone    = errors.New("fallback timezone is not a known timezone")
	ErrUnknownSource              = errors.New("unknown resolution source")
)
