package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrNilAdapter           = errors.New("translation adapter is nil")
	ErrEmptyLanguageCode    = errors.New("empty language code in translations")
	ErrNilTranslations      = errors.New("nil translations map")

	ErrParsingCancelled = errors.New("translation parsing cancelled")
	ErrFailedToParse    = errors.New("failed to parse translation content")
	ErrInvalidStructure = errors.New("invalid translation structure")

	ErrLoadingCancelled      = errors.New("loading translations cancelled")
	ErrFailedToReadDirectory = errors.New("failed to read translations directory")
	ErrFailedToReadFile      = errors.New("failed to read translation file")
	ErrNoTranslationFiles    = errors.New("no valid translation files found")
)

// StructureError reports a language entry whose value is not a map of translations.
type StructureError struct {
	Lang string
	Got  any
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("invalid translations for language %q: expected map, got %T", e.Lang, e.Got)
}

func (e *StructureError) Unwrap() error { return ErrInvalidStructure }
