package i18n

import (
	"context"
	"errors"
	"strings"

	"github.com/BurntSushi/toml"
)

// TOMLParser implements the Parser interface for TOML files, where every
// language is a table:
//
//	[fr]
//	home_title = "Bienvenue chez Holberton"
type TOMLParser struct{}

func NewTOMLParser() *TOMLParser {
	return &TOMLParser{}
}

func (p *TOMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if _, err := toml.Decode(string(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}

	return toTranslations(data)
}

func (p *TOMLParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "toml")
}
