package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path"
)

// TranslationAdapter loads translations keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter is a simple adapter that uses an in-memory map as the translation source
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the TranslationAdapter interface
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads every file in dir of an fs.FS that the parser supports.
// Works with embed.FS, os.DirFS and fstest.MapFS alike.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
	logger *slog.Logger
}

// NewFSAdapter returns nil if parser or fsys is nil. An empty dir means the root.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string, logger *slog.Logger) *FSAdapter {
	if parser == nil || fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir, logger: logger}
}

// NewDirectoryAdapter loads translation files from a directory on disk.
func NewDirectoryAdapter(parser Parser, dir string, logger *slog.Logger) *FSAdapter {
	if dir == "" {
		return nil
	}
	return NewFSAdapter(parser, os.DirFS(dir), ".", logger)
}

// Load implements the TranslationAdapter interface.
// A file that fails to parse is logged and skipped; Load fails only when no
// file could be loaded at all.
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(map[string]map[string]any)
	loaded := 0

	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		if err := a.loadFile(ctx, name, all); err != nil {
			a.logger.WarnContext(ctx, "Skipping translation file", slog.String("file", name), slog.Any("error", err))
			continue
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)
	}

	return all, nil
}

// loadFile parses a single file and merges it into all.
func (a *FSAdapter) loadFile(ctx context.Context, name string, all map[string]map[string]any) error {
	content, err := fs.ReadFile(a.fsys, name)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return fmt.Errorf("%w: %q is empty", ErrFailedToReadFile, name)
	}

	translations, err := a.parser.Parse(ctx, content)
	if err != nil {
		return err
	}

	for lang, messages := range translations {
		if all[lang] == nil {
			all[lang] = make(map[string]any, len(messages))
		}
		maps.Copy(all[lang], messages)
	}
	return nil
}
