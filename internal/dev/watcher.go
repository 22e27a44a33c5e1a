// Package dev rebuilds generated sources when schema files change
package dev

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher watches files for changes based on patterns
type Watcher struct {
	watcher  *fsnotify.Watcher
	include  []string
	exclude  []string
	logger   zerolog.Logger
	onChange func(path string, op fsnotify.Op)
}

// NewWatcher creates a new file watcher. Patterns match file base names;
// "**/*.ext" matches the extension at any depth and exclude patterns ending
// in "/" match directory names anywhere in the path.
func NewWatcher(include, exclude []string, logger zerolog.Logger, onChange func(path string, op fsnotify.Op)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}

	return &Watcher{
		watcher:  watcher,
		include:  include,
		exclude:  exclude,
		logger:   logger.With().Str("component", "watcher").Logger(),
		onChange: onChange,
	}, nil
}

// AddDirectory recursively adds a directory to the watcher
func (w *Watcher) AddDirectory(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && w.excluded(path) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return errors.Wrapf(err, "watch directory %s", path)
		}
		return nil
	})
}

// Start begins watching for file changes and blocks until ctx is done
func (w *Watcher) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return errors.New("watcher channel closed")
			}

			if w.shouldWatch(event.Name) {
				w.onChange(event.Name, event.Op)
			}

			// Watch directories created after start
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.AddDirectory(event.Name); err != nil {
						w.logger.Warn().Err(err).Str("path", event.Name).Msg("failed to watch new directory")
					}
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return errors.New("watcher error channel closed")
			}
			w.logger.Warn().Err(err).Msg("watcher error")
		}
	}
}

// excluded reports whether path matches an exclude pattern
func (w *Watcher) excluded(path string) bool {
	base := filepath.Base(path)
	segments := strings.Split(filepath.ToSlash(path), "/")
	for _, pattern := range w.exclude {
		if dir, ok := strings.CutSuffix(pattern, "/"); ok {
			for _, segment := range segments {
				if segment == dir {
					return true
				}
			}
			continue
		}
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}

// shouldWatch checks if a file should trigger a change event based on patterns
func (w *Watcher) shouldWatch(path string) bool {
	if w.excluded(path) {
		return false
	}

	base := filepath.Base(path)
	for _, pattern := range w.include {
		if ext, ok := strings.CutPrefix(pattern, "**/*"); ok {
			if strings.HasSuffix(base, ext) {
				return true
			}
			continue
		}
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}

// Close stops the watcher
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
