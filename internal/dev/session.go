package dev

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/okra-platform/cspoet/internal/build"
)

// DefaultDebounce is how long a session waits for changes to settle
const DefaultDebounce = 200 * time.Millisecond

// Builder is the build run on every change
type Builder interface {
	Build(ctx context.Context) (*build.Result, error)
}

// Session rebuilds once at start and again whenever changes settle
type Session struct {
	builder  Builder
	logger   zerolog.Logger
	debounce time.Duration
	onBuild  func(*build.Result, error)

	// buildMu prevents concurrent builds
	buildMu sync.Mutex
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithDebounce sets the settle delay
func WithDebounce(d time.Duration) SessionOption {
	return func(s *Session) {
		s.debounce = d
	}
}

// OnBuild registers a callback run after every build
func OnBuild(fn func(*build.Result, error)) SessionOption {
	return func(s *Session) {
		s.onBuild = fn
	}
}

// NewSession creates a watch session around builder
func NewSession(builder Builder, logger zerolog.Logger, opts ...SessionOption) *Session {
	s := &Session{
		builder:  builder,
		logger:   logger.With().Str("component", "session").Logger(),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rebuild runs one build. Failures are logged and reported, never fatal.
func (s *Session) Rebuild(ctx context.Context) (*build.Result, error) {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	result, err := s.builder.Build(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("build failed")
	} else {
		s.logger.Info().Int("files", len(result.Files)).Dur("duration", result.Duration).Msg("rebuilt")
	}
	if s.onBuild != nil {
		s.onBuild(result, err)
	}
	return result, err
}

// Run builds once, then rebuilds after each burst of changes received on
// changes. It returns when ctx is done or changes is closed.
func (s *Session) Run(ctx context.Context, changes <-chan string) error {
	s.Rebuild(ctx)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-changes:
			if !ok {
				return nil
			}
			s.logger.Debug().Str("path", path).Msg("change detected")
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				timer.Reset(s.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			s.Rebuild(ctx)
		}
	}
}

// Watch runs watcher and session together until ctx is done
func Watch(ctx context.Context, dir string, include, exclude []string, session *Session, logger zerolog.Logger) error {
	changes := make(chan string, 64)
	watcher, err := NewWatcher(include, exclude, logger, func(path string, _ fsnotify.Op) {
		select {
		case changes <- path:
		default:
			// A rebuild is already pending.
		}
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.AddDirectory(dir); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := watcher.Start(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return session.Run(ctx, changes)
	})
	return g.Wait()
}
