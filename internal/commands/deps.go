package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/okra-platform/cspoet/internal/build"
	"github.com/okra-platform/cspoet/internal/config"
)

// Interfaces for dependency injection
type ConfigLoader interface {
	// LoadConfig loads the configuration at path, or searches for it when
	// path is empty. It returns the project root.
	LoadConfig(path string) (*config.Config, string, error)
}

type Builder interface {
	Generate(ctx context.Context) ([]build.Output, error)
	Build(ctx context.Context) (*build.Result, error)
	OutputDir() string
}

type BuilderFactory interface {
	NewBuilder(cfg *config.Config, projectRoot string) Builder
}

type SignalNotifier interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
}

type Output interface {
	Printf(format string, args ...any)
	Println(args ...any)
}

// Default implementations
type defaultConfigLoader struct{}

func (l *defaultConfigLoader) LoadConfig(path string) (*config.Config, string, error) {
	if path == "" {
		return config.Load()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "resolve %s", path)
	}
	cfg, err := config.LoadFromPath(abs)
	if err != nil {
		return nil, "", err
	}
	return cfg, filepath.Dir(abs), nil
}

type defaultBuilderFactory struct {
	logger zerolog.Logger
}

func (f *defaultBuilderFactory) NewBuilder(cfg *config.Config, projectRoot string) Builder {
	return build.NewBuilder(cfg, projectRoot, f.logger)
}

type defaultSignalNotifier struct{}

func (n *defaultSignalNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) {
	signal.Notify(c, sig...)
}

func (n *defaultSignalNotifier) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}

type defaultOutput struct{}

func (o *defaultOutput) Printf(format string, args ...any) {
	fmt.Printf(format, args...)
}

func (o *defaultOutput) Println(args ...any) {
	fmt.Println(args...)
}

func newBuilderFactory() *defaultBuilderFactory {
	return &defaultBuilderFactory{logger: log.Logger}
}
