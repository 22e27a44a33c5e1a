package commands

import (
	"context"
	"os"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/okra-platform/cspoet/internal/config"
	"github.com/okra-platform/cspoet/internal/dev"
)

// WatchFunc runs a watch session until ctx is done
type WatchFunc func(ctx context.Context, cfg *config.Config, projectRoot string, builder Builder) error

// WatchDependencies for the watch command
type WatchDependencies struct {
	ConfigLoader   ConfigLoader
	BuilderFactory BuilderFactory
	SignalNotifier SignalNotifier
	Output         Output
	Watch          WatchFunc
}

// WatchCommand rebuilds the project whenever a schema changes
type WatchCommand struct {
	deps WatchDependencies
}

// NewWatchCommand creates a watch command with default dependencies
func NewWatchCommand() *WatchCommand {
	return &WatchCommand{
		deps: WatchDependencies{
			ConfigLoader:   &defaultConfigLoader{},
			BuilderFactory: newBuilderFactory(),
			SignalNotifier: &defaultSignalNotifier{},
			Output:         &defaultOutput{},
			Watch:          watchProject(log.Logger),
		},
	}
}

// WithDependencies allows injecting custom dependencies for testing
func (wc *WatchCommand) WithDependencies(deps WatchDependencies) *WatchCommand {
	wc.deps = deps
	return wc
}

// Execute runs the watch command
func (wc *WatchCommand) Execute(ctx context.Context, configPath string) error {
	cfg, projectRoot, err := wc.deps.ConfigLoader.LoadConfig(configPath)
	if err != nil {
		return errors.Wrap(err, "load project config")
	}

	wc.deps.Output.Printf("Watching %s\n", projectRoot)
	wc.deps.Output.Printf("Schema: %s\n", config.Resolve(projectRoot, cfg.Schema))
	wc.deps.Output.Printf("Output: %s\n", config.Resolve(projectRoot, cfg.Output))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	wc.deps.SignalNotifier.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer wc.deps.SignalNotifier.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			wc.deps.Output.Println("Stopping watch...")
			cancel()
		case <-ctx.Done():
		}
	}()

	builder := wc.deps.BuilderFactory.NewBuilder(cfg, projectRoot)
	if err := wc.deps.Watch(ctx, cfg, projectRoot, builder); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return errors.Wrap(err, "watch")
	}
	return nil
}

func watchProject(logger zerolog.Logger) WatchFunc {
	return func(ctx context.Context, cfg *config.Config, projectRoot string, builder Builder) error {
		session := dev.NewSession(builder, logger)
		return dev.Watch(ctx, projectRoot, cfg.Watch.Include, cfg.Watch.Exclude, session, logger)
	}
}
