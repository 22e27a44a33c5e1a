package commands

import (
	"context"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// GenerateOptions are the flags of the generate command
type GenerateOptions struct {
	// ConfigPath is an explicit cspoet.yaml; empty searches upwards
	ConfigPath string

	// Output overrides the configured output directory
	Output string

	// DryRun prints the generated files instead of writing them
	DryRun bool
}

// GenerateDependencies for the generate command
type GenerateDependencies struct {
	ConfigLoader   ConfigLoader
	BuilderFactory BuilderFactory
	Output         Output
}

// GenerateCommand runs a single build
type GenerateCommand struct {
	deps GenerateDependencies
}

// NewGenerateCommand creates a generate command with default dependencies
func NewGenerateCommand() *GenerateCommand {
	return &GenerateCommand{
		deps: GenerateDependencies{
			ConfigLoader:   &defaultConfigLoader{},
			BuilderFactory: newBuilderFactory(),
			Output:         &defaultOutput{},
		},
	}
}

// WithDependencies allows injecting custom dependencies for testing
func (gc *GenerateCommand) WithDependencies(deps GenerateDependencies) *GenerateCommand {
	gc.deps = deps
	return gc
}

// Execute runs the generate command
func (gc *GenerateCommand) Execute(ctx context.Context, opts GenerateOptions) error {
	cfg, projectRoot, err := gc.deps.ConfigLoader.LoadConfig(opts.ConfigPath)
	if err != nil {
		return errors.Wrap(err, "load project config")
	}
	if opts.Output != "" {
		cfg.Output = opts.Output
	}

	builder := gc.deps.BuilderFactory.NewBuilder(cfg, projectRoot)

	if opts.DryRun {
		outputs, err := builder.Generate(ctx)
		if err != nil {
			return errors.Wrap(err, "generate")
		}
		for _, out := range outputs {
			gc.deps.Output.Printf("// ---- %s ----\n%s", filepath.ToSlash(out.Path), out.Content)
		}
		return nil
	}

	result, err := builder.Build(ctx)
	if err != nil {
		return errors.Wrap(err, "build")
	}
	for _, file := range result.Files {
		gc.deps.Output.Printf("wrote %s\n", file)
	}
	gc.deps.Output.Printf("generated %d file(s) from %d schema(s) in %s\n",
		len(result.Files), len(result.Schemas), result.Duration.Round(1e6))
	return nil
}
