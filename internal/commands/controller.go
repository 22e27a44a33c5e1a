// Package commands contains the CLI commands for the application
package commands

import (
	"context"
)

// Flags holds the global and per-command flag values
type Flags struct {
	LogLevel   string
	ConfigPath string
	Output     string
	DryRun     bool
}

// Controller dispatches CLI actions to their commands
type Controller struct {
	Flags *Flags
}

func (c *Controller) flags() *Flags {
	if c.Flags == nil {
		return &Flags{}
	}
	return c.Flags
}

// Init creates cspoet.yaml and a sample schema
func (c *Controller) Init(ctx context.Context) error {
	return NewInitCommand().Run(ctx)
}

// Generate builds the project once
func (c *Controller) Generate(ctx context.Context) error {
	f := c.flags()
	return NewGenerateCommand().Execute(ctx, GenerateOptions{
		ConfigPath: f.ConfigPath,
		Output:     f.Output,
		DryRun:     f.DryRun,
	})
}

// Watch builds the project and rebuilds it on change
func (c *Controller) Watch(ctx context.Context) error {
	return NewWatchCommand().Execute(ctx, c.flags().ConfigPath)
}

// Targets lists the registered generator targets
func (c *Controller) Targets(ctx context.Context) error {
	return NewTargetsCommand().Execute(ctx)
}
