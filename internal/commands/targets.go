package commands

import (
	"context"

	"github.com/okra-platform/cspoet/internal/codegen"
)

// TargetsCommand prints the registered generator targets
type TargetsCommand struct {
	registry *codegen.Registry
	output   Output
}

// NewTargetsCommand lists the targets of the default registry
func NewTargetsCommand() *TargetsCommand {
	return &TargetsCommand{
		registry: codegen.DefaultRegistry,
		output:   &defaultOutput{},
	}
}

// Execute prints one target per line
func (tc *TargetsCommand) Execute(ctx context.Context) error {
	for _, target := range tc.registry.Targets() {
		tc.output.Println(target)
	}
	return nil
}
