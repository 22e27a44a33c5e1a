package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okra-platform/cspoet/internal/codegen"
)

func TestTargetsCommand_Execute(t *testing.T) {
	// Test: targets are listed one per line in sorted order
	output := &mockOutput{}
	cmd := &TargetsCommand{registry: codegen.DefaultRegistry, output: output}

	require.NoError(t, cmd.Execute(context.Background()))
	assert.Equal(t, []string{"cs\n", "csharp\n"}, output.messages)
}

func TestTargetsCommand_EmptyRegistry(t *testing.T) {
	// Test: an empty registry prints nothing
	output := &mockOutput{}
	cmd := &TargetsCommand{registry: codegen.NewRegistry(), output: output}

	require.NoError(t, cmd.Execute(context.Background()))
	assert.Empty(t, output.messages)
}
