package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// block renders its members inside braces.
type block struct{ members []Element }

func (b block) Render(w *Writer) error {
	return w.Block(func() error {
		return WriteMembers(w, b.members)
	})
}

type failingSink struct {
	err error
}

func (f *failingSink) Write([]byte) (int, error) { return 0, f.err }

func TestRender(t *testing.T) {
	// Test: End-to-end scenario with a blank line and a comment
	out, err := Render(block{members: []Element{blank{}, comment{"Test"}}})
	require.NoError(t, err)

	assert.Equal(t, "{\n\n    // Test\n}\n", out)
}

func TestRender_WithIndent(t *testing.T) {
	// Test: Indent string is configurable
	out, err := Render(block{members: []Element{plain{"x"}}}, WithIndent("\t"))
	require.NoError(t, err)

	assert.Equal(t, "{\n\tx\n}\n", out)
}

func TestRender_InvalidArguments(t *testing.T) {
	_, err := Render(nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	err = RenderTo(nil, plain{"x"})
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	err = RenderFile(filepath.Join(t.TempDir(), "x.cs"), nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestRender_TypedNilRoot(t *testing.T) {
	// Test: a nil pointer root fails instead of panicking
	out, err := Render((*field)(nil))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Empty(t, out)

	path := filepath.Join(t.TempDir(), "x.cs")
	err = RenderFile(path, (*field)(nil))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRender_ElementErrorIsReturned(t *testing.T) {
	boom := errors.New("boom")

	_, err := Render(failing{boom})

	assert.ErrorIs(t, err, boom)
}

func TestRenderTo_SinkFailure(t *testing.T) {
	// Test: A sink error is reported and later writes are skipped
	sinkErr := errors.New("disk full")
	sink := &failingSink{err: sinkErr}

	err := RenderTo(sink, block{members: []Element{plain{"a"}, plain{"b"}}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, sinkErr))
}

func TestRenderTo_ClosedFile(t *testing.T) {
	// Test: Writing into a closed file fails with an I/O error
	f, err := os.Create(filepath.Join(t.TempDir(), "closed.cs"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	err = RenderTo(f, plain{"x"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrClosed))
}

func TestRenderFile(t *testing.T) {
	// Test: Parent directories are created and files are truncated
	path := filepath.Join(t.TempDir(), "nested", "dir", "Out.cs")

	require.NoError(t, RenderFile(path, plain{"first render, longer text"}))
	require.NoError(t, RenderFile(path, plain{"second"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))
}

func TestRenderFile_PartialOutputKept(t *testing.T) {
	// Test: Output written before an error stays in the file
	path := filepath.Join(t.TempDir(), "Partial.cs")
	boom := errors.New("boom")

	err := RenderFile(path, block{members: []Element{plain{"a"}, failing{boom}}})
	assert.ErrorIs(t, err, boom)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "{\n    a\n}\n", string(data))
}
