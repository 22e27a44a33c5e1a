package writer

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

type options struct {
	indent string
}

// Option configures a render.
type Option func(*options)

// WithIndent sets the string written once per indentation level.
func WithIndent(indent string) Option {
	return func(o *options) {
		o.indent = indent
	}
}

func buildOptions(opts []Option) options {
	o := options{indent: DefaultIndent}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Render renders e and returns the generated text.
func Render(e Element, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := RenderTo(&sb, e, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderTo renders e into out. Output written before a failure is left in out.
func RenderTo(out io.Writer, e Element, opts ...Option) error {
	if out == nil {
		return errors.Wrap(ErrInvalidArgument, "render: nil output")
	}
	if IsNil(e) {
		return errors.Wrap(ErrInvalidArgument, "render: nil element")
	}

	o := buildOptions(opts)
	w := NewWriter(out, o.indent)
	if err := e.Render(w); err != nil {
		return err
	}
	return w.Err()
}

// RenderFile renders e into the file at path, creating its parent directory
// and truncating any existing file. The file is closed on every path.
func RenderFile(path string, e Element, opts ...Option) (err error) {
	if IsNil(e) {
		return errors.Wrap(ErrInvalidArgument, "render: nil element")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	if err := RenderTo(f, e, opts...); err != nil {
		return errors.Wrapf(err, "render %s", path)
	}
	return nil
}
