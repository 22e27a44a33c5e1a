// Package build generates C# sources from the project schemas
package build

import (
	"context"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/okra-platform/cspoet/internal/codegen"
	"github.com/okra-platform/cspoet/internal/config"
	"github.com/okra-platform/cspoet/internal/schema"
	"github.com/okra-platform/cspoet/writer"
)

var (
	// ErrNoSchemas is returned when the schema pattern matches no file
	ErrNoSchemas = errors.New("no schema files")

	// ErrDuplicateOutput is returned when two schemas generate the same file
	ErrDuplicateOutput = errors.New("duplicate output file")
)

// Result describes a finished build
type Result struct {
	// Files are the absolute paths written, in sorted order
	Files []string

	// Schemas are the schema files that were read
	Schemas []string

	Duration time.Duration
}

// Output is one rendered file that has not been written yet
type Output struct {
	// Path is relative to the output directory
	Path    string
	Schema  string
	Content string
}

// Builder turns schema files into C# files
type Builder struct {
	config      *config.Config
	projectRoot string
	registry    *codegen.Registry
	logger      zerolog.Logger
	concurrency int
}

// Option configures a Builder
type Option func(*Builder)

// WithRegistry replaces the default generator registry
func WithRegistry(r *codegen.Registry) Option {
	return func(b *Builder) {
		b.registry = r
	}
}

// WithConcurrency limits the number of schemas processed at once
func WithConcurrency(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBuilder creates a builder for the project rooted at projectRoot
func NewBuilder(cfg *config.Config, projectRoot string, logger zerolog.Logger, opts ...Option) *Builder {
	b := &Builder{
		config:      cfg,
		projectRoot: projectRoot,
		registry:    codegen.DefaultRegistry,
		logger:      logger.With().Str("component", "builder").Logger(),
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// OutputDir returns the absolute output directory
func (b *Builder) OutputDir() string {
	return config.Resolve(b.projectRoot, b.config.Output)
}

// Schemas expands the configured schema pattern
func (b *Builder) Schemas() ([]string, error) {
	pattern := config.Resolve(b.projectRoot, b.config.Schema)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "expand schema pattern %s", b.config.Schema)
	}
	if len(matches) == 0 {
		err := errors.Wrapf(ErrNoSchemas, "pattern %s", b.config.Schema)
		return nil, errors.WithHintf(err, "check the schema setting in %s", config.FileName)
	}
	slices.Sort(matches)
	return matches, nil
}

// Generate parses every schema and renders the generated files in memory
func (b *Builder) Generate(ctx context.Context) ([]Output, error) {
	gen, err := b.registry.Get(b.config.Target, codegen.Options{
		Namespace: b.config.Namespace,
		Records:   b.config.Records,
		JSONNames: b.config.JSONNames,
		Split:     b.config.Split,
	})
	if err != nil {
		return nil, err
	}

	schemas, err := b.Schemas()
	if err != nil {
		return nil, err
	}

	perSchema := make([][]Output, len(schemas))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, path := range schemas {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outputs, err := b.generateSchema(gen, path)
			if err != nil {
				return err
			}
			perSchema[i] = outputs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := map[string]string{}
	var all []Output
	for _, outputs := range perSchema {
		for _, out := range outputs {
			if prev, ok := seen[out.Path]; ok {
				return nil, errors.Wrapf(ErrDuplicateOutput, "%s is generated by %s and %s", out.Path, prev, out.Schema)
			}
			seen[out.Path] = out.Schema
			all = append(all, out)
		}
	}
	slices.SortFunc(all, func(a, b Output) int { return strings.Compare(a.Path, b.Path) })
	return all, nil
}

func (b *Builder) generateSchema(gen codegen.Generator, path string) ([]Output, error) {
	s, err := schema.ParseFile(path)
	if err != nil {
		return nil, err
	}

	units, err := gen.Units(s)
	if err != nil {
		return nil, errors.Wrapf(err, "generate %s", path)
	}

	outputs := make([]Output, 0, len(units))
	for _, unit := range units {
		content, err := writer.Render(unit.Root, writer.WithIndent(b.config.Indent))
		if err != nil {
			return nil, errors.Wrapf(err, "render %s", unit.Path)
		}
		outputs = append(outputs, Output{Path: unit.Path, Schema: path, Content: content})
	}

	b.logger.Debug().
		Str("schema", path).
		Int("types", len(s.Types)+len(s.Inputs)+len(s.Interfaces)).
		Int("enums", len(s.Enums)).
		Int("services", len(s.Services)).
		Int("files", len(outputs)).
		Msg("generated schema")
	return outputs, nil
}

// Build generates every file and writes it to the output directory
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()

	outputs, err := b.Generate(ctx)
	if err != nil {
		return nil, err
	}

	outDir := b.OutputDir()
	files := make([]string, len(outputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, out := range outputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(outDir, out.Path)
			if err := writer.RenderFile(path, content(out.Content)); err != nil {
				return err
			}
			files[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		Files:    files,
		Schemas:  uniqueSchemas(outputs),
		Duration: time.Since(start),
	}
	b.logger.Info().
		Int("files", len(result.Files)).
		Str("output", outDir).
		Dur("duration", result.Duration).
		Msg("build complete")
	return result, nil
}

func uniqueSchemas(outputs []Output) []string {
	var schemas []string
	for _, out := range outputs {
		if !slices.Contains(schemas, out.Schema) {
			schemas = append(schemas, out.Schema)
		}
	}
	slices.Sort(schemas)
	return schemas
}

// content is pre-rendered text written as a single element.
type content string

func (c content) Render(w *writer.Writer) error {
	w.Write(string(c))
	return nil
}
