package commands

import (
	"bytes"
	"context"
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"

	"github.com/okra-platform/cspoet/internal/config"
)

//go:embed templates/*
var templatesFS embed.FS

const schemaTemplate = "templates/schema.cs.gql.tmpl"

// ErrAlreadyInitialized is returned when cspoet.yaml already exists
var ErrAlreadyInitialized = errors.New("project already initialized")

// InitOptions are the answers collected by the init form
type InitOptions struct {
	Name      string
	Namespace string
	Schema    string
}

type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(name string, data []byte, perm os.FileMode) error
	Getwd() (string, error)
}

type osFileSystem struct{}

func (fs *osFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (fs *osFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (fs *osFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (fs *osFileSystem) Getwd() (string, error) {
	return os.Getwd()
}

type InitCommand struct {
	filesystem  FileSystem
	templatesFS fs.FS
	output      Output
	// For testing: if set, skip prompting
	testOptions *InitOptions
}

func NewInitCommand() *InitCommand {
	return &InitCommand{
		filesystem:  &osFileSystem{},
		templatesFS: templatesFS,
		output:      &defaultOutput{},
	}
}

func (ic *InitCommand) Run(ctx context.Context) error {
	return ic.RunWithOptions(ctx)
}

func (ic *InitCommand) RunWithOptions(ctx context.Context, opts ...tea.ProgramOption) error {
	dir, err := ic.filesystem.Getwd()
	if err != nil {
		return errors.Wrap(err, "get current directory")
	}

	configPath := filepath.Join(dir, config.FileName)
	if _, err := ic.filesystem.Stat(configPath); err == nil {
		err := errors.Wrapf(ErrAlreadyInitialized, "%s exists", configPath)
		return errors.WithHint(err, "edit the existing file or remove it first")
	}

	var options *InitOptions
	if ic.testOptions != nil {
		options = ic.testOptions
	} else {
		options, err = ic.promptInitOptions(dir, opts...)
		if err != nil {
			return errors.Wrap(err, "get init options")
		}
	}

	cfg := config.Default()
	cfg.Name = options.Name
	cfg.Namespace = options.Namespace
	if options.Schema != "" {
		cfg.Schema = options.Schema
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	if err := ic.filesystem.WriteFile(configPath, data, 0o644); err != nil {
		return errors.Wrap(err, "write config file")
	}
	ic.output.Printf("Created %s\n", configPath)

	schemaPath := config.Resolve(dir, cfg.Schema)
	if _, err := ic.filesystem.Stat(schemaPath); err == nil {
		ic.output.Printf("Keeping existing schema %s\n", schemaPath)
		return nil
	}
	if strings.ContainsAny(cfg.Schema, "*?[") {
		// A glob has no single file to seed.
		return nil
	}

	schema, err := ic.renderSchema(options)
	if err != nil {
		return err
	}
	if err := ic.filesystem.MkdirAll(filepath.Dir(schemaPath), 0o755); err != nil {
		return errors.Wrap(err, "create schema directory")
	}
	if err := ic.filesystem.WriteFile(schemaPath, schema, 0o644); err != nil {
		return errors.Wrap(err, "write schema")
	}
	ic.output.Printf("Created %s\n", schemaPath)
	return nil
}

func (ic *InitCommand) renderSchema(options *InitOptions) ([]byte, error) {
	tmpl, err := template.ParseFS(ic.templatesFS, schemaTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "load schema template")
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, options); err != nil {
		return nil, errors.Wrap(err, "render schema template")
	}
	return buf.Bytes(), nil
}

func (ic *InitCommand) promptInitOptions(dir string, opts ...tea.ProgramOption) (*InitOptions, error) {
	options := &InitOptions{
		Name:   filepath.Base(dir),
		Schema: config.Default().Schema,
	}
	options.Namespace = defaultNamespace(options.Name)

	form := ic.createInitForm(options)

	if len(opts) > 0 {
		// For testing: run with provided options
		program := tea.NewProgram(form, opts...)
		if _, err := program.Run(); err != nil {
			return nil, err
		}
	} else {
		if err := form.Run(); err != nil {
			return nil, err
		}
	}
	return options, nil
}

func (ic *InitCommand) createInitForm(options *InitOptions) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Name of your cspoet project").
				Value(&options.Name).
				Validate(validateName),

			huh.NewInput().
				Title("Namespace").
				Description("C# namespace of the generated code").
				Value(&options.Namespace).
				Validate(validateNamespace),

			huh.NewInput().
				Title("Schema").
				Description("Path of the schema file").
				Value(&options.Schema).
				Validate(validateSchemaPath),
		),
	)
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("project name cannot be empty")
	}
	return nil
}

// validateNamespace accepts dotted C# identifiers such as Shop.Models.
func validateNamespace(s string) error {
	if s == "" {
		return errors.New("namespace cannot be empty")
	}
	for segment := range strings.SplitSeq(s, ".") {
		if !isIdentifier(segment) {
			return errors.Newf("%q is not a valid namespace", s)
		}
	}
	return nil
}

func validateSchemaPath(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("schema path cannot be empty")
	}
	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// defaultNamespace derives a namespace from a directory name like my-shop.
func defaultNamespace(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if b.Len() == 0 && unicode.IsDigit(r) {
			b.WriteRune('_')
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "Generated"
	}
	return b.String()
}
