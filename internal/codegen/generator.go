package codegen

import (
	"github.com/okra-platform/cspoet/internal/schema"
	"github.com/okra-platform/cspoet/writer"
)

// Generator is the interface that all target generators must implement
type Generator interface {
	// Units maps the schema to the files to generate
	Units(s *schema.Schema) ([]Unit, error)

	// Language returns the name of the target language (e.g. "csharp")
	Language() string

	// FileExtension returns the file extension for generated files (e.g. ".cs")
	FileExtension() string
}

// Unit is one generated file: a path relative to the output directory and
// the element tree rendered into it.
type Unit struct {
	Path string
	Root writer.Element
}

// Options contains common options for code generation
type Options struct {
	// Namespace overrides the namespace declared by the schema header
	Namespace string `yaml:"namespace"`

	// Records generates object types as records instead of classes
	Records bool `yaml:"records"`

	// JSONNames adds [JsonPropertyName] when the generated name differs
	// from the schema name
	JSONNames bool `yaml:"jsonNames"`

	// Split writes one file per declaration
	Split bool `yaml:"split"`
}

// Factory creates a generator configured with opts
type Factory func(opts Options) Generator
