// Package csharp maps a parsed schema to C# declarations.
package csharp

import (
	"slices"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"

	poet "github.com/okra-platform/cspoet/csharp"
	"github.com/okra-platform/cspoet/internal/schema"
)

// DefaultNamespace is used when neither the config nor the schema names one.
const DefaultNamespace = "Generated"

var rules = inflect.NewDefaultRuleset()

// scalars maps schema scalars to C# types.
var scalars = map[string]string{
	"ID":       "string",
	"String":   "string",
	"Int":      "int",
	"Int64":    "long",
	"Long":     "long",
	"Float":    "double",
	"Boolean":  "bool",
	"DateTime": "DateTimeOffset",
	"Time":     "DateTimeOffset",
	"Decimal":  "decimal",
	"Bytes":    "byte[]",
	"Any":      "object",
}

// Config configures the generator.
type Config struct {
	Namespace string
	Records   bool
	JSONNames bool
	Split     bool
}

// File is one generated source file.
type File struct {
	Path string
	Root *poet.File
}

// Generator generates C# code from a schema
type Generator struct {
	config Config
}

// NewGenerator creates a new C# code generator
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "csharp"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".cs"
}

// Files maps the schema to C# files. Declarations are ordered enums,
// interfaces, object types, inputs, then services.
func (g *Generator) Files(s *schema.Schema) ([]File, error) {
	u := &unit{
		config:     g.config,
		enums:      map[string]bool{},
		interfaces: map[string]bool{},
	}
	for _, e := range s.Enums {
		u.enums[e.Name] = true
	}
	for _, i := range s.Interfaces {
		u.interfaces[i.Name] = true
	}

	var decls []declaration
	for _, e := range s.Enums {
		decls = append(decls, declaration{name: typeName(e.Name), member: u.enum(e)})
	}
	for _, i := range s.Interfaces {
		decls = append(decls, declaration{name: u.interfaceName(i.Name), member: u.interfaceType(i)})
	}
	for _, t := range s.Types {
		decls = append(decls, declaration{name: typeName(t.Name), member: u.objectType(t, false)})
	}
	for _, in := range s.Inputs {
		decls = append(decls, declaration{name: typeName(in.Name), member: u.objectType(in, true)})
	}
	for _, svc := range s.Services {
		decls = append(decls, declaration{name: "I" + typeName(svc.Name), member: u.service(svc)})
	}

	usings := u.usings(s)
	namespace := g.namespace(s)

	if !g.config.Split {
		members := make([]poet.FileMember, len(decls))
		for i, d := range decls {
			members[i] = d.member
		}
		return []File{{
			Path: lastSegment(namespace) + g.FileExtension(),
			Root: newFile(usings, namespace, members),
		}}, nil
	}

	files := make([]File, 0, len(decls))
	for _, d := range decls {
		files = append(files, File{
			Path: d.name + g.FileExtension(),
			Root: newFile(usings, namespace, []poet.FileMember{d.member}),
		})
	}
	return files, nil
}

func (g *Generator) namespace(s *schema.Schema) string {
	switch {
	case g.config.Namespace != "":
		return g.config.Namespace
	case s.Meta.Namespace != "":
		return s.Meta.Namespace
	default:
		return DefaultNamespace
	}
}

type declaration struct {
	name   string
	member poet.FileMember
}

func newFile(usings []string, namespace string, members []poet.FileMember) *poet.File {
	return &poet.File{
		Header:     []string{"<auto-generated />"},
		Directives: []string{"#nullable enable"},
		Usings:     poet.Usings(usings...),
		Members:    []poet.FileMember{poet.NewNamespace(namespace, members...)},
	}
}

func lastSegment(namespace string) string {
	if i := strings.LastIndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// typeName returns the PascalCase form of a schema name.
func typeName(name string) string {
	if isUpperSnake(name) {
		name = strings.ToLower(name)
	}
	return rules.Camelize(name)
}

// isUpperSnake reports whether name is written like FREE or PRO_PLAN.
func isUpperSnake(name string) bool {
	hasLetter := false
	for _, r := range name {
		if unicode.IsLower(r) {
			return false
		}
		hasLetter = hasLetter || unicode.IsUpper(r)
	}
	return hasLetter && len(name) > 1
}

func dedupe(values []string) []string {
	var out []string
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
