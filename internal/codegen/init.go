package codegen

import (
	"github.com/okra-platform/cspoet/internal/codegen/csharp"
	"github.com/okra-platform/cspoet/internal/schema"
)

// DefaultRegistry is the global registry instance with pre-registered generators
var DefaultRegistry = NewRegistry()

func init() {
	newCSharp := func(opts Options) Generator {
		return csharpGenerator{csharp.NewGenerator(csharp.Config{
			Namespace: opts.Namespace,
			Records:   opts.Records,
			JSONNames: opts.JSONNames,
			Split:     opts.Split,
		})}
	}

	DefaultRegistry.Register("csharp", newCSharp)
	// cs is an alias for csharp
	DefaultRegistry.Register("cs", newCSharp)
}

// csharpGenerator adapts csharp.Generator files to units.
type csharpGenerator struct {
	*csharp.Generator
}

func (g csharpGenerator) Units(s *schema.Schema) ([]Unit, error) {
	files, err := g.Files(s)
	if err != nil {
		return nil, err
	}
	units := make([]Unit, len(files))
	for i, f := range files {
		units[i] = Unit{Path: f.Path, Root: f.Root}
	}
	return units, nil
}
