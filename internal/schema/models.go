package schema

import "strings"

// Schema is the root of a parsed .cs.gql file
type Schema struct {
	Types      []ObjectType `json:"types"`
	Inputs     []ObjectType `json:"inputs"`
	Interfaces []ObjectType `json:"interfaces"`
	Enums      []EnumType   `json:"enums"`
	Services   []Service    `json:"services"`
	Meta       Metadata     `json:"meta"`
}

// Metadata is the @csharp(...) header of the file
type Metadata struct {
	Namespace string   `json:"namespace"`
	Usings    []string `json:"usings"`
}

// ObjectType represents a "type", "input" or "interface" block
type ObjectType struct {
	Name       string      `json:"name"`
	Doc        string      `json:"doc"`
	Implements []string    `json:"implements"`
	Fields     []Field     `json:"fields"`
	Directives []Directive `json:"directives"`
}

// Field represents a field inside a type, input or interface
type Field struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	// ItemRequired is set for lists whose items are non-null, e.g. [String!]
	ItemRequired bool        `json:"itemRequired"`
	Default      string      `json:"default"`
	HasDefault   bool        `json:"hasDefault"`
	Directives   []Directive `json:"directives"`
	Doc          string      `json:"doc"`
}

// IsList reports whether the field type is a list.
func (f Field) IsList() bool {
	return strings.HasPrefix(f.Type, "[")
}

// ElemType returns the named type of the field, unwrapping lists.
func (f Field) ElemType() string {
	return strings.Trim(f.Type, "[]")
}

// Directive returns the directive with the given name, if present.
func (f Field) Directive(name string) (Directive, bool) {
	return findDirective(f.Directives, name)
}

// EnumType represents an enum definition
type EnumType struct {
	Name   string      `json:"name"`
	Doc    string      `json:"doc"`
	Values []EnumValue `json:"values"`
}

// EnumValue represents a single value inside an enum
type EnumValue struct {
	Name       string      `json:"name"`
	Doc        string      `json:"doc"`
	Directives []Directive `json:"directives"`
}

// Service represents a "service" block (transformed from type Service_*)
type Service struct {
	Name    string   `json:"name"`
	Doc     string   `json:"doc"`
	Methods []Method `json:"methods"`
}

// Method represents a single service method
type Method struct {
	Name           string      `json:"name"`
	InputName      string      `json:"inputName"`
	InputType      string      `json:"inputType"`
	InputRequired  bool        `json:"inputRequired"`
	OutputType     string      `json:"outputType"`
	OutputRequired bool        `json:"outputRequired"`
	Directives     []Directive `json:"directives"`
	Doc            string      `json:"doc"`
}

// Directive returns the directive with the given name, if present.
func (m Method) Directive(name string) (Directive, bool) {
	return findDirective(m.Directives, name)
}

// Directive represents an attached directive (e.g. @deprecated)
type Directive struct {
	Name string            `json:"name"`
	Args map[string]string `json:"args"`
}

func findDirective(directives []Directive, name string) (Directive, bool) {
	for _, d := range directives {
		if d.Name == name {
			return d, true
		}
	}
	return Directive{}, false
}

// UsesLists reports whether any type, input or interface has a list field.
func (s *Schema) UsesLists() bool {
	for _, group := range [][]ObjectType{s.Types, s.Inputs, s.Interfaces} {
		for _, t := range group {
			for _, f := range t.Fields {
				if f.IsList() {
					return true
				}
			}
		}
	}
	for _, svc := range s.Services {
		for _, m := range svc.Methods {
			if strings.HasPrefix(m.InputType, "[") || strings.HasPrefix(m.OutputType, "[") {
				return true
			}
		}
	}
	return false
}
