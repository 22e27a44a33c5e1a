package csharp

import (
	"strings"
	"unicode"
	"unicode/utf8"

	poet "github.com/okra-platform/cspoet/csharp"
	"github.com/okra-platform/cspoet/internal/schema"
)

// unit holds the state of one Files call.
type unit struct {
	config     Config
	enums      map[string]bool
	interfaces map[string]bool
	usesJSON   bool
}

func (u *unit) usings(s *schema.Schema) []string {
	usings := []string{"System"}
	if s.UsesLists() {
		usings = append(usings, "System.Collections.Generic")
	}
	if len(s.Services) > 0 {
		usings = append(usings, "System.Threading", "System.Threading.Tasks")
	}
	if u.usesJSON {
		usings = append(usings, "System.Text.Json.Serialization")
	}
	return dedupe(append(usings, s.Meta.Usings...))
}

// interfaceName prefixes interface names with I unless they already are.
func (u *unit) interfaceName(name string) string {
	name = typeName(name)
	if len(name) > 1 && name[0] == 'I' {
		if r, _ := utf8.DecodeRuneInString(name[1:]); unicode.IsUpper(r) {
			return name
		}
	}
	return "I" + name
}

// namedType maps a named schema type to C#.
func (u *unit) namedType(name string) string {
	if cs, ok := scalars[name]; ok {
		return cs
	}
	if u.interfaces[name] {
		return u.interfaceName(name)
	}
	return typeName(name)
}

// fieldType maps a field type: optional values become T?, lists List<T>.
func (u *unit) fieldType(typ string, required, itemRequired bool) string {
	var cs string
	if strings.HasPrefix(typ, "[") {
		item := u.namedType(strings.Trim(typ, "[]"))
		if !itemRequired {
			item += "?"
		}
		cs = "List<" + item + ">"
	} else {
		cs = u.namedType(typ)
	}
	if !required {
		cs += "?"
	}
	return cs
}

func (u *unit) enum(e schema.EnumType) *poet.Enum {
	enum := poet.NewEnum(typeName(e.Name))
	enum.Doc = summary(e.Doc)
	for _, v := range e.Values {
		enum.Add(&poet.EnumMember{
			Doc:        summary(v.Doc),
			Attributes: obsolete(v.Directives),
			Name:       typeName(v.Name),
		})
	}
	return enum
}

func (u *unit) interfaceType(t schema.ObjectType) *poet.Type {
	iface := poet.NewInterface(u.interfaceName(t.Name))
	iface.Doc = summary(t.Doc)
	iface.Modifiers = poet.ModPartial
	iface.Attributes = obsolete(t.Directives)
	for _, name := range t.Implements {
		iface.Implements(u.interfaceName(name))
	}
	for _, f := range t.Fields {
		prop := u.property(f)
		prop.Visibility = poet.VisibilityDefault
		prop.ReadOnly()
		iface.Add(prop)
	}
	return iface
}

// objectType maps types and inputs to classes or records with one
// auto-property per field.
func (u *unit) objectType(t schema.ObjectType, input bool) *poet.Type {
	var decl *poet.Type
	if u.config.Records {
		decl = poet.NewRecord(typeName(t.Name))
	} else {
		decl = poet.NewClass(typeName(t.Name))
	}
	decl.Doc = summary(t.Doc)
	decl.Modifiers = poet.ModPartial
	decl.Attributes = obsolete(t.Directives)
	for _, name := range t.Implements {
		decl.Implements(u.interfaceName(name))
	}

	for _, f := range t.Fields {
		prop := u.property(f)
		if f.Required && !f.HasDefault {
			prop.Modifiers = poet.ModRequired
		}
		if input && f.HasDefault {
			prop.Default = u.defaultValue(f)
		}
		prop.InitOnly = u.config.Records
		decl.Add(prop)
	}
	return decl
}

func (u *unit) property(f schema.Field) *poet.Property {
	name := typeName(f.Name)
	prop := poet.NewProperty(u.fieldType(f.Type, f.Required, f.ItemRequired), name)
	prop.Doc = summary(f.Doc)
	prop.Attributes = obsolete(f.Directives)
	if u.config.JSONNames && name != f.Name {
		u.usesJSON = true
		prop.Attributes = append(prop.Attributes,
			poet.NewAttribute("JsonPropertyName", poet.Positional(poet.StringValue(f.Name))))
	}
	return prop
}

// defaultValue renders an input default as a C# literal.
func (u *unit) defaultValue(f schema.Field) poet.Value {
	elem := f.ElemType()
	switch {
	case f.Default == "null":
		return poet.Null
	case f.IsList():
		// List literals are not carried over by the parser.
		return poet.NewValue("")
	case u.enums[elem]:
		return poet.Raw(typeName(elem) + "." + typeName(f.Default))
	case elem == "String" || elem == "ID":
		return poet.StringValue(f.Default)
	case elem == "Float" && !strings.ContainsAny(f.Default, ".eE"):
		return poet.Raw(f.Default + ".0")
	default:
		return poet.Raw(f.Default)
	}
}

// service maps a service to an interface of async methods.
func (u *unit) service(svc schema.Service) *poet.Type {
	iface := poet.NewInterface("I" + typeName(svc.Name))
	iface.Doc = summary(svc.Doc)

	for _, m := range svc.Methods {
		output := u.fieldType(m.OutputType, m.OutputRequired, true)
		method := poet.NewMethod("Task<"+output+">", typeName(m.Name)+"Async")
		method.Visibility = poet.VisibilityDefault
		method.Doc = summary(m.Doc)
		method.Attributes = obsolete(m.Directives)

		if m.InputType != "" {
			method.Parameters = append(method.Parameters,
				poet.Param(u.fieldType(m.InputType, m.InputRequired, true), rules.CamelizeDownFirst(m.InputName)))
		}
		method.Parameters = append(method.Parameters, &poet.Parameter{
			Type:    "CancellationToken",
			Name:    "cancellationToken",
			Default: poet.Raw("default"),
		})
		iface.Add(method)
	}
	return iface
}

func summary(doc string) poet.CodeFunc {
	if doc == "" {
		return nil
	}
	return poet.Summary(doc)
}

// obsolete maps @deprecated to [Obsolete].
func obsolete(directives []schema.Directive) []*poet.Attribute {
	for _, d := range directives {
		if d.Name != "deprecated" {
			continue
		}
		attr := poet.NewAttribute("Obsolete")
		if reason := d.Args["reason"]; reason != "" {
			attr.Arguments = append(attr.Arguments, poet.Positional(poet.StringValue(reason)))
		}
		return []*poet.Attribute{attr}
	}
	return nil
}
