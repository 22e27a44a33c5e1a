package csharp

import (
	"strconv"

	"github.com/okra-platform/cspoet/writer"
)

// Method is a method declaration. A nil Body writes a declaration ending in
// ";", as used by interfaces and abstract or partial methods.
type Method struct {
	Doc            CodeFunc
	Attributes     []*Attribute
	Visibility     Visibility
	Modifiers      Modifiers
	ReturnType     string
	Name           string
	TypeParameters []string
	Parameters     []*Parameter
	Constraints    []string
	// BodyType defaults to a block body.
	BodyType BodyType
	// Body writes the statements of a block body, or the expression of an
	// expression body without its trailing ";".
	Body CodeFunc
}

// NewMethod returns a public method.
func NewMethod(returnType, name string, params ...*Parameter) *Method {
	return &Method{
		Visibility: Public,
		ReturnType: returnType,
		Name:       name,
		Parameters: params,
	}
}

// WithBody sets a block body.
func (m *Method) WithBody(body CodeFunc) *Method {
	m.BodyType = BodyBlock
	m.Body = body
	return m
}

// WithExpression sets an expression body.
func (m *Method) WithExpression(body CodeFunc) *Method {
	m.BodyType = BodyExpression
	m.Body = body
	return m
}

func (m *Method) Render(w *writer.Writer) error {
	if err := begin(w, m, "method"); err != nil {
		return err
	}
	if err := writeDoc(w, m.Doc); err != nil {
		return err
	}
	if err := writeAttributes(w, m.Attributes); err != nil {
		return err
	}
	if err := writeVisibility(w, m.Visibility); err != nil {
		return err
	}
	writeModifiers(w, m.Modifiers)
	w.Write(m.ReturnType + " ")
	w.WriteIdentifier(m.Name)
	writeTypeParameters(w, m.TypeParameters)
	w.Write("(")
	if err := writer.WriteMembers(w, m.Parameters); err != nil {
		return err
	}
	w.Write(")")
	writeConstraints(w, m.Constraints)

	if m.Body == nil {
		w.WriteLine(";")
		return nil
	}
	if err := writeCode(w, m.Body, m.BodyType.or(BodyBlock)); err != nil {
		return err
	}
	endLine(w)
	return nil
}

func (m *Method) Separator() string { return "\n" }
func (m *Method) String() string    { return String(m) }
func (*Method) typeMember()         {}

// ParameterModifier is the passing mode of a parameter.
type ParameterModifier int

const (
	ParamNone ParameterModifier = iota
	ParamRef
	ParamOut
	ParamIn
	ParamParams
	ParamThis
	ParamScoped
)

var parameterModifierKeywords = map[ParameterModifier]string{
	ParamNone:   "",
	ParamRef:    "ref",
	ParamOut:    "out",
	ParamIn:     "in",
	ParamParams: "params",
	ParamThis:   "this",
	ParamScoped: "scoped",
}

func (p ParameterModifier) String() string {
	if kw, ok := parameterModifierKeywords[p]; ok {
		return kw
	}
	return "ParameterModifier(" + strconv.Itoa(int(p)) + ")"
}

// Parameter is a method or primary constructor parameter.
type Parameter struct {
	Attributes []*Attribute
	Modifier   ParameterModifier
	Type       string
	Name       string
	Default    Value
}

// Param returns a parameter of the given type.
func Param(typ, name string) *Parameter {
	return &Parameter{Type: typ, Name: name}
}

func (p *Parameter) Render(w *writer.Writer) error {
	if err := begin(w, p, "parameter"); err != nil {
		return err
	}
	if err := writeInlineAttributes(w, p.Attributes); err != nil {
		return err
	}
	kw, ok := parameterModifierKeywords[p.Modifier]
	if !ok {
		return writer.Unmapped("parameter modifier", int(p.Modifier))
	}
	if kw != "" {
		w.Write(kw + " ")
	}
	w.Write(p.Type + " ")
	w.WriteIdentifier(p.Name)
	writeDefault(w, p.Default)
	return nil
}

func (p *Parameter) Separator() string { return ", " }
