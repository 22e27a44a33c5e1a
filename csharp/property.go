package csharp

import "github.com/okra-platform/cspoet/writer"

// Accessor is a get, set or init accessor. A nil Body writes the automatic
// form "get;".
type Accessor struct {
	Visibility Visibility
	// BodyType defaults to an expression body.
	BodyType BodyType
	Body     CodeFunc
}

// Auto returns an automatic accessor.
func Auto() *Accessor {
	return &Accessor{}
}

// Expression returns an accessor with an expression body.
func Expression(body CodeFunc) *Accessor {
	return &Accessor{BodyType: BodyExpression, Body: body}
}

// Statements returns an accessor with a block body.
func Statements(body CodeFunc) *Accessor {
	return &Accessor{BodyType: BodyBlock, Body: body}
}

func (a *Accessor) bodyType() BodyType {
	return a.BodyType.or(BodyExpression)
}

func (a *Accessor) multiline() bool {
	return a != nil && a.Body != nil && a.bodyType() == BodyBlock
}

func (a *Accessor) render(w *writer.Writer, keyword string) error {
	if err := writeVisibility(w, a.Visibility); err != nil {
		return err
	}
	w.Write(keyword)
	if a.Body == nil {
		w.Write(";")
		return nil
	}
	return writeCode(w, a.Body, a.bodyType())
}

// Property is a property declaration.
//
// A getter-only property with an expression body and default visibility is
// written as "T Name => expr;". When any accessor has a block body the
// property spans several lines and asks for a blank line before it.
type Property struct {
	Doc        CodeFunc
	Attributes []*Attribute
	Visibility Visibility
	Modifiers  Modifiers
	Type       string
	Name       string
	Getter     *Accessor
	Setter     *Accessor
	// InitOnly writes the setter as an init accessor.
	InitOnly bool
	// Default is the initializer of single-line properties.
	Default Value
}

// NewProperty returns a public auto-property with a getter and a setter.
func NewProperty(typ, name string) *Property {
	return &Property{
		Visibility: Public,
		Type:       typ,
		Name:       name,
		Getter:     Auto(),
		Setter:     Auto(),
	}
}

// ReadOnly removes the setter.
func (p *Property) ReadOnly() *Property {
	p.Setter = nil
	return p
}

// Multiline reports whether the property spans several lines.
func (p *Property) Multiline() bool {
	return p.Getter.multiline() || p.Setter.multiline()
}

func (p *Property) setterKeyword() string {
	if p.InitOnly {
		return "init"
	}
	return "set"
}

func (p *Property) Render(w *writer.Writer) error {
	if err := begin(w, p, "property"); err != nil {
		return err
	}
	if err := writeDoc(w, p.Doc); err != nil {
		return err
	}
	if err := writeAttributes(w, p.Attributes); err != nil {
		return err
	}
	if err := writeVisibility(w, p.Visibility); err != nil {
		return err
	}
	writeModifiers(w, p.Modifiers)
	w.Write(p.Type + " ")
	w.WriteIdentifier(p.Name)

	get, set := p.Getter, p.Setter
	if get != nil && get.Body != nil && get.bodyType() == BodyExpression &&
		get.Visibility == VisibilityDefault && set == nil {
		if err := writeCode(w, get.Body, BodyExpression); err != nil {
			return err
		}
		w.Newline()
		return nil
	}

	if p.Multiline() {
		w.Newline()
		return w.Block(func() error {
			if get != nil {
				if err := get.render(w, "get"); err != nil {
					return err
				}
				endLine(w)
			}
			if set != nil {
				if err := set.render(w, p.setterKeyword()); err != nil {
					return err
				}
				endLine(w)
			}
			return nil
		})
	}

	w.Write(" {")
	if get != nil {
		w.Write(" ")
		if err := get.render(w, "get"); err != nil {
			return err
		}
	}
	if set != nil {
		w.Write(" ")
		if err := set.render(w, p.setterKeyword()); err != nil {
			return err
		}
	}
	w.Write(" }")
	if p.Default != "" {
		writeDefault(w, p.Default)
		w.Write(";")
	}
	w.Newline()
	return nil
}

// Separator asks for a blank line before multiline properties only.
func (p *Property) Separator() string {
	if p.Multiline() {
		return "\n"
	}
	return ""
}

func (p *Property) String() string { return String(p) }
func (*Property) typeMember()      {}
