package csharp

import "github.com/okra-platform/cspoet/writer"

// AttributeArgument is an argument of an attribute.
type AttributeArgument interface {
	writer.Separated
	attributeArgument()
}

// Attribute is an attribute application such as [Obsolete("old")].
type Attribute struct {
	// Target is an optional attribute target such as "assembly" or "return".
	Target    string
	Name      string
	Arguments []AttributeArgument
}

// NewAttribute returns an attribute with the given arguments.
func NewAttribute(name string, args ...AttributeArgument) *Attribute {
	return &Attribute{Name: name, Arguments: args}
}

func (a *Attribute) Render(w *writer.Writer) error {
	if err := begin(w, a, "attribute"); err != nil {
		return err
	}
	w.Write("[")
	if a.Target != "" {
		w.Write(a.Target + ": ")
	}
	w.WriteIdentifier(a.Name)
	if len(a.Arguments) > 0 {
		w.Write("(")
		if err := writer.WriteMembers(w, a.Arguments); err != nil {
			return err
		}
		w.Write(")")
	}
	w.Write("]")
	return nil
}

func (a *Attribute) String() string { return String(a) }

// Arg is a positional attribute argument.
type Arg struct {
	Value Value
}

// Positional returns a positional argument.
func Positional(v Value) *Arg { return &Arg{Value: v} }

func (a *Arg) Render(w *writer.Writer) error {
	if err := begin(w, a, "attribute argument"); err != nil {
		return err
	}
	w.Write(string(a.Value))
	return nil
}

func (a *Arg) Separator() string { return ", " }
func (*Arg) attributeArgument()  {}

// NamedArg is a named constructor argument, written "name: value".
type NamedArg struct {
	Name  string
	Value Value
}

// Named returns a named argument.
func Named(name string, v Value) *NamedArg { return &NamedArg{Name: name, Value: v} }

func (a *NamedArg) Render(w *writer.Writer) error {
	if err := begin(w, a, "attribute argument"); err != nil {
		return err
	}
	w.WriteIdentifier(a.Name)
	w.Write(": " + string(a.Value))
	return nil
}

func (a *NamedArg) Separator() string { return ", " }
func (*NamedArg) attributeArgument()  {}

// PropertyArg assigns a property of the attribute, written "Name = value".
type PropertyArg struct {
	Name  string
	Value Value
}

// Assign returns a property argument.
func Assign(name string, v Value) *PropertyArg { return &PropertyArg{Name: name, Value: v} }

func (a *PropertyArg) Render(w *writer.Writer) error {
	if err := begin(w, a, "attribute argument"); err != nil {
		return err
	}
	w.WriteIdentifier(a.Name)
	w.Write(" = " + string(a.Value))
	return nil
}

func (a *PropertyArg) Separator() string { return ", " }
func (*PropertyArg) attributeArgument()  {}
