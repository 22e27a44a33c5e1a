package csharp

import "github.com/okra-platform/cspoet/writer"

// Field is a field declaration.
type Field struct {
	Doc        CodeFunc
	Attributes []*Attribute
	Visibility Visibility
	Modifiers  Modifiers
	Type       string
	Name       string
	Default    Value
}

// NewField returns a private field.
func NewField(typ, name string) *Field {
	return &Field{
		Visibility: Private,
		Type:       typ,
		Name:       name,
	}
}

func (f *Field) Render(w *writer.Writer) error {
	if err := begin(w, f, "field"); err != nil {
		return err
	}
	if err := writeDoc(w, f.Doc); err != nil {
		return err
	}
	if err := writeAttributes(w, f.Attributes); err != nil {
		return err
	}
	if err := writeVisibility(w, f.Visibility); err != nil {
		return err
	}
	writeModifiers(w, f.Modifiers)
	w.Write(f.Type + " ")
	w.WriteIdentifier(f.Name)
	writeDefault(w, f.Default)
	w.WriteLine(";")
	return nil
}

func (*Field) typeMember() {}
