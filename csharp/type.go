package csharp

import (
	"strconv"
	"strings"

	"github.com/okra-platform/cspoet/writer"
)

// TypeKind is the declaration keyword of a Type.
type TypeKind int

const (
	KindClass TypeKind = iota
	KindStruct
	KindRecord
	KindRecordStruct
	KindInterface
)

var kindKeywords = map[TypeKind]string{
	KindClass:        "class",
	KindStruct:       "struct",
	KindRecord:       "record",
	KindRecordStruct: "record struct",
	KindInterface:    "interface",
}

func (k TypeKind) String() string {
	if kw, ok := kindKeywords[k]; ok {
		return kw
	}
	return "TypeKind(" + strconv.Itoa(int(k)) + ")"
}

// Type is a class, struct, record or interface declaration.
type Type struct {
	Kind       TypeKind
	Doc        CodeFunc
	Attributes []*Attribute
	Visibility Visibility
	Modifiers  Modifiers
	Name       string
	// TypeParameters are written as <T, U>.
	TypeParameters []string
	// Parameters form the primary constructor.
	Parameters []*Parameter
	// Extends is the base list: base class first, then interfaces.
	Extends []string
	// Constraints are where clauses, e.g. "T : class".
	Constraints []string
	Members     []TypeMember
}

func newType(kind TypeKind, name string, members []TypeMember) *Type {
	return &Type{
		Kind:       kind,
		Visibility: Public,
		Name:       name,
		Members:    members,
	}
}

// NewClass returns a public class.
func NewClass(name string, members ...TypeMember) *Type {
	return newType(KindClass, name, members)
}

// NewStruct returns a public struct.
func NewStruct(name string, members ...TypeMember) *Type {
	return newType(KindStruct, name, members)
}

// NewRecord returns a public record.
func NewRecord(name string, members ...TypeMember) *Type {
	return newType(KindRecord, name, members)
}

// NewInterface returns a public interface.
func NewInterface(name string, members ...TypeMember) *Type {
	return newType(KindInterface, name, members)
}

// Add appends members to the type body.
func (t *Type) Add(members ...TypeMember) *Type {
	t.Members = append(t.Members, members...)
	return t
}

// Implements appends to the base list.
func (t *Type) Implements(types ...string) *Type {
	t.Extends = append(t.Extends, types...)
	return t
}

func (t *Type) Render(w *writer.Writer) error {
	if err := begin(w, t, "type"); err != nil {
		return err
	}
	keyword, ok := kindKeywords[t.Kind]
	if !ok {
		return writer.Unmapped("type kind", int(t.Kind))
	}

	if err := writeDoc(w, t.Doc); err != nil {
		return err
	}
	if err := writeAttributes(w, t.Attributes); err != nil {
		return err
	}
	if err := writeVisibility(w, t.Visibility); err != nil {
		return err
	}
	writeModifiers(w, t.Modifiers)
	w.Write(keyword + " ")
	w.WriteIdentifier(t.Name)
	writeTypeParameters(w, t.TypeParameters)

	if len(t.Parameters) > 0 {
		w.Write("(")
		if err := writer.WriteMembers(w, t.Parameters); err != nil {
			return err
		}
		w.Write(")")
	}
	if len(t.Extends) > 0 {
		w.Write(" : " + strings.Join(t.Extends, ", "))
	}
	writeConstraints(w, t.Constraints)

	// Positional records without a body end with a semicolon.
	if len(t.Members) == 0 && len(t.Parameters) > 0 {
		w.WriteLine(";")
		return nil
	}

	w.Newline()
	return w.Block(func() error {
		return writer.WriteMembers(w, t.Members)
	})
}

func (t *Type) Separator() string { return "\n" }
func (t *Type) String() string    { return String(t) }
func (*Type) fileMember()         {}
func (*Type) typeMember()         {}
