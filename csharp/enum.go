package csharp

import (
	"github.com/okra-platform/cspoet/writer"
)

// EnumUnderlyingType is the integral type backing an enum.
type EnumUnderlyingType int

const (
	// UnderlyingInt is the C# default and is not written.
	UnderlyingInt EnumUnderlyingType = iota
	UnderlyingByte
	UnderlyingSByte
	UnderlyingShort
	UnderlyingUShort
	UnderlyingUInt
	UnderlyingLong
	UnderlyingULong
)

var underlyingKeywords = map[EnumUnderlyingType]string{
	UnderlyingInt:    "int",
	UnderlyingByte:   "byte",
	UnderlyingSByte:  "sbyte",
	UnderlyingShort:  "short",
	UnderlyingUShort: "ushort",
	UnderlyingUInt:   "uint",
	UnderlyingLong:   "long",
	UnderlyingULong:  "ulong",
}

// Keyword returns the C# spelling of u.
func (u EnumUnderlyingType) Keyword() (string, error) {
	kw, ok := underlyingKeywords[u]
	if !ok {
		return "", writer.Unmapped("enum underlying type", int(u))
	}
	return kw, nil
}

// Enum is an enum declaration.
type Enum struct {
	Doc            CodeFunc
	Attributes     []*Attribute
	Visibility     Visibility
	Name           string
	UnderlyingType EnumUnderlyingType
	Members        []*EnumMember
}

// NewEnum returns a public enum.
func NewEnum(name string, members ...*EnumMember) *Enum {
	return &Enum{
		Visibility: Public,
		Name:       name,
		Members:    members,
	}
}

// Add appends members to the enum.
func (e *Enum) Add(members ...*EnumMember) *Enum {
	e.Members = append(e.Members, members...)
	return e
}

func (e *Enum) Render(w *writer.Writer) error {
	if err := begin(w, e, "enum"); err != nil {
		return err
	}
	if err := writeDoc(w, e.Doc); err != nil {
		return err
	}
	if err := writeAttributes(w, e.Attributes); err != nil {
		return err
	}
	if err := writeVisibility(w, e.Visibility); err != nil {
		return err
	}
	w.Write("enum ")
	w.WriteIdentifier(e.Name)
	if e.UnderlyingType != UnderlyingInt {
		kw, err := e.UnderlyingType.Keyword()
		if err != nil {
			return err
		}
		w.Write(" : " + kw)
	}
	w.Newline()
	return w.Block(func() error {
		return writer.WriteMembers(w, e.Members)
	})
}

func (e *Enum) Separator() string { return "\n" }
func (e *Enum) String() string    { return String(e) }
func (*Enum) fileMember()         {}
func (*Enum) typeMember()         {}

// EnumMember is one named constant of an enum.
type EnumMember struct {
	Doc        CodeFunc
	Attributes []*Attribute
	Name       string
	// Value is the explicit constant, if any.
	Value Value
}

// NewEnumMember returns a member with an implicit value.
func NewEnumMember(name string) *EnumMember {
	return &EnumMember{Name: name}
}

// EnumMembers returns one member per name.
func EnumMembers(names ...string) []*EnumMember {
	members := make([]*EnumMember, len(names))
	for i, name := range names {
		members[i] = NewEnumMember(name)
	}
	return members
}

func (m *EnumMember) Render(w *writer.Writer) error {
	if err := begin(w, m, "enum member"); err != nil {
		return err
	}
	if err := writeDoc(w, m.Doc); err != nil {
		return err
	}
	if err := writeAttributes(w, m.Attributes); err != nil {
		return err
	}
	w.WriteIdentifier(m.Name)
	writeDefault(w, m.Value)
	w.WriteLine(",")
	return nil
}
