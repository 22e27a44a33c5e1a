// Package csharp is a catalogue of C# declarations that render themselves
// through a writer.Writer.
//
// Build a tree of elements and hand the root to writer.Render:
//
//	file := csharp.NewFile(
//		csharp.NewNamespace("Shop.Models",
//			csharp.NewClass("Customer",
//				csharp.NewProperty("string", "Name"),
//			),
//		),
//	)
//	src, err := writer.Render(file)
package csharp

import (
	"github.com/okra-platform/cspoet/writer"
)

// FileMember is an element allowed at the top level of a file or namespace.
type FileMember interface {
	writer.Element
	fileMember()
}

// TypeMember is an element allowed inside a type body.
type TypeMember interface {
	writer.Element
	typeMember()
}

// File is the root of a compilation unit.
type File struct {
	// Header lines are written as // comments before anything else.
	Header []string
	// Directives are preprocessor lines such as "#nullable enable".
	Directives []string
	Usings     []*Using
	Members    []FileMember
}

// NewFile returns a file holding members.
func NewFile(members ...FileMember) *File {
	return &File{Members: members}
}

// Use appends usings to the file.
func (f *File) Use(usings ...*Using) *File {
	f.Usings = append(f.Usings, usings...)
	return f
}

// Add appends members to the file.
func (f *File) Add(members ...FileMember) *File {
	f.Members = append(f.Members, members...)
	return f
}

func (f *File) Render(w *writer.Writer) error {
	if err := begin(w, f, "file"); err != nil {
		return err
	}
	for _, line := range f.Header {
		w.WriteComment(line)
	}
	for _, d := range f.Directives {
		w.WriteLine(d)
	}
	preamble := len(f.Header) > 0 || len(f.Directives) > 0
	if preamble && (len(f.Usings) > 0 || len(f.Members) > 0) {
		w.Newline()
	}

	if err := writer.WriteMembers(w, f.Usings); err != nil {
		return err
	}
	if len(f.Usings) > 0 && len(f.Members) > 0 {
		w.Newline()
	}
	return writer.WriteMembers(w, f.Members)
}

func (f *File) String() string { return String(f) }

// Namespace groups members under a name. A file-scoped namespace is written
// as "namespace X;" and its members are not indented.
type Namespace struct {
	Name       string
	FileScoped bool
	Usings     []*Using
	Members    []FileMember
}

// NewNamespace returns a block namespace holding members.
func NewNamespace(name string, members ...FileMember) *Namespace {
	return &Namespace{Name: name, Members: members}
}

// Use appends usings written at the top of the namespace.
func (n *Namespace) Use(usings ...*Using) *Namespace {
	n.Usings = append(n.Usings, usings...)
	return n
}

// Add appends members to the namespace.
func (n *Namespace) Add(members ...FileMember) *Namespace {
	n.Members = append(n.Members, members...)
	return n
}

func (n *Namespace) Render(w *writer.Writer) error {
	if err := begin(w, n, "namespace"); err != nil {
		return err
	}
	w.Write("namespace " + n.Name)
	if n.FileScoped {
		w.WriteLine(";")
		if len(n.Usings) > 0 || len(n.Members) > 0 {
			w.Newline()
		}
		return n.renderBody(w)
	}
	w.Newline()
	return w.Block(func() error {
		return n.renderBody(w)
	})
}

func (n *Namespace) renderBody(w *writer.Writer) error {
	if err := writer.WriteMembers(w, n.Usings); err != nil {
		return err
	}
	if len(n.Usings) > 0 && len(n.Members) > 0 {
		w.Newline()
	}
	return writer.WriteMembers(w, n.Members)
}

func (n *Namespace) Separator() string { return "\n" }
func (n *Namespace) String() string    { return String(n) }
func (*Namespace) fileMember()         {}

// Using is a using directive.
type Using struct {
	Namespace string
	// Alias, when set, produces "using Alias = Namespace;".
	Alias  string
	Global bool
	Static bool
}

// NewUsing returns "using ns;".
func NewUsing(ns string) *Using {
	return &Using{Namespace: ns}
}

// Usings returns one Using per namespace.
func Usings(namespaces ...string) []*Using {
	usings := make([]*Using, len(namespaces))
	for i, ns := range namespaces {
		usings[i] = NewUsing(ns)
	}
	return usings
}

func (u *Using) Render(w *writer.Writer) error {
	if err := begin(w, u, "using"); err != nil {
		return err
	}
	if u.Global {
		w.Write("global ")
	}
	w.Write("using ")
	if u.Static {
		w.Write("static ")
	}
	if u.Alias != "" {
		w.Write(u.Alias + " = ")
	}
	w.WriteLine(u.Namespace + ";")
	return nil
}
