package csharp

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/okra-platform/cspoet/writer"
)

// Declaration parts shared by the elements of this package. Each writes
// nothing when its part is empty.

// begin rejects a nil writer or a nil element before anything is written.
func begin(w *writer.Writer, e writer.Element, kind string) error {
	if w == nil {
		return errors.Wrapf(writer.ErrInvalidArgument, "render %s: nil writer", kind)
	}
	if writer.IsNil(e) {
		return errors.Wrapf(writer.ErrInvalidArgument, "render %s: nil element", kind)
	}
	return nil
}

func writeDoc(w *writer.Writer, doc CodeFunc) error {
	if doc == nil {
		return nil
	}
	return w.DocComment(func() error {
		return doc(w)
	})
}

// writeAttributes writes each attribute on its own line.
func writeAttributes(w *writer.Writer, attrs []*Attribute) error {
	for _, attr := range attrs {
		if err := attr.Render(w); err != nil {
			return err
		}
		w.Newline()
	}
	return nil
}

// writeInlineAttributes writes attributes on the current line, each
// followed by a space.
func writeInlineAttributes(w *writer.Writer, attrs []*Attribute) error {
	for _, attr := range attrs {
		if err := attr.Render(w); err != nil {
			return err
		}
		w.Write(" ")
	}
	return nil
}

func writeVisibility(w *writer.Writer, v Visibility) error {
	kw, err := v.Keyword()
	if err != nil {
		return err
	}
	if kw != "" {
		w.Write(kw + " ")
	}
	return nil
}

func writeModifiers(w *writer.Writer, m Modifiers) {
	for _, kw := range m.List() {
		w.Write(kw + " ")
	}
}

// writeTypeParameters writes <T, U>.
func writeTypeParameters(w *writer.Writer, params []string) {
	if len(params) == 0 {
		return
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = writer.SanitizeIdentifier(p)
	}
	w.Write("<" + strings.Join(names, ", ") + ">")
}

// writeConstraints writes one indented where clause per line, leaving the
// last line open.
func writeConstraints(w *writer.Writer, constraints []string) {
	for _, c := range constraints {
		w.Newline()
		w.Indent()
		w.Write("where " + c)
		w.Dedent()
	}
}

// endLine ends the current line unless it is already ended.
func endLine(w *writer.Writer) {
	if !w.TabsPending() {
		w.Newline()
	}
}

func writeDefault(w *writer.Writer, v Value) {
	if v != "" {
		w.Write(" = " + string(v))
	}
}

// writeCode runs body as an expression or a block. Expression bodies are
// terminated with ";" and leave the line open; block bodies end it.
func writeCode(w *writer.Writer, body CodeFunc, bt BodyType) error {
	switch bt {
	case BodyExpression:
		w.Write(" => ")
		if err := body(w); err != nil {
			return err
		}
		w.Write(";")
		return nil
	case BodyBlock:
		w.Newline()
		return w.Block(func() error {
			return body(w)
		})
	default:
		return writer.Unmapped("body type", int(bt))
	}
}

// String renders e and returns the text. A failed render returns the text
// written so far followed by an error marker.
func String(e writer.Element) string {
	var sb strings.Builder
	if err := writer.RenderTo(&sb, e); err != nil {
		sb.WriteString("%!(ERROR " + err.Error() + ")")
	}
	return sb.String()
}
