package csharp

import (
	"strings"

	"github.com/okra-platform/cspoet/writer"
)

// CodeFunc writes a fragment of code, such as a method body or the text of
// a comment.
type CodeFunc func(w *writer.Writer) error

// Text returns a CodeFunc that writes s as-is, without ending the line.
func Text(s string) CodeFunc {
	return func(w *writer.Writer) error {
		w.Write(s)
		return nil
	}
}

// Lines returns a CodeFunc that writes each string as its own line.
// Strings containing "\n" are split so that every line picks up the
// current indentation.
func Lines(lines ...string) CodeFunc {
	return func(w *writer.Writer) error {
		for _, line := range lines {
			for part := range strings.SplitSeq(line, "\n") {
				w.WriteLine(part)
			}
		}
		return nil
	}
}

// Join returns a CodeFunc running each fn in order.
func Join(fns ...CodeFunc) CodeFunc {
	return func(w *writer.Writer) error {
		for _, fn := range fns {
			if fn == nil {
				continue
			}
			if err := fn(w); err != nil {
				return err
			}
		}
		return nil
	}
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Summary returns a doc comment body wrapping text in a <summary> element.
// XML metacharacters in text are escaped.
func Summary(text string) CodeFunc {
	text = strings.TrimSpace(text)
	return func(w *writer.Writer) error {
		w.WriteLine("<summary>")
		for line := range strings.SplitSeq(text, "\n") {
			// An empty line would end the doc comment.
			if line = strings.TrimSpace(line); line != "" {
				w.WriteLine(xmlEscaper.Replace(line))
			}
		}
		w.WriteLine("</summary>")
		return nil
	}
}

// ParamDoc returns a doc comment line describing a method parameter.
func ParamDoc(name, text string) CodeFunc {
	return func(w *writer.Writer) error {
		w.WriteLinef(`<param name="%s">%s</param>`, name, xmlEscaper.Replace(strings.TrimSpace(text)))
		return nil
	}
}
