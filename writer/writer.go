// Package writer provides the indentation-aware text writer used to render
// C# source code, together with the member composition rules that decide
// where blank lines go between declarations.
//
// Indentation is deferred: after a line terminator nothing is written until
// the next non-empty text arrives, so blank lines never carry trailing
// whitespace.
package writer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// DefaultIndent is the indent string used when none is configured.
const DefaultIndent = "    "

const newline = "\n"

// CommentMode is the comment syntax prefixed to every line while active.
type CommentMode int

const (
	CommentNone CommentMode = iota
	CommentBlock
	CommentDoc
)

func (m CommentMode) String() string {
	switch m {
	case CommentNone:
		return "none"
	case CommentBlock:
		return "block"
	case CommentDoc:
		return "doc"
	default:
		return "CommentMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// linePrefix returns the marker written after the indentation of each line.
func (m CommentMode) linePrefix() string {
	switch m {
	case CommentBlock:
		return " * "
	case CommentDoc:
		return "/// "
	default:
		return ""
	}
}

// Writer writes code to a sink with proper indentation.
//
// Writer methods do not return errors. The first error reported by the sink
// is kept and every later write becomes a no-op; callers check Err once the
// render is done, the same way bufio.Writer is used.
type Writer struct {
	out          io.Writer
	indentString string
	indentLevel  int
	tabsPending  bool
	comment      CommentMode
	err          error
}

// NewWriter creates a writer bound to out. An empty indentString selects
// DefaultIndent. It panics if out is nil.
func NewWriter(out io.Writer, indentString string) *Writer {
	if out == nil {
		panic(errors.Wrap(ErrInvalidArgument, "writer: nil output"))
	}
	if indentString == "" {
		indentString = DefaultIndent
	}
	return &Writer{
		out:          out,
		indentString: indentString,
		tabsPending:  true,
	}
}

// Err returns the first error reported by the sink, if any.
func (w *Writer) Err() error {
	return w.err
}

// IndentString returns the string written once per indent level.
func (w *Writer) IndentString() string {
	return w.indentString
}

// IndentLevel returns the current indentation level.
func (w *Writer) IndentLevel() int {
	return w.indentLevel
}

// SetIndentLevel sets the indentation level. Negative values are clamped to 0.
func (w *Writer) SetIndentLevel(level int) {
	w.indentLevel = max(level, 0)
}

// Indent increases the indentation level.
func (w *Writer) Indent() {
	w.indentLevel++
}

// Dedent decreases the indentation level, never below 0.
func (w *Writer) Dedent() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}

// CommentMode returns the active comment mode.
func (w *Writer) CommentMode() CommentMode {
	return w.comment
}

// TabsPending reports whether indentation is owed to the current line.
func (w *Writer) TabsPending() bool {
	return w.tabsPending
}

func (w *Writer) emit(s string) {
	if w.err != nil || s == "" {
		return
	}
	if _, err := io.WriteString(w.out, s); err != nil {
		w.err = errors.Wrap(err, "write output")
	}
}

// outputTabs flushes the pending indentation and comment prefix.
func (w *Writer) outputTabs() {
	if !w.tabsPending {
		return
	}
	w.tabsPending = false
	if w.indentLevel > 0 {
		w.emit(strings.Repeat(w.indentString, w.indentLevel))
	}
	w.emit(w.comment.linePrefix())
}

// Write writes s without adding a newline. A lone "\n" is treated as
// Newline so that it never drags indentation onto an empty line.
func (w *Writer) Write(s string) {
	if s == newline {
		w.Newline()
		return
	}
	if s == "" {
		return
	}
	w.outputTabs()
	w.emit(s)
}

// Writef writes a formatted string without adding a newline.
func (w *Writer) Writef(format string, args ...any) {
	w.Write(fmt.Sprintf(format, args...))
}

// WriteRune writes a single character.
func (w *Writer) WriteRune(r rune) {
	w.Write(string(r))
}

// WriteInt writes the decimal form of n.
func (w *Writer) WriteInt(n int64) {
	w.Write(strconv.FormatInt(n, 10))
}

// WriteBool writes true or false.
func (w *Writer) WriteBool(b bool) {
	w.Write(strconv.FormatBool(b))
}

// WriteLine writes s and ends the line.
func (w *Writer) WriteLine(s string) {
	w.Write(s)
	w.Newline()
}

// WriteLinef writes a formatted string and ends the line.
func (w *Writer) WriteLinef(format string, args ...any) {
	w.Writef(format, args...)
	w.Newline()
}

// Newline ends the current line. Pending indentation is not flushed, so a
// line made only of Newline is empty.
func (w *Writer) Newline() {
	w.emit(newline)
	w.tabsPending = true
}

// WriteBlock writes content inside a block with proper indentation.
// Example: WriteBlock("if (ok) {", "}", func() error { w.WriteLine("Run();"); return nil })
func (w *Writer) WriteBlock(opener, closer string, content func() error) error {
	w.WriteLine(opener)
	w.Indent()
	defer func() {
		w.Dedent()
		w.WriteLine(closer)
	}()
	return content()
}

// WriteComment writes a single-line comment.
func (w *Writer) WriteComment(comment string) {
	w.WriteLinef("// %s", comment)
}

// WriteDocComment writes doc as a sequence of XML documentation lines.
// Empty doc produces no output.
func (w *Writer) WriteDocComment(doc string) error {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil
	}
	return w.DocComment(func() error {
		for line := range strings.SplitSeq(doc, "\n") {
			// An empty line would drop the /// marker and end the comment.
			if line = strings.TrimSpace(line); line != "" {
				w.WriteLine(line)
			}
		}
		return nil
	})
}

// WriteSummary writes doc wrapped in a <summary> element.
func (w *Writer) WriteSummary(doc string) error {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil
	}
	return w.WriteDocComment("<summary>\n" + doc + "\n</summary>")
}
