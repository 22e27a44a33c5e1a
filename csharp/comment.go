package csharp

import "github.com/okra-platform/cspoet/writer"

// Comment is a // comment. Body writes the comment text and must end the
// line; only the first line gets the // marker.
type Comment struct {
	Body CodeFunc
}

// NewComment returns a single-line comment.
func NewComment(text string) *Comment {
	return &Comment{Body: Lines(text)}
}

func (c *Comment) Render(w *writer.Writer) error {
	if err := begin(w, c, "comment"); err != nil {
		return err
	}
	if c.Body == nil {
		w.WriteLine("//")
		return nil
	}
	w.Write("// ")
	return c.Body(w)
}

func (*Comment) fileMember() {}
func (*Comment) typeMember() {}

// MultilineComment is a /* */ comment. Every line written by Body is
// prefixed with " * ".
type MultilineComment struct {
	Body CodeFunc
}

// NewMultilineComment returns a block comment with one line per string.
func NewMultilineComment(lines ...string) *MultilineComment {
	return &MultilineComment{Body: Lines(lines...)}
}

func (c *MultilineComment) Render(w *writer.Writer) error {
	if err := begin(w, c, "comment"); err != nil {
		return err
	}
	return w.BlockComment(func() error {
		if c.Body == nil {
			return nil
		}
		return c.Body(w)
	})
}

func (*MultilineComment) fileMember() {}
func (*MultilineComment) typeMember() {}

// BlankLine is a manual empty line. The member after it does not add its
// own separator.
type BlankLine struct{}

// Blank returns a BlankLine.
func Blank() BlankLine { return BlankLine{} }

func (b BlankLine) Render(w *writer.Writer) error {
	if err := begin(w, b, "blank line"); err != nil {
		return err
	}
	w.Newline()
	return nil
}

func (BlankLine) IsBlank() bool { return true }
func (BlankLine) fileMember()   {}
func (BlankLine) typeMember()   {}
