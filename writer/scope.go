package writer

import "github.com/cockroachdb/errors"

// Scope restores writer state established when it was opened.
// Close is idempotent.
type Scope struct {
	release func()
}

// Close ends the scope.
func (s *Scope) Close() {
	if s == nil || s.release == nil {
		return
	}
	release := s.release
	s.release = nil
	release()
}

// IndentScope increases the indentation level until the scope is closed.
func (w *Writer) IndentScope() *Scope {
	w.Indent()
	return &Scope{release: w.Dedent}
}

// BlockScope writes an opening brace and indents until the scope is closed,
// which writes the closing brace.
func (w *Writer) BlockScope() *Scope {
	w.WriteLine("{")
	w.Indent()
	return &Scope{release: func() {
		w.Dedent()
		w.WriteLine("}")
	}}
}

// BlockCommentScope starts a /* */ comment. Every line written before Close
// is prefixed with " * ". Only one comment scope may be active at a time.
func (w *Writer) BlockCommentScope() (*Scope, error) {
	if err := w.enterComment(CommentBlock); err != nil {
		return nil, err
	}
	w.WriteLine("/*")
	w.comment = CommentBlock
	return &Scope{release: func() {
		w.comment = CommentNone
		w.WriteLine(" */")
	}}, nil
}

// DocCommentScope starts an XML documentation comment. Every line written
// before Close is prefixed with "/// ". Only one comment scope may be active
// at a time.
func (w *Writer) DocCommentScope() (*Scope, error) {
	if err := w.enterComment(CommentDoc); err != nil {
		return nil, err
	}
	w.comment = CommentDoc
	return &Scope{release: func() {
		w.comment = CommentNone
	}}, nil
}

func (w *Writer) enterComment(mode CommentMode) error {
	if w.comment != CommentNone {
		return errors.Wrapf(ErrInvalidModeTransition, "cannot enter %s comment inside %s comment", mode, w.comment)
	}
	return nil
}

// Indented runs fn one indentation level deeper.
func (w *Writer) Indented(fn func() error) error {
	defer w.IndentScope().Close()
	return fn()
}

// Block runs fn inside braces.
func (w *Writer) Block(fn func() error) error {
	defer w.BlockScope().Close()
	return fn()
}

// BlockComment runs fn inside a /* */ comment.
func (w *Writer) BlockComment(fn func() error) error {
	scope, err := w.BlockCommentScope()
	if err != nil {
		return err
	}
	defer scope.Close()
	return fn()
}

// DocComment runs fn inside an XML documentation comment.
func (w *Writer) DocComment(fn func() error) error {
	scope, err := w.DocCommentScope()
	if err != nil {
		return err
	}
	defer scope.Close()
	return fn()
}
