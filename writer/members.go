package writer

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// Element is anything that can render itself into a Writer.
type Element interface {
	Render(w *Writer) error
}

// Separated is implemented by elements that want a separator written
// between them and the element before them. An empty separator means none.
type Separated interface {
	Element
	Separator() string
}

// Blank is implemented by manual blank-line elements. A blank element already
// separates its neighbours, so the element after it does not add its own
// separator.
type Blank interface {
	Element
	IsBlank() bool
}

// IsNil reports whether e is nil or an interface holding a nil pointer,
// map, slice, func or channel.
func IsNil(e Element) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// SeparatorOf returns the separator e asks for, or "" if it asks for none.
func SeparatorOf(e Element) string {
	if s, ok := e.(Separated); ok {
		return s.Separator()
	}
	return ""
}

// IsBlank reports whether e is a manual blank-line element.
func IsBlank(e Element) bool {
	b, ok := e.(Blank)
	return ok && b.IsBlank()
}

// WriteMembers renders members in order. Before each element except the
// first, the element's separator is written unless the previous element was
// a blank line. Rendering stops at the first error.
func WriteMembers[T Element](w *Writer, members []T) error {
	if w == nil {
		return errors.Wrap(ErrInvalidArgument, "write members: nil writer")
	}

	var prev Element
	for i, member := range members {
		element := Element(member)
		if IsNil(element) {
			return errors.Wrapf(ErrInvalidArgument, "write members: nil member at index %d", i)
		}

		if sep := SeparatorOf(element); sep != "" && i > 0 && !IsBlank(prev) {
			w.Write(sep)
		}

		if err := element.Render(w); err != nil {
			return err
		}
		prev = element
	}

	return w.Err()
}
