package writer

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// line renders one line and asks for sep before itself.
type line struct {
	text string
	sep  string
}

func (l line) Render(w *Writer) error {
	w.WriteLine(l.text)
	return nil
}

func (l line) Separator() string { return l.sep }

// plain renders one line and has no separator capability at all.
type plain struct{ text string }

func (p plain) Render(w *Writer) error {
	w.WriteLine(p.text)
	return nil
}

type blank struct{}

func (blank) Render(w *Writer) error {
	w.Newline()
	return nil
}

func (blank) IsBlank() bool { return true }

type comment struct{ text string }

func (c comment) Render(w *Writer) error {
	w.Write("// ")
	w.WriteLine(c.text)
	return nil
}

// field has a pointer receiver, like the catalogue elements.
type field struct{ name string }

func (f *field) Render(w *Writer) error {
	w.WriteLine(f.name)
	return nil
}

func (*field) Separator() string { return ", " }

type failing struct{ err error }

func (f failing) Render(*Writer) error { return f.err }

func renderMembers(t *testing.T, members ...Element) string {
	t.Helper()
	w, sb := newTestWriter("")
	require.NoError(t, WriteMembers(w, members))
	return sb.String()
}

func TestWriteMembers_Separators(t *testing.T) {
	tests := []struct {
		name     string
		members  []Element
		expected string
	}{
		{
			name:     "empty",
			members:  nil,
			expected: "",
		},
		{
			name:     "first element never gets a separator",
			members:  []Element{line{"A", "\n"}},
			expected: "A\n",
		},
		{
			name:     "separated then unseparated",
			members:  []Element{line{"TypeA", "\n"}, plain{"FieldB"}},
			expected: "TypeA\nFieldB\n",
		},
		{
			name:     "unseparated then separated",
			members:  []Element{plain{"FieldB"}, line{"MethodC", "\n"}},
			expected: "FieldB\n\nMethodC\n",
		},
		{
			name:     "worked example",
			members:  []Element{line{"TypeA", "\n"}, plain{"FieldB"}, line{"MethodC", "\n"}},
			expected: "TypeA\nFieldB\n\nMethodC\n",
		},
		{
			name:     "two separated elements get one blank line",
			members:  []Element{line{"A", "\n"}, line{"B", "\n"}},
			expected: "A\n\nB\n",
		},
		{
			name:     "consecutive plain elements stay adjacent",
			members:  []Element{plain{"a"}, plain{"b"}, line{"c", ""}},
			expected: "a\nb\nc\n",
		},
		{
			name:     "blank line marker replaces the separator",
			members:  []Element{line{"A", "\n"}, blank{}, line{"B", "\n"}},
			expected: "A\n\nB\n",
		},
		{
			name:     "two blank markers",
			members:  []Element{plain{"A"}, blank{}, blank{}, line{"B", "\n"}},
			expected: "A\n\n\nB\n",
		},
		{
			name:     "leading blank marker",
			members:  []Element{blank{}, line{"A", "\n"}},
			expected: "\nA\n",
		},
		{
			name:     "trailing blank marker",
			members:  []Element{line{"A", "\n"}, blank{}},
			expected: "A\n\n",
		},
		{
			name:     "inline separator",
			members:  []Element{inline{"a"}, inline{"b"}, inline{"c"}},
			expected: "a, b, c",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, renderMembers(t, tc.members...))
		})
	}
}

type inline struct{ text string }

func (i inline) Render(w *Writer) error {
	w.Write(i.text)
	return nil
}

func (inline) Separator() string { return ", " }

func TestWriteMembers_BlankThenCommentInBlock(t *testing.T) {
	// Test: Blank line and comment inside a block at level 0
	w, sb := newTestWriter("")

	err := w.Block(func() error {
		return WriteMembers(w, []Element{blank{}, comment{"Test"}})
	})
	require.NoError(t, err)

	assert.Equal(t, "{\n\n    // Test\n}\n", sb.String())
}

func TestWriteMembers_TypedSlice(t *testing.T) {
	// Test: Any slice of a concrete element type is accepted
	w, sb := newTestWriter("")

	require.NoError(t, WriteMembers(w, []line{{"A", "\n"}, {"B", "\n"}}))

	assert.Equal(t, "A\n\nB\n", sb.String())
}

func TestWriteMembers_Errors(t *testing.T) {
	t.Run("nil writer", func(t *testing.T) {
		err := WriteMembers[Element](nil, nil)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	})

	t.Run("nil member", func(t *testing.T) {
		w, sb := newTestWriter("")
		err := WriteMembers(w, []Element{plain{"A"}, nil})
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		assert.Equal(t, "A\n", sb.String())
	})

	t.Run("typed nil member", func(t *testing.T) {
		// Test: a nil pointer in a concrete slice is rejected before its separator
		w, sb := newTestWriter("")
		err := WriteMembers(w, []*field{{name: "a"}, nil})
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		assert.Equal(t, "a\n", sb.String())
	})

	t.Run("render error stops the loop", func(t *testing.T) {
		w, sb := newTestWriter("")
		boom := errors.New("boom")
		err := WriteMembers(w, []Element{plain{"A"}, failing{boom}, plain{"C"}})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, "A\n", sb.String())
	})
}

func TestSeparatorOf(t *testing.T) {
	assert.Equal(t, "\n", SeparatorOf(line{"x", "\n"}))
	assert.Equal(t, "", SeparatorOf(plain{"x"}))
	assert.True(t, IsBlank(blank{}))
	assert.False(t, IsBlank(plain{"x"}))
	assert.False(t, IsBlank(nil))
}

func TestIsNil(t *testing.T) {
	tests := []struct {
		name string
		e    Element
		want bool
	}{
		{name: "untyped nil", e: nil, want: true},
		{name: "nil pointer", e: (*field)(nil), want: true},
		{name: "pointer", e: &field{name: "a"}, want: false},
		{name: "value", e: plain{"x"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNil(tt.e))
		})
	}
}
