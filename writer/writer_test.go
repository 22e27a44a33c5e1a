package writer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWriter(indent string) (*Writer, *strings.Builder) {
	sb := &strings.Builder{}
	return NewWriter(sb, indent), sb
}

func TestWriter_BasicWriting(t *testing.T) {
	// Test: Basic write operations
	w, sb := newTestWriter("\t")

	w.Write("hello")
	w.Write(" world")

	assert.Equal(t, "hello world", sb.String())
	assert.NoError(t, w.Err())
}

func TestWriter_WriteLine(t *testing.T) {
	// Test: WriteLine adds newline
	w, sb := newTestWriter("\t")

	w.WriteLine("line1")
	w.WriteLine("line2")

	assert.Equal(t, "line1\nline2\n", sb.String())
}

func TestWriter_DefaultIndent(t *testing.T) {
	// Test: Empty indent string selects four spaces
	w, sb := newTestWriter("")

	w.Indent()
	w.WriteLine("x")

	assert.Equal(t, DefaultIndent, w.IndentString())
	assert.Equal(t, "    x\n", sb.String())
}

func TestWriter_Indentation(t *testing.T) {
	// Test: Proper indentation handling
	w, sb := newTestWriter("\t")

	w.WriteLine("void Main()")
	w.WriteLine("{")
	w.Indent()
	w.WriteLine("Console.WriteLine(\"hello\");")
	w.WriteLine("return;")
	w.Dedent()
	w.WriteLine("}")

	expected := "void Main()\n{\n\tConsole.WriteLine(\"hello\");\n\treturn;\n}\n"
	assert.Equal(t, expected, sb.String())
}

func TestWriter_NestedIndentation(t *testing.T) {
	// Test: Multiple levels of indentation
	w, sb := newTestWriter("  ")

	w.WriteLine("if (a)")
	w.Indent()
	w.WriteLine("if (b)")
	w.Indent()
	w.WriteLine("return;")
	w.Dedent()
	w.Dedent()
	w.WriteLine("done();")

	assert.Equal(t, "if (a)\n  if (b)\n    return;\ndone();\n", sb.String())
}

func TestWriter_IndentationIsIndependentOfHowLevelWasBuilt(t *testing.T) {
	// Test: N nested indents and one SetIndentLevel(N) produce the same prefix
	for n := 0; n <= 5; n++ {
		nested, nestedOut := newTestWriter("")
		scopes := make([]*Scope, 0, n)
		for range n {
			scopes = append(scopes, nested.IndentScope())
		}
		nested.WriteLine("x")
		for i := len(scopes) - 1; i >= 0; i-- {
			scopes[i].Close()
		}

		direct, directOut := newTestWriter("")
		direct.SetIndentLevel(n)
		direct.WriteLine("x")

		want := strings.Repeat(DefaultIndent, n) + "x\n"
		assert.Equal(t, want, nestedOut.String(), "nested depth %d", n)
		assert.Equal(t, want, directOut.String(), "direct depth %d", n)
		assert.Equal(t, 0, nested.IndentLevel())
	}
}

func TestWriter_BlankLineHasNoIndentation(t *testing.T) {
	// Test: Newline at any depth produces only the line terminator
	for depth := range 4 {
		w, sb := newTestWriter("")
		w.SetIndentLevel(depth)

		w.WriteLine("a")
		w.Newline()
		w.WriteLine("")
		w.Write("\n")
		w.WriteLine("b")

		prefix := strings.Repeat(DefaultIndent, depth)
		assert.Equal(t, prefix+"a\n\n\n\n"+prefix+"b\n", sb.String())
	}
}

func TestWriter_LoneNewlineIsRedirected(t *testing.T) {
	// Test: Writing "\n" mid-line ends the line and re-arms indentation
	w, sb := newTestWriter("")
	w.Indent()

	w.Write("a")
	w.Write("\n")
	assert.True(t, w.TabsPending())
	w.Write("b")
	assert.False(t, w.TabsPending())

	assert.Equal(t, "    a\n    b", sb.String())
}

func TestWriter_EmptyWriteKeepsIndentPending(t *testing.T) {
	// Test: Empty writes do not flush indentation
	w, sb := newTestWriter("")
	w.Indent()

	w.Write("")
	assert.True(t, w.TabsPending())
	assert.Equal(t, "", sb.String())
}

func TestWriter_WriteFormatted(t *testing.T) {
	// Test: Formatted and typed write operations
	w, sb := newTestWriter("\t")

	w.WriteLinef("var %s = %d;", "count", 42)
	w.Indent()
	w.Writef("// %s: %v", "value", true)
	w.Newline()
	w.WriteInt(-7)
	w.WriteRune(' ')
	w.WriteBool(false)
	w.Newline()

	assert.Equal(t, "var count = 42;\n\t// value: true\n\t-7 false\n", sb.String())
}

func TestWriter_IndentDedentBounds(t *testing.T) {
	// Test: Dedent and SetIndentLevel never go below zero
	w, _ := newTestWriter("\t")

	assert.Equal(t, 0, w.IndentLevel())
	w.Dedent()
	assert.Equal(t, 0, w.IndentLevel())

	w.Indent()
	assert.Equal(t, 1, w.IndentLevel())
	w.SetIndentLevel(-3)
	assert.Equal(t, 0, w.IndentLevel())
}

func TestWriter_WriteBlock(t *testing.T) {
	// Test: WriteBlock helper function
	w, sb := newTestWriter("\t")

	err := w.WriteBlock("switch (x)", "}", func() error {
		w.WriteLine("default: break;")
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "switch (x)\n\tdefault: break;\n}\n", sb.String())
}

func TestWriter_Comments(t *testing.T) {
	// Test: Comment writing functions
	w, sb := newTestWriter("\t")

	w.WriteComment("Single line comment")
	require.NoError(t, w.WriteDocComment("First\n\n  Second  "))
	require.NoError(t, w.WriteDocComment(""))

	assert.Equal(t, "// Single line comment\n/// First\n/// Second\n", sb.String())
	assert.Equal(t, CommentNone, w.CommentMode())
}

func TestWriter_Summary(t *testing.T) {
	// Test: Summary wraps documentation in a summary element
	w, sb := newTestWriter("")
	w.Indent()

	require.NoError(t, w.WriteSummary("Gets the name."))

	assert.Equal(t, "    /// <summary>\n    /// Gets the name.\n    /// </summary>\n", sb.String())
}

func TestWriter_NilOutputPanics(t *testing.T) {
	// Test: A writer needs a sink
	assert.Panics(t, func() {
		NewWriter(nil, "")
	})
}

func TestCommentMode_String(t *testing.T) {
	assert.Equal(t, "none", CommentNone.String())
	assert.Equal(t, "block", CommentBlock.String())
	assert.Equal(t, "doc", CommentDoc.String())
	assert.Equal(t, "CommentMode(9)", CommentMode(9).String())
}
