package csharp

import (
	"fmt"
	"strings"

	"github.com/okra-platform/cspoet/writer"
)

// Value is a C# expression used as an initializer, a default parameter
// value or an attribute argument. The empty Value means "no value".
type Value string

// Raw wraps expr without modification.
func Raw(expr string) Value {
	return Value(expr)
}

// StringValue returns s as a quoted C# string literal.
func StringValue(s string) Value {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case 0:
			sb.WriteString(`\0`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return Value(sb.String())
}

// Number returns the literal form of n.
func Number[N ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64](n N) Value {
	return Value(fmt.Sprint(n))
}

// Bool returns true or false.
func Bool(b bool) Value {
	if b {
		return "true"
	}
	return "false"
}

// Null is the null literal.
const Null Value = "null"

// NewValue returns a new expression. An empty typeName yields the
// target-typed form new(...).
func NewValue(typeName string, args ...Value) Value {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = string(arg)
	}
	if typeName == "" {
		return Value("new(" + strings.Join(parts, ", ") + ")")
	}
	return Value("new " + typeName + "(" + strings.Join(parts, ", ") + ")")
}

// FieldRef returns a reference to f by name.
func FieldRef(f *Field) Value {
	return Value(writer.SanitizeIdentifier(f.Name))
}

// NameOf returns a nameof expression for name.
func NameOf(name string) Value {
	return Value("nameof(" + name + ")")
}

func (v Value) String() string {
	return string(v)
}
