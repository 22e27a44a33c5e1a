package csharp

import "strconv"

// BodyType selects between block and expression bodies.
type BodyType int

const (
	// BodyDefault picks the default of the element: block for methods,
	// expression for property accessors.
	BodyDefault BodyType = iota
	BodyBlock
	BodyExpression
)

func (b BodyType) String() string {
	switch b {
	case BodyDefault:
		return "default"
	case BodyBlock:
		return "block"
	case BodyExpression:
		return "expression"
	default:
		return "BodyType(" + strconv.Itoa(int(b)) + ")"
	}
}

func (b BodyType) or(def BodyType) BodyType {
	if b == BodyDefault {
		return def
	}
	return b
}
