package csharp

import "strings"

// Modifiers is a set of declaration modifiers.
type Modifiers uint16

const (
	ModStatic Modifiers = 1 << iota
	ModExtern
	ModNew
	ModVirtual
	ModAbstract
	ModSealed
	ModOverride
	ModReadonly
	ModUnsafe
	ModRequired
	ModVolatile
	ModAsync
	ModPartial
	ModConst
)

// modifierOrder is the order modifiers are written in.
var modifierOrder = []struct {
	mod     Modifiers
	keyword string
}{
	{ModStatic, "static"},
	{ModExtern, "extern"},
	{ModNew, "new"},
	{ModVirtual, "virtual"},
	{ModAbstract, "abstract"},
	{ModSealed, "sealed"},
	{ModOverride, "override"},
	{ModReadonly, "readonly"},
	{ModUnsafe, "unsafe"},
	{ModRequired, "required"},
	{ModVolatile, "volatile"},
	{ModAsync, "async"},
	{ModPartial, "partial"},
	{ModConst, "const"},
}

// Has reports whether every modifier in mod is set.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

// With returns m with mod added.
func (m Modifiers) With(mod Modifiers) Modifiers {
	return m | mod
}

// Without returns m with mod removed.
func (m Modifiers) Without(mod Modifiers) Modifiers {
	return m &^ mod
}

// Set adds or removes mod.
func (m *Modifiers) Set(mod Modifiers, on bool) {
	if on {
		*m |= mod
	} else {
		*m &^= mod
	}
}

// List returns the keywords of the set modifiers in writing order.
// Bits outside the known modifiers are ignored.
func (m Modifiers) List() []string {
	var kws []string
	for _, entry := range modifierOrder {
		if m.Has(entry.mod) {
			kws = append(kws, entry.keyword)
		}
	}
	return kws
}

func (m Modifiers) String() string {
	return strings.Join(m.List(), " ")
}
