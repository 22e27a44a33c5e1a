package csharp

import (
	"strconv"

	"github.com/okra-platform/cspoet/writer"
)

// Visibility is the accessibility of a declaration.
// https://learn.microsoft.com/dotnet/csharp/language-reference/keywords/accessibility-levels
type Visibility int

const (
	// VisibilityDefault writes no modifier, leaving the language default.
	VisibilityDefault Visibility = iota
	// Public access is not restricted.
	Public
	// Protected access is limited to the containing type and derived types.
	Protected
	// Internal access is limited to the current assembly.
	Internal
	// ProtectedInternal access is limited to the current assembly or derived types.
	ProtectedInternal
	// Private access is limited to the containing type.
	Private
	// PrivateProtected access is limited to derived types in the current assembly.
	PrivateProtected
	// FileLocal types are only visible in the current source file.
	FileLocal
)

var visibilityKeywords = map[Visibility]string{
	VisibilityDefault: "",
	Public:            "public",
	Protected:         "protected",
	Internal:          "internal",
	ProtectedInternal: "protected internal",
	Private:           "private",
	PrivateProtected:  "private protected",
	FileLocal:         "file",
}

// Keyword returns the C# spelling of v. VisibilityDefault maps to "".
func (v Visibility) Keyword() (string, error) {
	kw, ok := visibilityKeywords[v]
	if !ok {
		return "", writer.Unmapped("visibility", int(v))
	}
	return kw, nil
}

func (v Visibility) String() string {
	kw, err := v.Keyword()
	if err != nil {
		return "Visibility(" + strconv.Itoa(int(v)) + ")"
	}
	if kw == "" {
		return "default"
	}
	return kw
}
