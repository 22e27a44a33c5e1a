package schema

import (
	"regexp"
)

// headerDirectiveRegex matches @csharp(...) at the start of a line.
// Nested parentheses are allowed one level deep.
var headerDirectiveRegex = regexp.MustCompile(`(?m)^@csharp\s*\(((?:[^()]*|\([^)]*\))*)\)`)

// serviceStartRegex matches service declarations at the start of a line.
var serviceStartRegex = regexp.MustCompile(`(?m)^service\s+(\w+)\s*{`)

const (
	headerTypeName  = "_Header"
	servicePrefix   = "Service_"
	headerDirective = "csharp"
)

// PreprocessGraphQL rewrites the `@csharp(...)` header and `service` blocks
// into valid GraphQL `type` definitions.
func PreprocessGraphQL(input string) string {
	input = headerDirectiveRegex.ReplaceAllStringFunc(input, func(match string) string {
		args := headerDirectiveRegex.FindStringSubmatch(match)[1]
		return `type ` + headerTypeName + ` {
  _: String @` + headerDirective + `(` + args + `)
}`
	})

	input = serviceStartRegex.ReplaceAllStringFunc(input, func(match string) string {
		name := serviceStartRegex.FindStringSubmatch(match)[1]
		return `type ` + servicePrefix + name + ` {`
	})

	return input
}
