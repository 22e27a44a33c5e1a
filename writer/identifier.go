package writer

// keywords are the reserved words of C#. Contextual keywords such as var,
// record or async are valid identifiers and are not listed.
var keywords = map[string]struct{}{
	"abstract": {}, "as": {}, "base": {}, "bool": {}, "break": {}, "byte": {},
	"case": {}, "catch": {}, "char": {}, "checked": {}, "class": {}, "const": {},
	"continue": {}, "decimal": {}, "default": {}, "delegate": {}, "do": {},
	"double": {}, "else": {}, "enum": {}, "event": {}, "explicit": {},
	"extern": {}, "false": {}, "finally": {}, "fixed": {}, "float": {},
	"for": {}, "foreach": {}, "goto": {}, "if": {}, "implicit": {}, "in": {},
	"int": {}, "interface": {}, "internal": {}, "is": {}, "lock": {},
	"long": {}, "namespace": {}, "new": {}, "null": {}, "object": {},
	"operator": {}, "out": {}, "override": {}, "params": {}, "private": {},
	"protected": {}, "public": {}, "readonly": {}, "ref": {}, "return": {},
	"sbyte": {}, "sealed": {}, "short": {}, "sizeof": {}, "stackalloc": {},
	"static": {}, "string": {}, "struct": {}, "switch": {}, "this": {},
	"throw": {}, "true": {}, "try": {}, "typeof": {}, "uint": {}, "ulong": {},
	"unchecked": {}, "unsafe": {}, "ushort": {}, "using": {}, "virtual": {},
	"void": {}, "volatile": {}, "while": {},
}

// IsKeyword reports whether name is a reserved C# keyword.
func IsKeyword(name string) bool {
	_, ok := keywords[name]
	return ok
}

// SanitizeIdentifier returns name escaped with "@" if it is a reserved
// keyword, and name unchanged otherwise. Apply it once, to identifiers only;
// body code, comments and attribute arguments are written verbatim.
func SanitizeIdentifier(name string) string {
	if IsKeyword(name) {
		return "@" + name
	}
	return name
}

// WriteIdentifier writes name through SanitizeIdentifier.
func (w *Writer) WriteIdentifier(name string) {
	w.Write(SanitizeIdentifier(name))
}
