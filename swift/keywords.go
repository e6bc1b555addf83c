// Package swift holds target-language knowledge: the reserved-word table, the
// identifier sanitizer, and the printer that renders declaration trees into
// Swift source text.
package swift

// Swift reserved words. Covers declaration, statement, and expression
// keywords plus the contextual words that cannot appear as bare identifiers.
var reservedWords = map[string]bool{
	// Declarations
	"associatedtype":  true,
	"borrowing":       true,
	"class":           true,
	"consuming":       true,
	"deinit":          true,
	"enum":            true,
	"extension":       true,
	"fileprivate":     true,
	"func":            true,
	"import":          true,
	"init":            true,
	"inout":           true,
	"internal":        true,
	"let":             true,
	"nonisolated":     true,
	"open":            true,
	"operator":        true,
	"precedencegroup": true,
	"private":         true,
	"protocol":        true,
	"public":          true,
	"rethrows":        true,
	"static":          true,
	"struct":          true,
	"subscript":       true,
	"typealias":       true,
	"var":             true,

	// Statements
	"break":       true,
	"case":        true,
	"catch":       true,
	"continue":    true,
	"default":     true,
	"defer":       true,
	"do":          true,
	"else":        true,
	"fallthrough": true,
	"for":         true,
	"guard":       true,
	"if":          true,
	"in":          true,
	"repeat":      true,
	"return":      true,
	"switch":      true,
	"throw":       true,
	"where":       true,
	"while":       true,

	// Expressions and types
	"Any":    true,
	"any":    true,
	"as":     true,
	"await":  true,
	"false":  true,
	"is":     true,
	"nil":    true,
	"self":   true,
	"Self":   true,
	"super":  true,
	"throws": true,
	"true":   true,
	"try":    true,

	// Patterns
	"_": true,
}

// IsReservedWord reports whether name collides with a Swift keyword verbatim.
func IsReservedWord(name string) bool {
	return reservedWords[name]
}

// escapeReservedWord prefixes a keyword collision with an underscore.
func escapeReservedWord(name string) string {
	if reservedWords[name] {
		return "_" + name
	}
	return name
}
