package swift

import (
	"fmt"
	"strings"
	"unicode"
)

// Role selects the identifier position a sanitized name is destined for.
// Type names are capitalized under the idiomatic strategy, member names are
// not.
type Role int

const (
	RoleType Role = iota
	RoleMember
)

// Strategy selects the sanitization algorithm.
type Strategy int

const (
	// StrategyDefensive escapes every special character deterministically.
	// The result is ugly but collision-free for arbitrary input.
	StrategyDefensive Strategy = iota

	// StrategyIdiomatic produces camel-cased names by splitting words on
	// separators, falling back to defensive per-name whenever the input
	// contains a character outside its allow-list.
	StrategyIdiomatic
)

// ParseStrategy maps a configuration string to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "defensive":
		return StrategyDefensive, nil
	case "idiomatic":
		return StrategyIdiomatic, nil
	default:
		return StrategyDefensive, fmt.Errorf("unknown naming strategy %q (expected \"defensive\" or \"idiomatic\")", s)
	}
}

// Mnemonic tokens for common ASCII punctuation. Characters without an entry
// fall back to an uppercase-hex escape of their code point.
var specialCharNames = map[rune]string{
	' ':  "space",
	'!':  "exclamationmark",
	'"':  "quote",
	'#':  "hash",
	'$':  "dollar",
	'%':  "percent",
	'&':  "ampersand",
	'\'': "apostrophe",
	'(':  "lparen",
	')':  "rparen",
	'*':  "asterisk",
	'+':  "plus",
	',':  "comma",
	'-':  "hyphen",
	'.':  "period",
	'/':  "slash",
	':':  "colon",
	';':  "semicolon",
	'<':  "langle",
	'=':  "equals",
	'>':  "rangle",
	'?':  "questionmark",
	'@':  "at",
	'[':  "lbracket",
	'\\': "backslash",
	']':  "rbracket",
	'^':  "caret",
	'`':  "backtick",
	'{':  "lcurly",
	'|':  "pipe",
	'}':  "rcurly",
	'~':  "tilde",
}

// Safe converts an arbitrary raw name into a valid Swift identifier. It is
// total: for any input, including the empty string, the result is non-empty,
// matches the identifier grammar, and never equals a reserved word verbatim.
func Safe(name string, role Role, strategy Strategy) string {
	if strategy == StrategyIdiomatic {
		if out, ok := safeIdiomatic(name, role); ok {
			return escapeReservedWord(out)
		}
	}
	return safeDefensive(name)
}

// safeDefensive escapes every character that cannot appear in an identifier.
// Already-safe identifiers pass through unchanged, which makes the function
// idempotent.
func safeDefensive(name string) string {
	if name == "" {
		return "_empty_"
	}
	// A bare underscore is a valid pattern but not a usable identifier; it
	// gets its own placeholder so it stays distinguishable from "".
	if name == "_" {
		return "_underscore_"
	}

	var b strings.Builder
	for i, r := range name {
		if i == 0 && unicode.IsDigit(r) {
			b.WriteRune('_')
			b.WriteRune(r)
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
			continue
		}
		if tok, ok := specialCharNames[r]; ok {
			b.WriteString("_")
			b.WriteString(tok)
			b.WriteString("_")
		} else {
			fmt.Fprintf(&b, "_x%X_", r)
		}
	}
	return escapeReservedWord(b.String())
}

// idState tracks the word-scanning state of the idiomatic sanitizer.
type idState int

const (
	statePreFirstWord     idState = iota // nothing emitted yet (leading underscores aside)
	stateFirstWord                       // accumulating the first word
	stateWord                            // accumulating a subsequent word
	stateAwaitWordStarter                // separator seen, waiting for the next word
)

// safeIdiomatic camel-cases name by splitting on '_', '-' and space, dropping
// '.' into a word boundary and stripping '{'/'}'. Consecutive uppercase runs
// (acronyms, ALL_CAPS segments) are re-cased with one character of lookahead:
// an uppercase letter stays upper only when the following character is
// lowercase, which marks it as the start of the next word.
//
// The second result is false when the input contains a character outside the
// allow-list, is empty, or never produced a first word; the caller then falls
// back to the defensive algorithm for this one name.
func safeIdiomatic(name string, role Role) (string, bool) {
	runes := []rune(name)
	var out []rune
	state := statePreFirstWord
	loweringRun := false
	startedWord := false

	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '{' || c == '}':
			continue

		case c == '_' || c == '-' || c == ' ' || c == '.':
			if state == statePreFirstWord {
				if c == '_' {
					// Leading underscores survive verbatim.
					out = append(out, '_')
				}
				continue
			}
			state = stateAwaitWordStarter
			loweringRun = false

		case unicode.IsLetter(c):
			switch state {
			case statePreFirstWord:
				if role == RoleType {
					out = append(out, unicode.ToUpper(c))
				} else {
					out = append(out, unicode.ToLower(c))
				}
				loweringRun = unicode.IsUpper(c)
				state = stateFirstWord
				startedWord = true

			case stateAwaitWordStarter:
				out = append(out, unicode.ToUpper(c))
				loweringRun = unicode.IsUpper(c)
				state = stateWord

			default:
				if unicode.IsUpper(c) {
					switch {
					case loweringRun && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
						// Genuine word boundary: this capital begins the
						// next word, stop lowering the run.
						out = append(out, c)
						loweringRun = false
					case loweringRun:
						out = append(out, unicode.ToLower(c))
					default:
						// New hump after a lowercase letter or digit.
						out = append(out, c)
						loweringRun = true
					}
				} else {
					out = append(out, c)
					loweringRun = false
				}
			}

		case unicode.IsDigit(c):
			switch state {
			case statePreFirstWord:
				// An identifier cannot start with a digit; let the
				// defensive algorithm prefix it.
				return "", false
			case stateAwaitWordStarter:
				out = append(out, c)
				// Stay waiting so the next letter still starts a word.
			default:
				out = append(out, c)
				loweringRun = false
			}

		default:
			return "", false
		}
	}

	if !startedWord || len(out) == 0 {
		return "", false
	}
	return string(out), true
}
