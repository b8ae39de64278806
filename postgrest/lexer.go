package postgrest

import "strings"

// splitUnquoted splits s on delim, treating a double-quoted span as
// opaque (delim inside quotes doesn't split) and a backslash as an
// escape for the following character. Quote and escape characters
// themselves are consumed, not copied to the output — this is the same
// byte-level scanning technique as the teacher's daos/parse.go `token`
// helper, generalized from a hardcoded '.' to an arbitrary delimiter so
// it can serve the in-list, array, order, and column-list grammars alike.
//
// It never uses regexp: every grammar in this package is a hand-written
// combinator over runes, per spec.md §4.2.
func splitUnquoted(s string, delim rune) []string {
	var out []string
	var cur strings.Builder
	inQuotes := false
	escaped := false

	for _, r := range s {
		if escaped {
			cur.WriteRune(r)
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '"':
			inQuotes = !inQuotes
		case delim:
			if inQuotes {
				cur.WriteRune(r)
			} else {
				out = append(out, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	out = append(out, cur.String())
	return out
}

// trimWrapping strips a single leading `open` and trailing `close` rune
// from s, if both are present; otherwise it returns s unchanged and ok=false.
func trimWrapping(s string, open, close_ byte) (string, bool) {
	if len(s) >= 2 && s[0] == open && s[len(s)-1] == close_ {
		return s[1 : len(s)-1], true
	}
	return s, false
}

// splitParenSuffix splits a token like `eq(any)` into ("eq", "any"), or
// `fts(english)` into ("fts", "english"). A token with no parenthesized
// suffix returns (token, "").
func splitParenSuffix(token string) (base string, inner string) {
	if !strings.HasSuffix(token, ")") {
		return token, ""
	}
	open := strings.IndexByte(token, '(')
	if open < 0 {
		return token, ""
	}
	return token[:open], token[open+1 : len(token)-1]
}

// isAllDigits reports whether s is non-empty and consists only of ASCII
// digits, the shape a JSON-path array index takes.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isIdentStart reports whether r is a valid first character of an
// identifier: a letter or underscore.
func isIdentStart(r byte) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

// isIdentCont reports whether r is a valid non-first character of an
// identifier: a letter, digit, or underscore.
func isIdentCont(r byte) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

// validateIdentifierSyntax enforces spec.md §4.2's identifier grammar:
// `[A-Za-z_][A-Za-z0-9_]*`, with no embedded quotes, dots, or other
// metacharacters — invariant 3 ("inner double quotes must be rejected at
// parse time, never escaped at generation time") reduces to this check,
// since the character class already excludes `"`.
func validateIdentifierSyntax(name string) error {
	if name == "" {
		return InvalidIdentifierErr(name, "identifier must not be empty")
	}
	if len(name) > cfgMaxIdentifierLength() {
		return InvalidIdentifierErr(name, "identifier exceeds maximum length")
	}
	if !isIdentStart(name[0]) {
		return InvalidIdentifierErr(name, "must start with a letter or underscore")
	}
	for i := 1; i < len(name); i++ {
		if !isIdentCont(name[i]) {
			return InvalidIdentifierErr(name, "contains an invalid character")
		}
	}
	return nil
}
