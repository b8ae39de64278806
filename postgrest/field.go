package postgrest

import "strconv"

// parseField parses a field expression: a bare identifier optionally
// followed by JSON-path segments (`->key` / `->>key` / `->N`) and an
// optional trailing `::type` cast. Grounded on the teacher's dotted-path
// tokenizer (daos/parse.go `token`), replaced with a purpose-built
// arrow-scanner since `->`/`->>` aren't dot-delimited.
func parseField(raw string) (Field, error) {
	name := raw
	cast := ""
	if idx := lastIndexOf(raw, "::"); idx >= 0 {
		name = raw[:idx]
		cast = raw[idx+2:]
		if cast == "" {
			return Field{}, InvalidIdentifierErr(raw, "cast must name a type")
		}
	}

	base, segments, err := parseJSONPath(name)
	if err != nil {
		return Field{}, err
	}
	if err := validateIdentifierSyntax(base); err != nil {
		return Field{}, err
	}

	return Field{Name: base, JSONPath: segments, Cast: cast}, nil
}

// lastIndexOf is a tiny byte-scanner so this package never reaches for
// regexp; strings.LastIndex would do exactly this, but every other
// multi-char scan in this file is hand-rolled to keep the grammar's
// character-level decisions auditable at one site, so this one is too.
func lastIndexOf(s, sub string) int {
	if len(sub) == 0 || len(sub) > len(s) {
		return -1
	}
	last := -1
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			last = i
		}
	}
	return last
}

// parseJSONPath splits a field-plus-path string into its base identifier
// and the chain of `->`/`->>` segments that follow it. A segment whose
// key is all-digits is an array Index; otherwise it's an Object key,
// tagged ReturnsText when introduced by `->>`.
func parseJSONPath(s string) (string, []PathSegment, error) {
	i := 0
	start := 0
	for i < len(s) && !isArrow(s, i) {
		i++
	}
	base := s[start:i]

	var segs []PathSegment
	for i < len(s) {
		if !isArrow(s, i) {
			return "", nil, InvalidIdentifierErr(s, "malformed json path")
		}
		i += 2
		returnsText := false
		if i < len(s) && s[i] == '>' {
			returnsText = true
			i++
		}
		start = i
		for i < len(s) && !isArrow(s, i) {
			i++
		}
		key := s[start:i]
		if key == "" {
			return "", nil, InvalidIdentifierErr(s, "empty json path segment")
		}
		if isAllDigits(key) {
			n, convErr := strconv.Atoi(key)
			if convErr != nil {
				return "", nil, InvalidIdentifierErr(s, "malformed array index")
			}
			segs = append(segs, PathSegment{Kind: PathIndex, Index: n, ReturnsText: returnsText})
		} else {
			if err := validateIdentifierSyntax(key); err != nil {
				return "", nil, err
			}
			segs = append(segs, PathSegment{Kind: PathObject, Key: key, ReturnsText: returnsText})
		}
	}

	return base, segs, nil
}

func isArrow(s string, i int) bool {
	return i+1 < len(s) && s[i] == '-' && s[i+1] == '>'
}
