package postgrest

import "strings"

// parsedFilterValue is the intermediate result of parsing the
// `[not.][op](\(lang-or-quantifier\))?.value` grammar for a single
// query-string value, before it's paired with the Field the key parsed
// to.
type parsedFilterValue struct {
	Op         FilterOp
	Value      FilterValue
	Quantifier Quantifier
	Language   string
	Negated    bool
}

// parseFilterValue parses one filter value string, e.g. "gte.18",
// "not.in.(1,2,3)", "eq(any).{1,2}", or "fts(english).cat & dog".
// Grounded on the teacher's buildFilter (daos/query_helpers.go) /
// mapOperator (daos/parse.go), generalized from the teacher's fixed
// single-token operator set to the full §6 table plus negation,
// quantifiers, and FTS languages.
func parseFilterValue(raw string) (parsedFilterValue, error) {
	s := raw
	negated := false
	if strings.HasPrefix(s, "not.") {
		negated = true
		s = s[len("not."):]
	}

	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return parsedFilterValue{}, UnknownOperatorErr(s)
	}
	opToken := s[:dot]
	valuePart := s[dot+1:]

	base, paren := splitParenSuffix(opToken)
	op := FilterOp(base)
	entry, ok := sqlOps[op]
	if !ok {
		return parsedFilterValue{}, UnknownOperatorErr(base)
	}

	quant := QuantifierNone
	lang := ""
	if paren != "" {
		if entry.isFTS {
			lang = paren
		} else {
			switch paren {
			case "any":
				quant = QuantifierAny
			case "all":
				quant = QuantifierAll
			}
		}
	}

	value, err := parseFilterValueBody(entry, quant, valuePart)
	if err != nil {
		return parsedFilterValue{}, err
	}

	return parsedFilterValue{
		Op:         op,
		Value:      value,
		Quantifier: quant,
		Language:   lang,
		Negated:    negated,
	}, nil
}

// parseFilterValueBody picks the value shape (scalar/list/array/range/
// keyword) from the operator table entry, per spec.md §4.2.
func parseFilterValueBody(entry sqlOpEntry, quant Quantifier, raw string) (FilterValue, error) {
	switch {
	case entry.isKeyword:
		return FilterValue{Kind: ValueSingle, Single: raw}, nil

	case quant != QuantifierNone:
		list, err := parseBraceList(raw)
		if err != nil {
			return FilterValue{}, err
		}
		return FilterValue{Kind: ValueList, List: list}, nil

	case entry.isList:
		list, err := parseParenList(raw)
		if err != nil {
			return FilterValue{}, err
		}
		return FilterValue{Kind: ValueList, List: list}, nil

	case entry.isArray:
		list, err := parseBraceList(raw)
		if err != nil {
			return FilterValue{}, err
		}
		return FilterValue{Kind: ValueList, List: list}, nil

	case entry.isRange:
		// Range literals (`[a,b)`, `(a,b]`, ...) are carried whole, as
		// Postgres' own range-literal input syntax — the generator binds
		// the full bracketed text as a single parameter.
		return FilterValue{Kind: ValueSingle, Single: raw}, nil

	default:
		return FilterValue{Kind: ValueSingle, Single: raw}, nil
	}
}

// parseParenList parses `(v1,v2,v3)` into its comma-separated elements.
func parseParenList(raw string) ([]string, error) {
	inner, ok := trimWrapping(raw, '(', ')')
	if !ok {
		return nil, InvalidIdentifierErr(raw, "expected a parenthesized list")
	}
	return splitCommaList(inner)
}

// parseBraceList parses `{v1,v2}` into its comma-separated elements.
func parseBraceList(raw string) ([]string, error) {
	inner, ok := trimWrapping(raw, '{', '}')
	if !ok {
		return nil, InvalidIdentifierErr(raw, "expected a brace-delimited list")
	}
	return splitCommaList(inner)
}

func splitCommaList(inner string) ([]string, error) {
	if inner == "" {
		return nil, nil
	}
	list := splitUnquoted(inner, ',')
	if len(list) > cfgMaxInValues() {
		return nil, InListTooLargeErr(len(list), cfgMaxInValues())
	}
	return list, nil
}
