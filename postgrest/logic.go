package postgrest

import "strings"

// parseLogicTree parses a top-level and()/or() query-string value into a
// LogicNode tree. raw is the value half of a key like "and" or "or" (the
// key itself, including any "not." prefix, is handled by the caller,
// which passes kind and negated in). Grounded on the teacher's
// buildFilterGroup (daos/query_helpers.go), generalized from the
// teacher's two-level (group-of-leaves) structure to the fully
// recursive tree spec.md §4.3 requires.
func parseLogicTree(kind LogicNodeKind, negated bool, raw string, depth int) (LogicNode, error) {
	if depth > cfgMaxQueryDepth() {
		return LogicNode{}, QueryTooDeepErr(depth, cfgMaxQueryDepth())
	}

	inner, ok := trimWrapping(raw, '(', ')')
	if !ok {
		return LogicNode{}, ErrUnclosedParenthesis
	}

	parts, err := splitTopLevelComma(inner)
	if err != nil {
		return LogicNode{}, err
	}
	children := make([]LogicNode, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		child, err := parseLogicElement(part, depth+1)
		if err != nil {
			return LogicNode{}, err
		}
		children = append(children, child)
	}

	node := LogicNode{Kind: kind, Children: children}
	if negated {
		return LogicNode{Kind: NodeNot, Child: &node}, nil
	}
	return node, nil
}

// parseLogicElement parses one comma-separated element inside an
// and()/or() list: either a nested "and(...)"/"or(...)"/"not.and(...)"/
// "not.or(...)" group, or a leaf "field.op.value" filter.
func parseLogicElement(part string, depth int) (LogicNode, error) {
	negated := false
	body := part
	if strings.HasPrefix(body, "not.") {
		negated = true
		body = body[len("not."):]
	}

	switch {
	case strings.HasPrefix(body, "and("):
		return parseLogicTree(NodeAnd, negated, body[len("and"):], depth)
	case strings.HasPrefix(body, "or("):
		return parseLogicTree(NodeOr, negated, body[len("or"):], depth)
	default:
		filter, err := parseLogicLeaf(part)
		if err != nil {
			return LogicNode{}, err
		}
		return LogicNode{Kind: NodeLeaf, Leaf: &filter}, nil
	}
}

// parseLogicLeaf parses a single "field.op.value" (optionally
// "field.not.op.value") triple found inside an and()/or() group, where
// the dots separate field, operator, and value unambiguously because the
// field itself may not contain one (a dotted table.column qualifier, as
// the teacher supports for cross-table or(), has no home in this
// package's IR since embedded-resource joins aren't resolved here).
func parseLogicLeaf(raw string) (Filter, error) {
	dot := strings.IndexByte(raw, '.')
	if dot < 0 {
		return Filter{}, UnknownOperatorErr(raw)
	}
	fieldPart := raw[:dot]
	rest := raw[dot+1:]

	field, err := parseField(fieldPart)
	if err != nil {
		return Filter{}, err
	}

	parsed, err := parseFilterValue(rest)
	if err != nil {
		return Filter{}, err
	}

	return Filter{
		Field:      field,
		Op:         parsed.Op,
		Value:      parsed.Value,
		Quantifier: parsed.Quantifier,
		Language:   parsed.Language,
		Negated:    parsed.Negated,
	}, nil
}
