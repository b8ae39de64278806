package postgrest

import (
	"strconv"
	"strings"
)

// emitFilters ANDs together the top-level filter list, the shape every
// generate_*.go caller needs for its WHERE clause. An empty list yields
// the empty string, meaning "no WHERE clause."
func emitFilters(b *queryBuilder, nodes []LogicNode) (string, error) {
	if len(nodes) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		s, err := emitLogicNode(b, n)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " AND "), nil
}

// emitLogicNode recursively renders one node of the boolean tree.
// Grounded on the teacher's buildFilterGroup (daos/query_helpers.go),
// which flattens a single level of or(...); generalized to the fully
// recursive And/Or/Not/Leaf tree spec.md §4.3 requires.
func emitLogicNode(b *queryBuilder, node LogicNode) (string, error) {
	switch node.Kind {
	case NodeLeaf:
		if node.Leaf == nil {
			return "", GenerationInvariantViolatedErr("logic leaf missing filter")
		}
		return emitFilter(b, *node.Leaf)

	case NodeAnd:
		return emitLogicCombinator(b, node.Children, " AND ")

	case NodeOr:
		return emitLogicCombinator(b, node.Children, " OR ")

	case NodeNot:
		if node.Child == nil {
			return "", GenerationInvariantViolatedErr("logic not missing child")
		}
		inner, err := emitLogicNode(b, *node.Child)
		if err != nil {
			return "", err
		}
		return "NOT (" + inner + ")", nil

	default:
		return "", GenerationInvariantViolatedErr("unknown logic node kind")
	}
}

func emitLogicCombinator(b *queryBuilder, children []LogicNode, joiner string) (string, error) {
	parts := make([]string, 0, len(children))
	for _, c := range children {
		s, err := emitLogicNode(b, c)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return "(" + strings.Join(parts, joiner) + ")", nil
}

// emitFilter renders one predicate via the flat sqlOps table (§6/§9):
// the value shape (scalar/list/array/range/keyword/fts) and the
// negated-form lookup are both table-driven, never a type switch over
// operator identity.
func emitFilter(b *queryBuilder, f Filter) (string, error) {
	entry, ok := sqlOps[f.Op]
	if !ok {
		return "", GenerationInvariantViolatedErr("unvalidated operator reached generator: " + string(f.Op))
	}
	field := emitField(f.Field)

	switch {
	case entry.isKeyword:
		return emitIsFilter(field, f)
	case entry.isFTS:
		return emitFTSFilter(b, field, entry, f)
	case f.Quantifier != QuantifierNone && !entry.isList:
		return emitQuantifiedFilter(b, field, entry, f)
	case entry.isList:
		return emitInFilter(b, field, f)
	case entry.isArray, entry.isRange:
		return emitInfixFilter(b, field, entry, f)
	default:
		return emitScalarFilter(b, field, entry, f)
	}
}

// emitQuantifiedFilter renders `op(any).{...}` / `op(all).{...}` — any
// scalar, array, or range operator suffixed with a quantifier — as
// `field op ANY(placeholder)` / `field op ALL(placeholder)`, per spec.md
// §6's quantifier row. The quantified value always parses to a
// FilterValue list (filter.go's parseFilterValueBody), so this never
// reads Value.Single. Negation always wraps the whole predicate in
// `NOT(...)`, since flipping a quantified operator isn't well-defined.
func emitQuantifiedFilter(b *queryBuilder, field string, entry sqlOpEntry, f Filter) (string, error) {
	quant := "ANY"
	if f.Quantifier == QuantifierAll {
		quant = "ALL"
	}
	placeholder := b.placeholder(stringSliceValue(f.Value.List))
	sql := field + " " + entry.sql + " " + quant + "(" + placeholder + ")"
	if f.Negated {
		sql = "NOT (" + sql + ")"
	}
	return sql, nil
}

func emitField(field Field) string {
	expr := quoteIdent(field.Name)
	for _, seg := range field.JSONPath {
		op := "->"
		if seg.ReturnsText {
			op = "->>"
		}
		if seg.Kind == PathIndex {
			expr += op + strconv.Itoa(seg.Index)
		} else {
			expr += op + "'" + seg.Key + "'"
		}
	}
	if field.Cast != "" {
		expr = "(" + expr + ")::" + field.Cast
	}
	return expr
}

func emitScalarFilter(b *queryBuilder, field string, entry sqlOpEntry, f Filter) (string, error) {
	op := entry.sql
	if f.Negated {
		if entry.negate != "" {
			op = entry.negate
		}
	}
	value := f.Value.Single
	if f.Op == OpLike || f.Op == OpILike {
		value = translateLikePattern(value)
	}
	placeholder := b.placeholder(value)
	sql := field + " " + op + " " + placeholder
	if f.Negated && entry.negate == "" {
		sql = "NOT (" + sql + ")"
	}
	return sql, nil
}

// translateLikePattern converts PostgREST's `*` wildcard convention to
// SQL's `%` at generation time only — the parser preserves `*` literally
// in the IR (spec.md §4.2), so this is the single site where the
// substitution happens, keeping the IR a faithful record of what the
// client sent.
func translateLikePattern(raw string) string {
	return strings.ReplaceAll(raw, "*", "%")
}

func emitInFilter(b *queryBuilder, field string, f Filter) (string, error) {
	placeholder := b.placeholder(stringSliceValue(f.Value.List))
	sql := field + " = ANY(" + placeholder + ")"
	if f.Negated {
		sql = "NOT (" + sql + ")"
	}
	return sql, nil
}

func emitInfixFilter(b *queryBuilder, field string, entry sqlOpEntry, f Filter) (string, error) {
	var placeholder string
	if f.Value.Kind == ValueList {
		placeholder = b.placeholder(stringSliceValue(f.Value.List))
	} else {
		placeholder = b.placeholder(f.Value.Single)
	}
	sql := field + " " + entry.sql + " " + placeholder
	if f.Negated {
		sql = "NOT (" + sql + ")"
	}
	return sql, nil
}

func emitIsFilter(field string, f Filter) (string, error) {
	var sql string
	switch f.Value.Single {
	case IsNull:
		sql = field + " IS NULL"
		if f.Negated {
			sql = field + " IS NOT NULL"
		}
		return sql, nil
	case IsNotNull:
		sql = field + " IS NOT NULL"
		if f.Negated {
			sql = field + " IS NULL"
		}
		return sql, nil
	case IsTrue:
		sql = field + " IS TRUE"
	case IsFalse:
		sql = field + " IS FALSE"
	case IsUnknown:
		sql = field + " IS UNKNOWN"
	default:
		return "", InvalidIdentifierErr(f.Value.Single, "not a valid is-keyword")
	}
	if f.Negated {
		sql = "NOT (" + sql + ")"
	}
	return sql, nil
}

func emitFTSFilter(b *queryBuilder, field string, entry sqlOpEntry, f Filter) (string, error) {
	lang := f.Language
	if lang == "" {
		lang = cfgDefaultFTSLanguage()
	}
	langPH := b.placeholder(lang)
	valuePH := b.placeholder(f.Value.Single)
	sql := "to_tsvector(" + langPH + "::regconfig, " + field + ") @@ " + entry.sql + "(" + langPH + "::regconfig, " + valuePH + ")"
	if f.Negated {
		sql = "NOT (" + sql + ")"
	}
	return sql, nil
}

// stringSliceValue converts a parsed list of raw element strings into a
// Go []string, the shape a pgx-style driver binds as a Postgres array
// parameter for = ANY($n) / @>/<@/&& comparisons.
func stringSliceValue(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}
