package postgrest

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// parseQueryString splits a raw query string into its key/value pairs.
// Percent-decoding and multi-value keys are exactly what net/url already
// gets right; reinventing that here would just be a worse copy of the
// standard library, so only the PostgREST-specific sub-grammars below
// are hand-rolled combinators, per spec.md §4.2.
func parseQueryString(raw string) (url.Values, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, InvalidIdentifierErr(raw, "malformed query string")
	}
	return values, nil
}

// parseTopLevelFilter parses one `key=value` pair from the query string
// into a Filter, where key is a field expression and value is the
// `[not.]op.value` grammar handled by parseFilterValue.
func parseTopLevelFilter(key, value string) (Filter, error) {
	field, err := parseField(key)
	if err != nil {
		return Filter{}, err
	}
	parsed, err := parseFilterValue(value)
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

// buildFilterNodes walks every non-reserved query-string key plus the
// reserved and/or/not.and/not.or logic-tree keys, producing the flat
// list of LogicNode the generator ANDs together. Duplicate keys (the
// same column filtered twice, e.g. "age=gte.18&age=lte.65") each become
// their own leaf, matching PostgREST's implicit-AND-of-repeated-keys
// semantics; last-wins only applies to the single-valued reserved keys
// (select/order/limit/offset), per SPEC_FULL.md's Open Question
// resolution.
func buildFilterNodes(values url.Values, depth int) ([]LogicNode, error) {
	var nodes []LogicNode

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		vals := values[key]
		switch key {
		case ParamAnd:
			for _, v := range vals {
				node, err := parseLogicTree(NodeAnd, false, v, depth+1)
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, node)
			}
		case ParamOr:
			for _, v := range vals {
				node, err := parseLogicTree(NodeOr, false, v, depth+1)
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, node)
			}
		case ParamNotAnd:
			for _, v := range vals {
				node, err := parseLogicTree(NodeAnd, true, v, depth+1)
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, node)
			}
		case ParamNotOr:
			for _, v := range vals {
				node, err := parseLogicTree(NodeOr, true, v, depth+1)
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, node)
			}
		default:
			if isReservedParam(key) {
				continue
			}
			for _, v := range vals {
				f, err := parseTopLevelFilter(key, v)
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, LogicNode{Kind: NodeLeaf, Leaf: &f})
			}
		}
	}

	return nodes, nil
}

// lastValue returns the last value bound to key, PostgREST's own
// duplicate-key resolution rule for single-valued parameters
// (select/order/limit/offset).
func lastValue(values url.Values, key string) (string, bool) {
	vs, ok := values[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

func parseLimitOffset(raw string, isLimit bool) (*uint64, error) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		if isLimit {
			return nil, InvalidLimitErr(raw)
		}
		return nil, InvalidOffsetErr(raw)
	}
	return &n, nil
}

// parseColumnsOrConflict parses a bare comma-separated column list, used
// by both `columns=` and `on_conflict=`.
func parseColumnsOrConflict(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	cols := splitUnquoted(raw, ',')
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		c = strings.TrimSpace(c)
		if err := validateIdentifierSyntax(c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// parseReturning parses a `returning=`/Prefer-driven select list for
// mutation responses; it shares the select-list grammar since RETURNING
// supports the same column/alias/cast shape (relations aren't
// meaningful on a RETURNING clause, but nothing here forbids one - the
// generator only ever sees plain ItemField/ItemStar items for
// RETURNING in practice).
func parseReturning(raw string) ([]SelectItem, error) {
	return parseSelectList(raw)
}
