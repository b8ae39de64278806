package postgrest

import "strings"

// generateRpc builds a `SELECT * FROM schema.fn(arg := $k, ...)` call.
// Argument binding is by name, sorted for determinism (spec.md §4.2's
// "deterministic ordering" edge case), matching the teacher's existing
// named-parameter style absent from daos but present in the retrieval
// pack's other stored-procedure callers; the shape here is new, grounded
// directly on spec.md §4.4 and §8 scenario 7.
func generateRpc(b *queryBuilder, p RpcParams, prefer PreferOptions) (string, error) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(emitProjection(p.Returning))
	sb.WriteString(" FROM ")
	sb.WriteString(b.useTable(p.Function))
	sb.WriteString("(")

	names := sortedKeys(p.Args)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		if err := validateIdentifierSyntax(name); err != nil {
			return "", InvalidRpcArgsErr(err.Error())
		}
		parts = append(parts, quoteIdent(name)+" := "+b.placeholder(p.Args[name]))
	}
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString(")")

	where, err := emitFilters(b, p.Filters)
	if err != nil {
		return "", err
	}
	if where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}

	sb.WriteString(emitOrderBy(p.Order))
	sb.WriteString(emitLimitOffset(b, p.Limit, p.Offset))

	return sb.String(), nil
}
