package postgrest

import "strings"

// generateDelete builds a DELETE statement: WHERE, ORDER BY, LIMIT,
// RETURNING. validateDelete already guarantees non-empty Filters
// (spec.md §4.3); a violation here indicates an upstream bug. Grounded
// on the teacher's Delete (daos/queries.go) and its inline
// ErrMissingWhereClause guard, retargeted to PostgreSQL placeholders.
func generateDelete(b *queryBuilder, table ResolvedTable, p DeleteParams, prefer PreferOptions) (string, error) {
	var sb strings.Builder
	sb.WriteString("DELETE FROM ")
	sb.WriteString(b.useTable(table))

	if len(p.Filters) == 0 {
		return "", GenerationInvariantViolatedErr("delete reached generator with no filters")
	}
	where, err := emitFilters(b, p.Filters)
	if err != nil {
		return "", err
	}
	sb.WriteString(" WHERE ")
	sb.WriteString(where)

	sb.WriteString(emitOrderBy(p.Order))
	sb.WriteString(emitLimitOffset(b, p.Limit, nil))
	sb.WriteString(emitReturning(p.Returning, prefer))

	return sb.String(), nil
}
