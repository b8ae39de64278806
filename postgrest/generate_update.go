package postgrest

import "strings"

// generateUpdate builds an UPDATE statement: SET assignments, WHERE,
// ORDER BY, LIMIT, RETURNING. validateUpdate already guarantees
// non-empty SetValues and Filters before this runs (spec.md §4.3), so a
// violation here indicates an upstream bug, not a request error.
// Grounded on the teacher's Update (daos/queries.go), retargeted from
// SQLite's `?` placeholders to PostgreSQL's `$n`.
func generateUpdate(b *queryBuilder, table ResolvedTable, p UpdateParams, prefer PreferOptions) (string, error) {
	cols := sortedKeys(p.SetValues)
	if len(cols) == 0 {
		return "", GenerationInvariantViolatedErr("update reached generator with no SET columns")
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(b.useTable(table))
	sb.WriteString(" SET ")

	assigns := make([]string, 0, len(cols))
	for _, c := range cols {
		assigns = append(assigns, quoteIdent(c)+" = "+b.placeholder(p.SetValues[c]))
	}
	sb.WriteString(strings.Join(assigns, ", "))

	if len(p.Filters) == 0 {
		return "", GenerationInvariantViolatedErr("update reached generator with no filters")
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
