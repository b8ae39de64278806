package postgrest

import "strings"

// generateSelect builds a SELECT statement: projection, FROM, WHERE,
// ORDER BY, LIMIT, OFFSET. Grounded on the teacher's buildSelect /
// buildSelCurr (daos/build_query.go), retargeted from SQLite's `[ident]`
// quoting and `?` placeholders to PostgreSQL's `"ident"` and `$n`, and
// generalized from the teacher's flat column list to the full
// SelectItem tree (relation/spread/star, JSON path, casts).
func generateSelect(b *queryBuilder, table ResolvedTable, p SelectParams) (string, error) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(emitProjection(p.Select))
	sb.WriteString(" FROM ")
	sb.WriteString(b.useTable(table))

	where, err := emitFilters(b, p.Filters)
	if err != nil {
		return "", err
	}
	if where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}

	if order := emitOrderBy(p.Order); order != "" {
		sb.WriteString(order)
	}

	sb.WriteString(emitLimitOffset(b, p.Limit, p.Offset))

	return sb.String(), nil
}

// emitProjection renders a select= list, or "*" when none was given.
// Relation and Spread items have no attached schema resolver in this
// package (JOIN synthesis is an external collaborator's job per
// spec.md §9), so they're emitted as a bare quoted identifier and the
// walk continues rather than refusing — the "emit and continue"
// resolution recorded in SPEC_FULL.md §4.
func emitProjection(items []SelectItem) string {
	if len(items) == 0 {
		return "*"
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, emitSelectItem(item))
	}
	return strings.Join(parts, ", ")
}

func emitSelectItem(item SelectItem) string {
	var expr string
	switch item.Kind {
	case ItemStar:
		return "*"
	case ItemField:
		expr = emitField(Field{Name: item.Name, JSONPath: item.JSONPath, Cast: item.Cast})
	case ItemRelation, ItemSpread:
		expr = quoteIdent(item.Name)
	default:
		expr = quoteIdent(item.Name)
	}
	if item.Alias != "" {
		expr += " AS " + quoteIdent(item.Alias)
	}
	return expr
}

// emitReturning renders the RETURNING clause shared by INSERT, UPDATE,
// and DELETE. Prefer.Return == "minimal" always suppresses it, even if a
// returning= list was explicitly given, per spec.md §3's override rule.
func emitReturning(items []SelectItem, prefer PreferOptions) string {
	if prefer.Return == PreferReturnMinimal {
		return ""
	}
	if len(items) == 0 {
		return ""
	}
	return " RETURNING " + emitProjection(items)
}

// emitOrderBy renders an ORDER BY clause, or "" if terms is empty.
func emitOrderBy(terms []OrderTerm) string {
	if len(terms) == 0 {
		return ""
	}
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		expr := emitField(t.Field)
		if t.Direction == Desc {
			expr += " DESC"
		} else {
			expr += " ASC"
		}
		switch t.Nulls {
		case NullsFirst:
			expr += " NULLS FIRST"
		case NullsLast:
			expr += " NULLS LAST"
		}
		parts = append(parts, expr)
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

// emitLimitOffset renders LIMIT and OFFSET clauses. Per spec.md §9's
// open-question resolution, `limit=0` passes through as `LIMIT $k` with
// value 0 rather than short-circuiting to an empty result.
func emitLimitOffset(b *queryBuilder, limit, offset *uint64) string {
	var sb strings.Builder
	if limit != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(b.placeholder(int64(*limit)))
	}
	if offset != nil {
		sb.WriteString(" OFFSET ")
		sb.WriteString(b.placeholder(int64(*offset)))
	}
	return sb.String()
}
