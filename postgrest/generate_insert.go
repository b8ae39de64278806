package postgrest

import (
	"sort"
	"strings"
)

// generateInsert builds an INSERT statement: columns, VALUES rows, an
// optional ON CONFLICT clause, and an optional RETURNING clause.
// Grounded on the teacher's Insert/Upsert (daos/queries.go), retargeted
// from SQLite's `?` placeholders to PostgreSQL's `$n`, and generalized
// from the teacher's single-row insert to the bulk-insert sorted-union
// column policy spec.md §9 calls out as "the single most likely place
// for silent divergence between implementations."
func generateInsert(b *queryBuilder, table ResolvedTable, p InsertParams, prefer PreferOptions) (string, error) {
	rows := normalizeInsertRows(p.Values)
	columns := insertColumnList(rows, p.Columns)
	if len(columns) == 0 {
		return "", ErrNoInsertValues
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(b.useTable(table))
	sb.WriteString(" (")
	sb.WriteString(quoteIdentListTight(columns))
	sb.WriteString(") VALUES ")

	rowExprs := make([]string, 0, len(rows))
	for _, row := range rows {
		rowExprs = append(rowExprs, emitInsertRow(b, columns, row, prefer.Missing))
	}
	sb.WriteString(strings.Join(rowExprs, ", "))

	if p.OnConflict != nil {
		clause, err := emitOnConflict(b, *p.OnConflict, columns)
		if err != nil {
			return "", err
		}
		sb.WriteString(clause)
	}

	sb.WriteString(emitReturning(p.Returning, prefer))

	return sb.String(), nil
}

// normalizeInsertRows flattens InsertValues (single-row or bulk) into a
// uniform row slice so the rest of the generator never branches on Kind.
func normalizeInsertRows(v InsertValues) []map[string]any {
	if v.Kind == ValuesRowBulk {
		return v.Bulk
	}
	return []map[string]any{v.Single}
}

// insertColumnList picks the effective column set for an INSERT: the
// `columns=` restriction if present, otherwise the sorted union of keys
// across every row (spec.md §3 invariant 7). Sorting makes the emitted
// column order — and therefore the whole statement — independent of
// Go's randomized map iteration and of which row happened to introduce
// a given key first.
func insertColumnList(rows []map[string]any, restrict []string) []string {
	if len(restrict) > 0 {
		cols := make([]string, len(restrict))
		copy(cols, restrict)
		sort.Strings(cols)
		return cols
	}
	seen := make(map[string]bool)
	for _, row := range rows {
		for k := range row {
			seen[k] = true
		}
	}
	cols := make([]string, 0, len(seen))
	for k := range seen {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	if len(rows) > 1 {
		log.Debug().Int("rows", len(rows)).Strs("columns", cols).Msg("bulk insert column union")
	}
	return cols
}

// emitInsertRow renders one VALUES tuple, substituting DEFAULT or NULL
// (per Prefer.missing) for any column absent from this particular row —
// the case a bulk insert's per-row column union makes routine.
func emitInsertRow(b *queryBuilder, columns []string, row map[string]any, missing PreferMissing) string {
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		v, ok := row[col]
		if !ok {
			if missing == PreferMissingDefault {
				parts = append(parts, "DEFAULT")
			} else {
				parts = append(parts, "NULL")
			}
			continue
		}
		parts = append(parts, b.placeholder(v))
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// emitOnConflict renders the state machine described in spec.md §4.4:
// None -> Targeted(cols) -> Actioned(DoNothing|DoUpdate[, where]). A
// DoUpdate with no explicit UpdateColumns re-asserts every insert column
// via EXCLUDED, including the conflict columns themselves (spec.md §8
// scenario 4).
func emitOnConflict(b *queryBuilder, oc OnConflict, insertColumns []string) (string, error) {
	if len(oc.Columns) == 0 {
		return "", InvalidOnConflictErr("on_conflict must name at least one column")
	}

	var sb strings.Builder
	sb.WriteString(" ON CONFLICT (")
	sb.WriteString(quoteIdentListTight(oc.Columns))
	sb.WriteString(")")

	switch oc.Action {
	case ActionDoNothing:
		sb.WriteString(" DO NOTHING")
	case ActionDoUpdate:
		updateColumns := oc.UpdateColumns
		if len(updateColumns) == 0 {
			updateColumns = insertColumns
		}
		assigns := make([]string, 0, len(updateColumns))
		for _, c := range updateColumns {
			assigns = append(assigns, quoteIdent(c)+"=EXCLUDED."+quoteIdent(c))
		}
		sb.WriteString(" DO UPDATE SET ")
		sb.WriteString(strings.Join(assigns, ", "))

		if len(oc.WhereClause) > 0 {
			where, err := emitFilters(b, oc.WhereClause)
			if err != nil {
				return "", err
			}
			sb.WriteString(" WHERE ")
			sb.WriteString(where)
		}
	}

	return sb.String(), nil
}

// quoteIdentListTight double-quotes and joins cols with a bare comma, the
// tight-packed form spec.md §8's INSERT/ON CONFLICT scenarios use (as
// opposed to the comma-space form SELECT projections and SET clauses use).
func quoteIdentListTight(cols []string) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = quoteIdent(c)
	}
	return strings.Join(parts, ",")
}
