package postgrest

import "fmt"

// queryBuilder accumulates the positional parameters and referenced
// table names produced while a generator walks an Operation. It owns no
// SQL text itself — each generate_*.go function builds its own query
// string and calls back into the builder only for placeholder
// allocation and table bookkeeping. Grounded on the teacher's
// buildSelCurr/buildQuery pair (daos/build_query.go), which thread a
// single arg-counter and arg slice through the whole SQL-assembly walk;
// generalized here into a small struct so the five generate_*.go files
// share one counter instead of five separate ones.
type queryBuilder struct {
	params []Value
	tables []string
	seen   map[string]bool
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{params: make([]Value, 0), seen: make(map[string]bool)}
}

// placeholder appends v as the next bound parameter and returns its
// PostgreSQL positional placeholder, "$1", "$2", ....
func (b *queryBuilder) placeholder(v Value) string {
	b.params = append(b.params, v)
	return fmt.Sprintf("$%d", len(b.params))
}

// useTable records table as referenced, in first-seen order, and
// returns its quoted "schema"."name" form.
func (b *queryBuilder) useTable(table ResolvedTable) string {
	full := quoteTable(table)
	if !b.seen[full] {
		b.seen[full] = true
		b.tables = append(b.tables, full)
	}
	return full
}

func (b *queryBuilder) result(query string) QueryResult {
	return QueryResult{Query: query, Params: b.params, Tables: b.tables}
}

// quoteIdent double-quotes an identifier already validated by
// validateIdentifierSyntax, which rejects embedded quotes — so this
// never needs to escape anything, only wrap.
func quoteIdent(name string) string {
	return `"` + name + `"`
}

func quoteTable(table ResolvedTable) string {
	return quoteIdent(table.Schema) + "." + quoteIdent(table.Name)
}

// ToSQL is the Generator stage: it turns a validated Operation into a
// parameterized PostgreSQL statement, its positional parameters, and the
// list of tables/functions it references. Grounded on the teacher's
// per-verb build functions (daos/build_query.go, daos/queries.go),
// dispatched here through a flat switch rather than an interface method
// per variant, matching spec.md §9's "no dynamic dispatch" posture.
func ToSQL(op Operation) (QueryResult, error) {
	b := newQueryBuilder()

	var query string
	var err error

	switch op.Kind {
	case KindSelect:
		if op.Select == nil {
			return QueryResult{}, GenerationInvariantViolatedErr("select operation missing params")
		}
		query, err = generateSelect(b, op.Table, *op.Select)
	case KindInsert:
		if op.Insert == nil {
			return QueryResult{}, GenerationInvariantViolatedErr("insert operation missing params")
		}
		query, err = generateInsert(b, op.Table, *op.Insert, op.Prefer)
	case KindUpdate:
		if op.Update == nil {
			return QueryResult{}, GenerationInvariantViolatedErr("update operation missing params")
		}
		query, err = generateUpdate(b, op.Table, *op.Update, op.Prefer)
	case KindDelete:
		if op.Delete == nil {
			return QueryResult{}, GenerationInvariantViolatedErr("delete operation missing params")
		}
		query, err = generateDelete(b, op.Table, *op.Delete, op.Prefer)
	case KindRpc:
		if op.Rpc == nil {
			return QueryResult{}, GenerationInvariantViolatedErr("rpc operation missing params")
		}
		query, err = generateRpc(b, *op.Rpc, op.Prefer)
	default:
		return QueryResult{}, GenerationInvariantViolatedErr("unknown operation kind")
	}

	if err != nil {
		return QueryResult{}, err
	}
	return b.result(query), nil
}

// ParseAndGenerate fuses Parse and ToSQL, the convenience entry point for
// callers that don't need the intermediate Operation.
func ParseAndGenerate(req Request) (QueryResult, error) {
	op, err := Parse(req)
	if err != nil {
		return QueryResult{}, err
	}
	return ToSQL(op)
}
