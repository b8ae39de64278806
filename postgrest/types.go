// Package postgrest translates PostgREST-style HTTP requests into a
// parameterized PostgreSQL statement. It performs no I/O: every exported
// type here is an immutable value produced by the parser and consumed by
// the generator, and every exported function is a pure transformation.
package postgrest

import "strings"

// Method is one of the five HTTP methods the router understands.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodPatch  Method = "PATCH"
	MethodDelete Method = "DELETE"
)

// OperationKind tags the variant carried by an Operation.
type OperationKind int

const (
	KindSelect OperationKind = iota
	KindInsert
	KindUpdate
	KindDelete
	KindRpc
)

func (k OperationKind) String() string {
	switch k {
	case KindSelect:
		return "select"
	case KindInsert:
		return "insert"
	case KindUpdate:
		return "update"
	case KindDelete:
		return "delete"
	case KindRpc:
		return "rpc"
	default:
		return "unknown"
	}
}

// ResolvedTable is a schema-qualified table or function name. Schema
// resolution priority is: dotted prefix in the path, then the
// method-appropriate profile header, then config.Cfg.DefaultSchema.
type ResolvedTable struct {
	Schema string
	Name   string
}

// PathSegmentKind tags a PathSegment as an object-key step or an
// array-index step.
type PathSegmentKind int

const (
	PathObject PathSegmentKind = iota
	PathIndex
)

// PathSegment is one step of a JSON-path access chain, e.g. the `key` in
// `col->key` or the `2` in `col->2`.
type PathSegment struct {
	Kind        PathSegmentKind
	Key         string // set when Kind == PathObject
	Index       int    // set when Kind == PathIndex
	ReturnsText bool   // true for `->>`, false for `->`
}

// Field is a column reference with an optional JSON-path chain and an
// optional trailing `::type` cast.
type Field struct {
	Name     string
	JSONPath []PathSegment
	Cast     string // empty means no cast
}

// FilterOp enumerates every operator token recognized by the filter-value
// grammar (spec.md §6).
type FilterOp string

const (
	OpEq    FilterOp = "eq"
	OpNeq   FilterOp = "neq"
	OpGt    FilterOp = "gt"
	OpGte   FilterOp = "gte"
	OpLt    FilterOp = "lt"
	OpLte   FilterOp = "lte"
	OpLike  FilterOp = "like"
	OpILike FilterOp = "ilike"
	OpMatch FilterOp = "match"
	OpIMatch FilterOp = "imatch"
	OpIn    FilterOp = "in"
	OpIs    FilterOp = "is"
	OpFts   FilterOp = "fts"
	OpPlfts FilterOp = "plfts"
	OpPhfts FilterOp = "phfts"
	OpWfts  FilterOp = "wfts"
	OpCs    FilterOp = "cs"
	OpCd    FilterOp = "cd"
	OpOv    FilterOp = "ov"
	OpSl    FilterOp = "sl"
	OpSr    FilterOp = "sr"
	OpNxl   FilterOp = "nxl"
	OpNxr   FilterOp = "nxr"
	OpAdj   FilterOp = "adj"
)

// Quantifier distinguishes `op(any).` from `op(all).` from an unquantified
// filter.
type Quantifier int

const (
	QuantifierNone Quantifier = iota
	QuantifierAny
	QuantifierAll
)

// FilterValueKind tags a FilterValue as a bare scalar or a comma-separated
// list (covers `in`, array literals, and quantified values alike — all of
// them parse to a list of raw strings). Range literals stay scalars.
type FilterValueKind int

const (
	ValueSingle FilterValueKind = iota
	ValueList
)

// FilterValue is the right-hand side of a filter. Single holds the raw,
// still-unparsed-to-SQL-type string for scalar operators, `is` keywords,
// FTS queries, and whole range literals; List holds the comma-separated
// elements for `in`, array literals, and quantified values.
type FilterValue struct {
	Kind   FilterValueKind
	Single string
	List   []string
}

// Filter is one predicate: a field, an operator, a value, and the
// optional modifiers (quantifier, FTS language, negation) the grammar
// allows.
type Filter struct {
	Field      Field
	Op         FilterOp
	Value      FilterValue
	Quantifier Quantifier
	Language   string // set only for fts/plfts/phfts/wfts
	Negated    bool
}

// LogicNodeKind tags a LogicNode as a leaf predicate or a boolean
// combinator.
type LogicNodeKind int

const (
	NodeLeaf LogicNodeKind = iota
	NodeAnd
	NodeOr
	NodeNot
)

// LogicNode is the recursive boolean-tree representation of a WHERE
// clause. The top-level filter list passed to the generator is treated
// as an implicit And of all its LogicNodes.
type LogicNode struct {
	Kind     LogicNodeKind
	Leaf     *Filter     // set when Kind == NodeLeaf
	Children []LogicNode // set when Kind == NodeAnd or NodeOr
	Child    *LogicNode  // set when Kind == NodeNot
}

// SelectItemKind tags a SelectItem as a plain column, a nested relation,
// a column spread, or the `*` wildcard.
type SelectItemKind int

const (
	ItemField SelectItemKind = iota
	ItemRelation
	ItemSpread
	ItemStar
)

// SelectItem is one element of a `select=` list. Relation and Spread
// items carry nested items; the generator's contract for a Relation item
// without an attached schema resolver is to emit the bare relation name
// and continue (spec.md §9) — JOIN materialization is an external
// collaborator's job.
type SelectItem struct {
	Kind     SelectItemKind
	Name     string
	Alias    string
	Inner    []SelectItem
	JSONPath []PathSegment
	Cast     string
}

// Direction is the ORDER BY sort direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// NullsPosition is the ORDER BY NULLS placement.
type NullsPosition int

const (
	NullsDefault NullsPosition = iota
	NullsFirst
	NullsLast
)

// OrderTerm is one comma-separated element of an `order=` list.
type OrderTerm struct {
	Field     Field
	Direction Direction
	Nulls     NullsPosition
}

// SelectParams is the parsed, validated form of a GET request.
type SelectParams struct {
	Select  []SelectItem // nil means unspecified -> "*"
	Filters []LogicNode
	Order   []OrderTerm
	Limit   *uint64
	Offset  *uint64
}

// InsertValuesKind tags InsertValues as a single-row or bulk (array)
// insert.
type InsertValuesKind int

const (
	ValuesRowSingle InsertValuesKind = iota
	ValuesRowBulk
)

// InsertValues is the decoded JSON body of an Insert.
type InsertValues struct {
	Kind   InsertValuesKind
	Single map[string]any
	Bulk   []map[string]any
}

// OnConflictAction is the conflict-resolution action: DO NOTHING or DO
// UPDATE.
type OnConflictAction int

const (
	ActionDoNothing OnConflictAction = iota
	ActionDoUpdate
)

// OnConflict is the parsed `on_conflict=` parameter plus the action and
// (for DO UPDATE) the columns to set and optional WHERE guard. The
// router can synthesize one for PUT requests; see router.go.
type OnConflict struct {
	Columns       []string
	Action        OnConflictAction
	UpdateColumns []string // empty means "all insert columns"
	WhereClause   []LogicNode
}

// InsertParams is the parsed, validated form of a POST (insert) or PUT
// (insert with upsert) request.
type InsertParams struct {
	Values     InsertValues
	Columns    []string // optional restriction via `columns=`
	OnConflict *OnConflict
	Returning  []SelectItem
}

// UpdateParams is the parsed, validated form of a PATCH request.
type UpdateParams struct {
	SetValues map[string]any
	Filters   []LogicNode
	Order     []OrderTerm
	Limit     *uint64
	Returning []SelectItem
}

// DeleteParams is the parsed, validated form of a DELETE request.
type DeleteParams struct {
	Filters   []LogicNode
	Order     []OrderTerm
	Limit     *uint64
	Returning []SelectItem
}

// RpcParams is the parsed, validated form of a `POST rpc/<fn>` request.
type RpcParams struct {
	Function  ResolvedTable
	Args      map[string]any
	Filters   []LogicNode
	Order     []OrderTerm
	Limit     *uint64
	Offset    *uint64
	Returning []SelectItem
}

// PreferReturn controls whether the generator emits RETURNING.
type PreferReturn string

const (
	PreferReturnRepresentation PreferReturn = "representation"
	PreferReturnMinimal        PreferReturn = "minimal"
	PreferReturnHeadersOnly    PreferReturn = "headers-only"
)

// PreferResolution maps to ON CONFLICT DO UPDATE / DO NOTHING.
type PreferResolution string

const (
	PreferResolutionMerge  PreferResolution = "merge-duplicates"
	PreferResolutionIgnore PreferResolution = "ignore-duplicates"
)

// PreferCount is structural only; it never alters the primary SQL.
type PreferCount string

const (
	PreferCountExact     PreferCount = "exact"
	PreferCountPlanned   PreferCount = "planned"
	PreferCountEstimated PreferCount = "estimated"
)

// PreferMissing controls column-default vs null for absent bulk-insert
// columns.
type PreferMissing string

const (
	PreferMissingDefault PreferMissing = "default"
	PreferMissingNull    PreferMissing = "null"
)

// PreferPlurality is structural only; it never alters the primary SQL.
type PreferPlurality string

const (
	PreferPluralitySingular PreferPlurality = "singular"
	PreferPluralityMultiple PreferPlurality = "multiple"
)

// PreferOptions holds the parsed `Prefer` header. Zero values mean
// "unset"; the generator falls back to operation-appropriate defaults.
type PreferOptions struct {
	Return     PreferReturn
	Resolution PreferResolution
	Count      PreferCount
	Missing    PreferMissing
	Plurality  PreferPlurality
}

// Operation is the tagged union the parser produces and the generator
// consumes. Exactly one of Select/Insert/Update/Delete/Rpc is non-nil,
// matching Kind.
type Operation struct {
	Kind   OperationKind
	Table  ResolvedTable // unused when Kind == KindRpc (see Rpc.Function)
	Select *SelectParams
	Insert *InsertParams
	Update *UpdateParams
	Delete *DeleteParams
	Rpc    *RpcParams
	Prefer PreferOptions
}

// Value is a JSON-compatible scalar or list. The core never emits a
// Value inline into QueryResult.Query; every Value is referenced only
// through its positional placeholder.
type Value = any

// QueryResult is the terminal output of the pipeline.
type QueryResult struct {
	Query  string
	Params []Value
	Tables []string
}

// Headers is a case-insensitive single-valued header map, the shape
// needed by the grammar this core consumes (Prefer, Accept-Profile,
// Content-Profile). Multi-value headers are out of scope: PostgREST
// itself only ever reads the first value of each of these.
type Headers map[string]string

// Get looks up a header case-insensitively.
func (h Headers) Get(name string) (string, bool) {
	if h == nil {
		return "", false
	}
	if v, ok := h[name]; ok {
		return v, true
	}
	for k, v := range h {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// Request bundles every input the pipeline needs: method, resource path,
// raw query string, optional JSON body, and optional header map.
type Request struct {
	Method      string
	Path        string
	QueryString string
	Body        []byte
	Headers     Headers
}
