package postgrest

// Reserved query-string keys. Anything not in this set is routed to the
// filter grammar.
const (
	ParamSelect     = "select"
	ParamOrder      = "order"
	ParamLimit      = "limit"
	ParamOffset     = "offset"
	ParamOnConflict = "on_conflict"
	ParamColumns    = "columns"
	ParamReturning  = "returning"
	ParamAnd        = "and"
	ParamOr         = "or"
	ParamNotAnd     = "not.and"
	ParamNotOr      = "not.or"
)

func isReservedParam(key string) bool {
	switch key {
	case ParamSelect, ParamOrder, ParamLimit, ParamOffset, ParamOnConflict,
		ParamColumns, ParamReturning, ParamAnd, ParamOr, ParamNotAnd, ParamNotOr:
		return true
	default:
		return false
	}
}

// Header names.
const (
	HeaderPrefer         = "Prefer"
	HeaderAcceptProfile  = "Accept-Profile"
	HeaderContentProfile = "Content-Profile"
)

// Prefer header option keys.
const (
	PreferKeyReturn     = "return"
	PreferKeyResolution = "resolution"
	PreferKeyCount      = "count"
	PreferKeyMissing    = "missing"
	PreferKeyPlurality  = "plurality"
)

// `is` keyword values.
const (
	IsNull    = "null"
	IsNotNull = "not_null"
	IsTrue    = "true"
	IsFalse   = "false"
	IsUnknown = "unknown"
)

// order=... direction/nulls tokens.
const (
	OrderAsc        = "asc"
	OrderDesc       = "desc"
	OrderNullsFirst = "nullsfirst"
	OrderNullsLast  = "nullslast"
)

// sqlOpEntry is an entry in the flat operator->SQL table driving §6's
// non-negated emission. Variant behavior is a table lookup, not dynamic
// dispatch, per spec.md §9.
type sqlOpEntry struct {
	sql       string // SQL infix/keyword
	negate    string // simple negated-form infix, "" means wrap in NOT(...)
	isRange   bool
	isArray   bool
	isFTS     bool
	isList    bool
	isKeyword bool
}

var sqlOps = map[FilterOp]sqlOpEntry{
	OpEq:     {sql: "=", negate: "<>"},
	OpNeq:    {sql: "<>", negate: "="},
	OpGt:     {sql: ">", negate: "<="},
	OpGte:    {sql: ">=", negate: "<"},
	OpLt:     {sql: "<", negate: ">="},
	OpLte:    {sql: "<=", negate: ">"},
	OpLike:   {sql: "LIKE"},
	OpILike:  {sql: "ILIKE"},
	OpMatch:  {sql: "~"},
	OpIMatch: {sql: "~*"},
	OpIn:     {sql: "= ANY", isList: true},
	OpIs:     {sql: "IS", isKeyword: true},
	OpFts:    {sql: "plainto_tsquery", isFTS: true},
	OpPlfts:  {sql: "plainto_tsquery", isFTS: true},
	OpPhfts:  {sql: "phraseto_tsquery", isFTS: true},
	OpWfts:   {sql: "websearch_to_tsquery", isFTS: true},
	OpCs:     {sql: "@>", isArray: true},
	OpCd:     {sql: "<@", isArray: true},
	OpOv:     {sql: "&&", isArray: true},
	OpSl:     {sql: "<<", isRange: true},
	OpSr:     {sql: ">>", isRange: true},
	OpNxl:    {sql: "&<", isRange: true},
	OpNxr:    {sql: "&>", isRange: true},
	OpAdj:    {sql: "-|-", isRange: true},
}
