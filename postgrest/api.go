package postgrest

import (
	"net/url"
	"sort"
)

// Parse is the Router+Parser stage: it turns a raw Request into a
// validated Operation, performing no SQL emission. Grounded on the
// teacher's per-method dispatch in api/database's request handler,
// generalized from the teacher's fixed SQLite-table-only routing to the
// schema-qualified / rpc-aware routing spec.md §4.1 describes.
func Parse(req Request) (Operation, error) {
	method, err := routeMethod(req.Method)
	if err != nil {
		return Operation{}, err
	}

	defaultSchema := resolveSchema(method, req.Headers)
	table, isRpc, err := parsePath(req.Path, defaultSchema)
	if err != nil {
		return Operation{}, err
	}

	values, err := parseQueryString(req.QueryString)
	if err != nil {
		return Operation{}, err
	}

	prefer := PreferOptions{}
	if raw, ok := req.Headers.Get(HeaderPrefer); ok {
		prefer = parsePreferHeader(raw)
	}

	if isRpc {
		op, err := parseRpcOperation(method, table, values, req.Body, prefer)
		if err != nil {
			return Operation{}, err
		}
		return op, nil
	}

	switch method {
	case MethodGet:
		return parseSelectOperation(table, values, prefer)
	case MethodPost:
		return parseInsertOperation(table, values, req.Body, prefer, false)
	case MethodPut:
		return parseInsertOperation(table, values, req.Body, prefer, true)
	case MethodPatch:
		return parseUpdateOperation(table, values, req.Body, prefer)
	case MethodDelete:
		return parseDeleteOperation(table, values, prefer)
	default:
		return Operation{}, UnsupportedMethodErr(string(method))
	}
}

func parseSelectOperation(table ResolvedTable, values url.Values, prefer PreferOptions) (Operation, error) {
	var selectItems []SelectItem
	if raw, ok := lastValue(values, ParamSelect); ok {
		items, err := parseSelectList(raw)
		if err != nil {
			return Operation{}, err
		}
		selectItems = items
	}

	order, err := parseOrderFromValues(values)
	if err != nil {
		return Operation{}, err
	}

	limit, offset, err := parseLimitOffsetFromValues(values)
	if err != nil {
		return Operation{}, err
	}

	filters, err := buildFilterNodes(values, 0)
	if err != nil {
		return Operation{}, err
	}

	params := SelectParams{Select: selectItems, Filters: filters, Order: order, Limit: limit, Offset: offset}
	if err := validateSelect(params); err != nil {
		return Operation{}, err
	}

	return Operation{Kind: KindSelect, Table: table, Select: &params, Prefer: prefer}, nil
}

func parseInsertOperation(table ResolvedTable, values url.Values, body []byte, prefer PreferOptions, isPut bool) (Operation, error) {
	insertValues, err := decodeInsertBody(body)
	if err != nil {
		return Operation{}, err
	}

	var columns []string
	if raw, ok := lastValue(values, ParamColumns); ok {
		columns, err = parseColumnsOrConflict(raw)
		if err != nil {
			return Operation{}, err
		}
	}

	var onConflict *OnConflict
	if isPut {
		if insertValues.Kind != ValuesRowSingle {
			return Operation{}, InvalidInsertBodyErr("PUT requires a single JSON object body")
		}
		if raw, ok := lastValue(values, ParamOnConflict); ok {
			cols, err := parseColumnsOrConflict(raw)
			if err != nil {
				return Operation{}, err
			}
			onConflict = &OnConflict{Columns: cols, Action: ActionDoUpdate}
		} else {
			filters, err := buildFilterNodes(values, 0)
			if err != nil {
				return Operation{}, err
			}
			oc, err := synthesizePutOnConflict(filters)
			if err != nil {
				return Operation{}, err
			}
			onConflict = oc
		}
	} else if raw, ok := lastValue(values, ParamOnConflict); ok {
		cols, err := parseColumnsOrConflict(raw)
		if err != nil {
			return Operation{}, err
		}
		action := ActionDoNothing
		if prefer.Resolution == PreferResolutionMerge {
			action = ActionDoUpdate
		}
		onConflict = &OnConflict{Columns: cols, Action: action}
	}

	returning, err := parseReturningFromValues(values, prefer)
	if err != nil {
		return Operation{}, err
	}

	params := InsertParams{Values: insertValues, Columns: columns, OnConflict: onConflict, Returning: returning}
	if err := validateInsert(params); err != nil {
		return Operation{}, err
	}

	return Operation{Kind: KindInsert, Table: table, Insert: &params, Prefer: prefer}, nil
}

func parseUpdateOperation(table ResolvedTable, values url.Values, body []byte, prefer PreferOptions) (Operation, error) {
	setValues, err := decodeUpdateBody(body)
	if err != nil {
		return Operation{}, err
	}

	order, err := parseOrderFromValues(values)
	if err != nil {
		return Operation{}, err
	}
	limit, _, err := parseLimitOffsetFromValues(values)
	if err != nil {
		return Operation{}, err
	}
	filters, err := buildFilterNodes(values, 0)
	if err != nil {
		return Operation{}, err
	}
	returning, err := parseReturningFromValues(values, prefer)
	if err != nil {
		return Operation{}, err
	}

	params := UpdateParams{SetValues: setValues, Filters: filters, Order: order, Limit: limit, Returning: returning}
	if err := validateUpdate(params); err != nil {
		return Operation{}, err
	}

	return Operation{Kind: KindUpdate, Table: table, Update: &params, Prefer: prefer}, nil
}

func parseDeleteOperation(table ResolvedTable, values url.Values, prefer PreferOptions) (Operation, error) {
	order, err := parseOrderFromValues(values)
	if err != nil {
		return Operation{}, err
	}
	limit, _, err := parseLimitOffsetFromValues(values)
	if err != nil {
		return Operation{}, err
	}
	filters, err := buildFilterNodes(values, 0)
	if err != nil {
		return Operation{}, err
	}
	returning, err := parseReturningFromValues(values, prefer)
	if err != nil {
		return Operation{}, err
	}

	params := DeleteParams{Filters: filters, Order: order, Limit: limit, Returning: returning}
	if err := validateDelete(params); err != nil {
		return Operation{}, err
	}

	return Operation{Kind: KindDelete, Table: table, Delete: &params, Prefer: prefer}, nil
}

func parseRpcOperation(method Method, fn ResolvedTable, values url.Values, body []byte, prefer PreferOptions) (Operation, error) {
	var args map[string]any
	var err error

	if method == MethodPost {
		args, err = decodeRpcArgs(body)
		if err != nil {
			return Operation{}, err
		}
	} else {
		args = map[string]any{}
		for key, vals := range values {
			if isReservedParam(key) || len(vals) == 0 {
				continue
			}
			args[key] = vals[len(vals)-1]
		}
	}

	var filters []LogicNode
	if method == MethodPost {
		filters, err = buildFilterNodes(values, 0)
		if err != nil {
			return Operation{}, err
		}
	}

	order, err := parseOrderFromValues(values)
	if err != nil {
		return Operation{}, err
	}
	limit, offset, err := parseLimitOffsetFromValues(values)
	if err != nil {
		return Operation{}, err
	}
	returning, err := parseReturningFromValues(values, prefer)
	if err != nil {
		return Operation{}, err
	}

	params := RpcParams{Function: fn, Args: args, Filters: filters, Order: order, Limit: limit, Offset: offset, Returning: returning}
	return Operation{Kind: KindRpc, Rpc: &params, Prefer: prefer}, nil
}

func parseOrderFromValues(values url.Values) ([]OrderTerm, error) {
	raw, ok := lastValue(values, ParamOrder)
	if !ok {
		return nil, nil
	}
	return parseOrderList(raw)
}

func parseLimitOffsetFromValues(values url.Values) (limit, offset *uint64, err error) {
	if raw, ok := lastValue(values, ParamLimit); ok {
		limit, err = parseLimitOffset(raw, true)
		if err != nil {
			return nil, nil, err
		}
	}
	if raw, ok := lastValue(values, ParamOffset); ok {
		offset, err = parseLimitOffset(raw, false)
		if err != nil {
			return nil, nil, err
		}
	}
	return limit, offset, nil
}

func parseReturningFromValues(values url.Values, prefer PreferOptions) ([]SelectItem, error) {
	if raw, ok := lastValue(values, ParamReturning); ok {
		return parseReturning(raw)
	}
	if prefer.Return == PreferReturnRepresentation {
		return []SelectItem{{Kind: ItemStar}}, nil
	}
	return nil, nil
}

func sortedKeys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
