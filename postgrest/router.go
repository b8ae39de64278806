package postgrest

import "strings"

// routeMethod maps an HTTP method string to the Method enum, rejecting
// anything the pipeline doesn't route. Grounded on the teacher's method
// switch in api/database's request handler.
func routeMethod(method string) (Method, error) {
	switch strings.ToUpper(method) {
	case string(MethodGet):
		return MethodGet, nil
	case string(MethodPost):
		return MethodPost, nil
	case string(MethodPut):
		return MethodPut, nil
	case string(MethodPatch):
		return MethodPatch, nil
	case string(MethodDelete):
		return MethodDelete, nil
	default:
		return "", UnsupportedMethodErr(method)
	}
}

// parsePath resolves a request path into a table/function name, the
// schema it belongs to (a dotted prefix wins over the profile header),
// and whether it names an RPC call (`rpc/<fn>`). Grounded on the
// teacher's path-segment splitting in api/database's router, extended
// with spec.md §4.1's schema-qualification and rpc/ detection.
func parsePath(path string, defaultSchema string) (table ResolvedTable, isRpc bool, err error) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return ResolvedTable{}, false, InvalidTableNameErr(path)
	}
	segments := strings.Split(trimmed, "/")

	if segments[0] == "rpc" {
		if len(segments) != 2 || segments[1] == "" {
			return ResolvedTable{}, false, InvalidTableNameErr(path)
		}
		schema, name, err := splitSchemaQualified(segments[1], defaultSchema)
		if err != nil {
			return ResolvedTable{}, false, err
		}
		return ResolvedTable{Schema: schema, Name: name}, true, nil
	}

	if len(segments) != 1 {
		return ResolvedTable{}, false, InvalidTableNameErr(path)
	}
	schema, name, err := splitSchemaQualified(segments[0], defaultSchema)
	if err != nil {
		return ResolvedTable{}, false, err
	}
	return ResolvedTable{Schema: schema, Name: name}, false, nil
}

// splitSchemaQualified splits "schema.table" into its parts, or returns
// (defaultSchema, raw) if raw carries no dotted schema prefix.
func splitSchemaQualified(raw string, defaultSchema string) (schema string, name string, err error) {
	if idx := strings.IndexByte(raw, '.'); idx >= 0 {
		schema = raw[:idx]
		name = raw[idx+1:]
		if err := validateIdentifierSyntax(schema); err != nil {
			return "", "", InvalidSchemaErr(schema)
		}
	} else {
		schema = defaultSchema
		name = raw
	}
	if err := validateIdentifierSyntax(name); err != nil {
		return "", "", InvalidTableNameErr(raw)
	}
	return schema, name, nil
}

// synthesizePutOnConflict builds the ON CONFLICT clause a PUT request
// implies: PostgREST treats PUT as "upsert by the filters in the query
// string," so every top-level eq filter's column becomes a conflict
// target. UpdateColumns is left empty so the generator's "empty means
// all insert columns" default applies (spec.md §3's OnConflict data
// model) — every submitted column, including the conflict columns
// themselves, is re-asserted via EXCLUDED, matching spec.md §8 scenario
// 4. Grounded on the teacher's Upsert (daos/queries.go), the teacher's
// only existing on-conflict code path, generalized from the teacher's
// fixed primary-key column to "whatever eq() filters the request
// supplied." Per spec.md §4.1, a PUT with no eq() filters is a plain
// Insert, not an error: this returns (nil, nil) rather than failing.
func synthesizePutOnConflict(filters []LogicNode) (*OnConflict, error) {
	var conflictColumns []string
	for _, node := range filters {
		if node.Kind != NodeLeaf || node.Leaf == nil {
			continue
		}
		f := node.Leaf
		if f.Op == OpEq && !f.Negated && len(f.Field.JSONPath) == 0 {
			conflictColumns = append(conflictColumns, f.Field.Name)
		}
	}
	if len(conflictColumns) == 0 {
		log.Debug().Msg("PUT carries no eq filters, falling back to plain insert")
		return nil, nil
	}

	log.Debug().Strs("columns", conflictColumns).Msg("synthesized ON CONFLICT from PUT filters")
	return &OnConflict{
		Columns: conflictColumns,
		Action:  ActionDoUpdate,
	}, nil
}
