package postgrest

import "encoding/json"

// decodeInsertBody decodes a POST/PUT body into InsertValues: a single
// JSON object is a single-row insert, a JSON array of objects is a bulk
// insert. Grounded on the teacher's Insert (daos/queries.go), which
// decodes the body with json.NewDecoder(...).Decode into a
// map[string]any; generalized here to also accept the array form.
func decodeInsertBody(body []byte) (InsertValues, error) {
	if len(body) == 0 {
		return InsertValues{}, InvalidInsertBodyErr("body must not be empty")
	}

	trimmed := firstNonSpace(body)
	switch trimmed {
	case '[':
		var rows []map[string]any
		if err := json.Unmarshal(body, &rows); err != nil {
			return InsertValues{}, InvalidInsertBodyErr(err.Error())
		}
		if len(rows) == 0 {
			return InsertValues{}, ErrNoInsertValues
		}
		return InsertValues{Kind: ValuesRowBulk, Bulk: rows}, nil
	case '{':
		var row map[string]any
		if err := json.Unmarshal(body, &row); err != nil {
			return InsertValues{}, InvalidInsertBodyErr(err.Error())
		}
		if len(row) == 0 {
			return InsertValues{}, ErrNoInsertValues
		}
		return InsertValues{Kind: ValuesRowSingle, Single: row}, nil
	default:
		return InsertValues{}, InvalidInsertBodyErr("body must be a JSON object or array of objects")
	}
}

// decodeUpdateBody decodes a PATCH body into the column/value map to set.
// Grounded on the teacher's Update (daos/queries.go).
func decodeUpdateBody(body []byte) (map[string]any, error) {
	if len(body) == 0 {
		return nil, ErrEmptyUpdateBody
	}
	var set map[string]any
	if err := json.Unmarshal(body, &set); err != nil {
		return nil, InvalidUpdateBodyErr(err.Error())
	}
	if len(set) == 0 {
		return nil, ErrEmptyUpdateBody
	}
	return set, nil
}

// decodeRpcArgs decodes a `POST rpc/<fn>` body into named arguments.
// Grounded on the teacher's json.NewDecoder body-decoding pattern; an
// absent body means a zero-argument RPC call.
func decodeRpcArgs(body []byte) (map[string]any, error) {
	if len(body) == 0 {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal(body, &args); err != nil {
		return nil, InvalidRpcArgsErr(err.Error())
	}
	return args, nil
}

// firstNonSpace returns the first non-whitespace byte of b, or 0 if b is
// all whitespace.
func firstNonSpace(b []byte) byte {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return c
		}
	}
	return 0
}
