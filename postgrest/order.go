package postgrest

import "strings"

// parseOrderList parses an order= value: a comma-separated list of
// "field[.asc|.desc][.nullsfirst|.nullslast]" terms. Grounded on the
// teacher's buildOrderBy (daos/query_helpers.go), generalized to accept
// json-path/cast fields via parseField instead of bare column names.
func parseOrderList(raw string) ([]OrderTerm, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := splitUnquoted(raw, ',')
	terms := make([]OrderTerm, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		term, err := parseOrderTerm(part)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, nil
}

func parseOrderTerm(part string) (OrderTerm, error) {
	segments := strings.Split(part, ".")
	fieldExpr := segments[0]
	rest := segments[1:]

	direction := Asc
	nulls := NullsDefault

	for _, tok := range rest {
		switch tok {
		case OrderAsc:
			direction = Asc
		case OrderDesc:
			direction = Desc
		case OrderNullsFirst:
			nulls = NullsFirst
		case OrderNullsLast:
			nulls = NullsLast
		default:
			return OrderTerm{}, InvalidIdentifierErr(part, "unrecognized order modifier: "+tok)
		}
	}

	field, err := parseField(fieldExpr)
	if err != nil {
		return OrderTerm{}, err
	}

	return OrderTerm{Field: field, Direction: direction, Nulls: nulls}, nil
}
