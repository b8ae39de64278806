package postgrest

import "strings"

// parseSelectList parses a select= value into its top-level comma
// separated items, splitting only at depth 0 so a nested relation's own
// comma-separated inner list isn't cut. Grounded on the teacher's
// parseSelect (daos/query_helpers.go), generalized from the teacher's
// one-level relation embedding to arbitrarily nested relations, and from
// the teacher's "*"-only wildcard handling to aliases and casts.
func parseSelectList(raw string) ([]SelectItem, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts, err := splitTopLevelComma(raw)
	if err != nil {
		return nil, err
	}

	items := make([]SelectItem, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		item, err := parseSelectItem(part)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// splitTopLevelComma splits s on commas that aren't nested inside
// parentheses, so "a,b(c,d),e" yields ["a", "b(c,d)", "e"].
func splitTopLevelComma(s string) ([]string, error) {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, ErrUnclosedParenthesis
			}
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, ErrUnclosedParenthesis
	}
	out = append(out, s[start:])
	return out, nil
}

// parseSelectItem parses a single select item: "*", "col", "col::cast",
// "alias:col", "relation(inner,list)", "!relation(inner)" (the leading
// "!" is an inner-join hint the teacher's embedding resolver consumes;
// this package drops it and does not record it in the AST, since join
// materialization itself is out of scope), or
// "...spread(inner)".
func parseSelectItem(part string) (SelectItem, error) {
	spread := false
	if strings.HasPrefix(part, "...") {
		spread = true
		part = part[len("..."):]
	}

	if part == "*" {
		return SelectItem{Kind: ItemStar}, nil
	}

	alias := ""
	body := part
	if idx := strings.IndexByte(part, ':'); idx >= 0 && !strings.HasPrefix(part[idx:], "::") {
		alias = part[:idx]
		body = part[idx+1:]
		if err := validateIdentifierSyntax(alias); err != nil {
			return SelectItem{}, err
		}
	}

	body = strings.TrimPrefix(body, "!")

	if open := strings.IndexByte(body, '('); open >= 0 {
		if !strings.HasSuffix(body, ")") {
			return SelectItem{}, ErrUnclosedParenthesis
		}
		name := body[:open]
		if err := validateIdentifierSyntax(name); err != nil {
			return SelectItem{}, err
		}
		inner, err := parseSelectList(body[open+1 : len(body)-1])
		if err != nil {
			return SelectItem{}, err
		}
		kind := ItemRelation
		if spread {
			kind = ItemSpread
		}
		return SelectItem{Kind: kind, Name: name, Alias: alias, Inner: inner}, nil
	}

	field, err := parseField(body)
	if err != nil {
		return SelectItem{}, err
	}
	return SelectItem{
		Kind:     ItemField,
		Name:     field.Name,
		Alias:    alias,
		JSONPath: field.JSONPath,
		Cast:     field.Cast,
	}, nil
}
