package postgrest

// validateUpdate enforces that an UPDATE never runs unfiltered, and that
// a LIMIT on a mutation is always paired with an ORDER (otherwise "the
// first N rows" is undefined). Grounded on the teacher's inline
// ErrMissingWhereClause guard on Delete (daos/queries.go), generalized
// into a dedicated stage and extended to Update and to the limit/order
// pairing rule.
func validateUpdate(p UpdateParams) error {
	if len(p.SetValues) == 0 {
		return ErrNoUpdateSet
	}
	if len(p.Filters) == 0 {
		return ErrUnsafeUpdate
	}
	if p.Limit != nil && len(p.Order) == 0 {
		return ErrLimitWithoutOrder
	}
	return nil
}

// validateDelete enforces the same unfiltered-mutation and limit/order
// rules as validateUpdate, for DELETE.
func validateDelete(p DeleteParams) error {
	if len(p.Filters) == 0 {
		return ErrUnsafeDelete
	}
	if p.Limit != nil && len(p.Order) == 0 {
		return ErrLimitWithoutOrder
	}
	return nil
}

// validateInsert enforces that an insert carries at least one row, and
// that an on_conflict clause (if present) names at least one column.
func validateInsert(p InsertParams) error {
	switch p.Values.Kind {
	case ValuesRowSingle:
		if len(p.Values.Single) == 0 {
			return ErrNoInsertValues
		}
	case ValuesRowBulk:
		if len(p.Values.Bulk) == 0 {
			return ErrNoInsertValues
		}
		for _, row := range p.Values.Bulk {
			if len(row) == 0 {
				return ErrNoInsertValues
			}
		}
	}
	if p.OnConflict != nil && len(p.OnConflict.Columns) == 0 {
		return InvalidOnConflictErr("on_conflict must name at least one column")
	}
	return nil
}

// validateSelect performs no checks and always returns nil: unlike the
// mutation verbs, an unordered LIMIT on a read is permitted (PostgREST
// itself allows it — determinism of "which rows" simply isn't
// guaranteed, which is the read-path's prerogative, not an error).
func validateSelect(p SelectParams) error {
	return nil
}
