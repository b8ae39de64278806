package postgrest

import "testing"

func TestValidateUpdateRequiresFilters(t *testing.T) {
	p := UpdateParams{SetValues: map[string]any{"a": 1}}
	if err := validateUpdate(p); err != ErrUnsafeUpdate {
		t.Errorf("got %v, want ErrUnsafeUpdate", err)
	}
}

func TestValidateUpdateRequiresSetValues(t *testing.T) {
	f := Filter{Field: Field{Name: "id"}, Op: OpEq}
	p := UpdateParams{Filters: []LogicNode{{Kind: NodeLeaf, Leaf: &f}}}
	if err := validateUpdate(p); err != ErrNoUpdateSet {
		t.Errorf("got %v, want ErrNoUpdateSet", err)
	}
}

func TestValidateUpdateLimitRequiresOrder(t *testing.T) {
	f := Filter{Field: Field{Name: "id"}, Op: OpEq}
	limit := uint64(5)
	p := UpdateParams{
		SetValues: map[string]any{"a": 1},
		Filters:   []LogicNode{{Kind: NodeLeaf, Leaf: &f}},
		Limit:     &limit,
	}
	if err := validateUpdate(p); err != ErrLimitWithoutOrder {
		t.Errorf("got %v, want ErrLimitWithoutOrder", err)
	}
}

func TestValidateDeleteRequiresFilters(t *testing.T) {
	if err := validateDelete(DeleteParams{}); err != ErrUnsafeDelete {
		t.Errorf("got %v, want ErrUnsafeDelete", err)
	}
}

func TestValidateInsertRequiresRows(t *testing.T) {
	if err := validateInsert(InsertParams{Values: InsertValues{Kind: ValuesRowBulk}}); err != ErrNoInsertValues {
		t.Errorf("got %v, want ErrNoInsertValues", err)
	}
}

func TestValidateInsertRequiresOnConflictColumns(t *testing.T) {
	p := InsertParams{
		Values:     InsertValues{Kind: ValuesRowSingle, Single: map[string]any{"a": 1}},
		OnConflict: &OnConflict{},
	}
	if err := validateInsert(p); err == nil {
		t.Error("expected InvalidOnConflict error")
	}
}
