package postgrest

import "testing"

func TestRouteMethodAll(t *testing.T) {
	cases := map[string]Method{
		"GET": MethodGet, "get": MethodGet,
		"POST": MethodPost, "PUT": MethodPut,
		"PATCH": MethodPatch, "DELETE": MethodDelete,
	}
	for raw, want := range cases {
		got, err := routeMethod(raw)
		if err != nil || got != want {
			t.Errorf("routeMethod(%q) = (%q, %v), want %q", raw, got, err, want)
		}
	}
}

func TestRouteMethodUnsupported(t *testing.T) {
	if _, err := routeMethod("HEAD"); err == nil {
		t.Error("expected UnsupportedMethod error")
	}
}

func TestParsePathPlainTable(t *testing.T) {
	table, isRpc, err := parsePath("/users", "public")
	if err != nil {
		t.Fatal(err)
	}
	if isRpc || table.Schema != "public" || table.Name != "users" {
		t.Errorf("unexpected: %+v isRpc=%v", table, isRpc)
	}
}

func TestParsePathDottedSchema(t *testing.T) {
	table, _, err := parsePath("/auth.users", "public")
	if err != nil {
		t.Fatal(err)
	}
	if table.Schema != "auth" || table.Name != "users" {
		t.Errorf("unexpected: %+v", table)
	}
}

func TestParsePathRpc(t *testing.T) {
	table, isRpc, err := parsePath("/rpc/sum", "public")
	if err != nil {
		t.Fatal(err)
	}
	if !isRpc || table.Name != "sum" {
		t.Errorf("unexpected: %+v isRpc=%v", table, isRpc)
	}
}

func TestParsePathRpcDottedSchema(t *testing.T) {
	table, isRpc, err := parsePath("/rpc/auth.check", "public")
	if err != nil {
		t.Fatal(err)
	}
	if !isRpc || table.Schema != "auth" || table.Name != "check" {
		t.Errorf("unexpected: %+v", table)
	}
}

func TestParsePathRejectsEmpty(t *testing.T) {
	if _, _, err := parsePath("/", "public"); err == nil {
		t.Error("expected InvalidTableName error")
	}
}

func TestParsePathRejectsExtraSegments(t *testing.T) {
	if _, _, err := parsePath("/users/extra", "public"); err == nil {
		t.Error("expected InvalidTableName error for extra path segment")
	}
}

func TestSynthesizePutOnConflictFromEqFilters(t *testing.T) {
	email := Filter{Field: Field{Name: "email"}, Op: OpEq}
	filters := []LogicNode{{Kind: NodeLeaf, Leaf: &email}}
	oc, err := synthesizePutOnConflict(filters)
	if err != nil {
		t.Fatal(err)
	}
	if oc == nil || len(oc.Columns) != 1 || oc.Columns[0] != "email" || oc.Action != ActionDoUpdate {
		t.Errorf("unexpected: %+v", oc)
	}
	if len(oc.UpdateColumns) != 0 {
		t.Errorf("expected empty UpdateColumns so the generator falls back to all insert columns, got %v", oc.UpdateColumns)
	}
}

func TestSynthesizePutOnConflictNoEqFiltersIsPlainInsert(t *testing.T) {
	neq := Filter{Field: Field{Name: "email"}, Op: OpNeq}
	filters := []LogicNode{{Kind: NodeLeaf, Leaf: &neq}}
	oc, err := synthesizePutOnConflict(filters)
	if err != nil {
		t.Fatal(err)
	}
	if oc != nil {
		t.Errorf("expected nil OnConflict (plain insert), got %+v", oc)
	}
}
