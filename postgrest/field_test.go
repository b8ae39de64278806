package postgrest

import "testing"

func TestParseFieldBare(t *testing.T) {
	f, err := parseField("age")
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "age" || len(f.JSONPath) != 0 || f.Cast != "" {
		t.Errorf("unexpected field: %+v", f)
	}
}

func TestParseFieldJSONPath(t *testing.T) {
	f, err := parseField("data->meta->>name")
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "data" {
		t.Errorf("base = %q, want data", f.Name)
	}
	if len(f.JSONPath) != 2 {
		t.Fatalf("expected 2 path segments, got %d", len(f.JSONPath))
	}
	if f.JSONPath[0].Key != "meta" || f.JSONPath[0].ReturnsText {
		t.Errorf("segment 0 = %+v", f.JSONPath[0])
	}
	if f.JSONPath[1].Key != "name" || !f.JSONPath[1].ReturnsText {
		t.Errorf("segment 1 = %+v", f.JSONPath[1])
	}
}

func TestParseFieldArrayIndex(t *testing.T) {
	f, err := parseField("tags->2")
	if err != nil {
		t.Fatal(err)
	}
	if len(f.JSONPath) != 1 || f.JSONPath[0].Kind != PathIndex || f.JSONPath[0].Index != 2 {
		t.Errorf("unexpected path: %+v", f.JSONPath)
	}
}

func TestParseFieldCast(t *testing.T) {
	f, err := parseField("age::int")
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "age" || f.Cast != "int" {
		t.Errorf("unexpected field: %+v", f)
	}
}

func TestParseFieldJSONPathWithCast(t *testing.T) {
	f, err := parseField("data->>name::text")
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "data" || f.Cast != "text" || len(f.JSONPath) != 1 {
		t.Errorf("unexpected field: %+v", f)
	}
}

func TestParseFieldRejectsEmptyCast(t *testing.T) {
	if _, err := parseField("age::"); err == nil {
		t.Error("expected error for empty cast")
	}
}

func TestParseFieldRejectsBadIdentifier(t *testing.T) {
	if _, err := parseField(`bad"name`); err == nil {
		t.Error("expected error for embedded quote")
	}
	if _, err := parseField("2bad"); err == nil {
		t.Error("expected error for leading digit")
	}
}
