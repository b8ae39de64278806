package postgrest

import "testing"

func TestDecodeInsertBodySingleObject(t *testing.T) {
	v, err := decodeInsertBody([]byte(`{"a":1}`))
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind != ValuesRowSingle || v.Single["a"] != float64(1) {
		t.Errorf("unexpected: %+v", v)
	}
}

func TestDecodeInsertBodyBulkArray(t *testing.T) {
	v, err := decodeInsertBody([]byte(`[{"a":1},{"a":2,"b":3}]`))
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind != ValuesRowBulk || len(v.Bulk) != 2 {
		t.Errorf("unexpected: %+v", v)
	}
}

func TestDecodeInsertBodyEmptyArrayRejected(t *testing.T) {
	if _, err := decodeInsertBody([]byte(`[]`)); err == nil {
		t.Error("expected error for empty bulk array")
	}
}

func TestDecodeInsertBodyRejectsScalar(t *testing.T) {
	if _, err := decodeInsertBody([]byte(`"oops"`)); err == nil {
		t.Error("expected InvalidInsertBody error")
	}
}

func TestDecodeInsertBodyRejectsEmpty(t *testing.T) {
	if _, err := decodeInsertBody(nil); err == nil {
		t.Error("expected error for empty body")
	}
}

func TestDecodeUpdateBodyRejectsEmptyObject(t *testing.T) {
	if _, err := decodeUpdateBody([]byte(`{}`)); err == nil {
		t.Error("expected EmptyUpdateBody error")
	}
}

func TestDecodeUpdateBodyOK(t *testing.T) {
	set, err := decodeUpdateBody([]byte(`{"status":"active"}`))
	if err != nil {
		t.Fatal(err)
	}
	if set["status"] != "active" {
		t.Errorf("unexpected: %+v", set)
	}
}

func TestDecodeRpcArgsAbsentBody(t *testing.T) {
	args, err := decodeRpcArgs(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(args) != 0 {
		t.Errorf("expected empty args, got %+v", args)
	}
}

func TestDecodeRpcArgsObject(t *testing.T) {
	args, err := decodeRpcArgs([]byte(`{"a":1,"b":2}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(args) != 2 {
		t.Errorf("unexpected: %+v", args)
	}
}
