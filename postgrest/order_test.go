package postgrest

import "testing"

func TestParseOrderListBare(t *testing.T) {
	terms, err := parseOrderList("age")
	if err != nil {
		t.Fatal(err)
	}
	if len(terms) != 1 || terms[0].Direction != Asc || terms[0].Nulls != NullsDefault {
		t.Errorf("unexpected: %+v", terms)
	}
}

func TestParseOrderListDescNullsFirst(t *testing.T) {
	terms, err := parseOrderList("age.desc.nullsfirst")
	if err != nil {
		t.Fatal(err)
	}
	if len(terms) != 1 || terms[0].Direction != Desc || terms[0].Nulls != NullsFirst {
		t.Errorf("unexpected: %+v", terms)
	}
}

func TestParseOrderListMultipleTerms(t *testing.T) {
	terms, err := parseOrderList("age.desc,name.asc.nullslast")
	if err != nil {
		t.Fatal(err)
	}
	if len(terms) != 2 {
		t.Fatalf("expected 2 terms, got %d", len(terms))
	}
	if terms[0].Field.Name != "age" || terms[1].Field.Name != "name" {
		t.Errorf("unexpected fields: %+v", terms)
	}
	if terms[1].Nulls != NullsLast {
		t.Errorf("unexpected nulls: %+v", terms[1])
	}
}

func TestParseOrderListUnknownModifier(t *testing.T) {
	if _, err := parseOrderList("age.sideways"); err == nil {
		t.Error("expected error for unrecognized modifier")
	}
}

func TestParseOrderListEmpty(t *testing.T) {
	terms, err := parseOrderList("")
	if err != nil {
		t.Fatal(err)
	}
	if terms != nil {
		t.Errorf("expected nil, got %+v", terms)
	}
}
