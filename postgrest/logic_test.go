package postgrest

import "testing"

func TestParseLogicTreeSimpleAnd(t *testing.T) {
	node, err := parseLogicTree(NodeAnd, false, "(a.eq.1,b.eq.2)", 1)
	if err != nil {
		t.Fatal(err)
	}
	if node.Kind != NodeAnd || len(node.Children) != 2 {
		t.Fatalf("unexpected: %+v", node)
	}
	if node.Children[0].Leaf.Field.Name != "a" || node.Children[1].Leaf.Field.Name != "b" {
		t.Errorf("unexpected children: %+v", node.Children)
	}
}

func TestParseLogicTreeNestedOr(t *testing.T) {
	node, err := parseLogicTree(NodeAnd, false, "(a.gte.1,or(b.eq.x,c.eq.y))", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(node.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(node.Children))
	}
	inner := node.Children[1]
	if inner.Kind != NodeOr || len(inner.Children) != 2 {
		t.Errorf("unexpected nested node: %+v", inner)
	}
}

func TestParseLogicTreeNegatedGroup(t *testing.T) {
	node, err := parseLogicTree(NodeAnd, true, "(a.eq.1)", 1)
	if err != nil {
		t.Fatal(err)
	}
	if node.Kind != NodeNot || node.Child == nil || node.Child.Kind != NodeAnd {
		t.Errorf("unexpected: %+v", node)
	}
}

func TestParseLogicTreeUnclosedParenthesis(t *testing.T) {
	if _, err := parseLogicTree(NodeAnd, false, "(a.eq.1", 1); err == nil {
		t.Error("expected ErrUnclosedParenthesis")
	}
}

func TestParseLogicTreeDepthLimit(t *testing.T) {
	leaf := "a.eq.1"
	for i := 0; i < 40; i++ {
		leaf = "and(" + leaf + ")"
	}
	if _, err := parseLogicTree(NodeAnd, false, "("+leaf+")", 1); err == nil {
		t.Error("expected QueryTooDeep error")
	}
}

func TestParseLogicLeafFieldWithJSONPath(t *testing.T) {
	f, err := parseLogicLeaf("data->>tag.eq.urgent")
	if err != nil {
		t.Fatal(err)
	}
	if f.Field.Name != "data" || len(f.Field.JSONPath) != 1 || f.Op != OpEq || f.Value.Single != "urgent" {
		t.Errorf("unexpected: %+v", f)
	}
}
