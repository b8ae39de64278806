package postgrest_test

import (
	"testing"

	"github.com/filipecabaco/native-postgrest-parser/postgrest"
	"github.com/stretchr/testify/require"
)

// TestScenarios exercises the concrete end-to-end request/response table
// from spec.md §8. Grounded on the teacher's table-driven test shape,
// using testify per SPEC_FULL.md's test-tooling section.
func TestScenarios(t *testing.T) {
	cases := []struct {
		name        string
		req         postgrest.Request
		wantQuery   string
		wantParams  []any
		wantTables  []string
		expectError bool
	}{
		{
			name: "select with filter and limit",
			req: postgrest.Request{
				Method:      "GET",
				Path:        "/users",
				QueryString: "select=id,name&age=gte.18&limit=10",
			},
			wantQuery:  `SELECT "id", "name" FROM "public"."users" WHERE "age" >= $1 LIMIT $2`,
			wantParams: []any{"18", int64(10)},
			wantTables: []string{`"public"."users"`},
		},
		{
			name: "repeated column filters accumulate",
			req: postgrest.Request{
				Method:      "GET",
				Path:        "/users",
				QueryString: "price=gte.50&price=lte.150",
			},
			wantQuery:  `SELECT * FROM "public"."users" WHERE "price" >= $1 AND "price" <= $2`,
			wantParams: []any{"50", "150"},
			wantTables: []string{`"public"."users"`},
		},
		{
			name: "insert a single row",
			req: postgrest.Request{
				Method: "POST",
				Path:   "/users",
				Body:   []byte(`{"name":"Alice","age":30}`),
			},
			wantQuery:  `INSERT INTO "public"."users" ("age","name") VALUES ($1,$2)`,
			wantParams: []any{float64(30), "Alice"},
			wantTables: []string{`"public"."users"`},
		},
		{
			name: "put synthesizes on conflict from eq filters",
			req: postgrest.Request{
				Method:      "PUT",
				Path:        "/users",
				QueryString: "email=eq.a@b.com",
				Body:        []byte(`{"email":"a@b.com","name":"A"}`),
			},
			wantQuery:  `INSERT INTO "public"."users" ("email","name") VALUES ($1,$2) ON CONFLICT ("email") DO UPDATE SET "email"=EXCLUDED."email", "name"=EXCLUDED."name"`,
			wantParams: []any{"a@b.com", "A"},
			wantTables: []string{`"public"."users"`},
		},
		{
			name: "patch updates a single row",
			req: postgrest.Request{
				Method:      "PATCH",
				Path:        "/users",
				QueryString: "id=eq.123",
				Body:        []byte(`{"status":"active"}`),
			},
			wantQuery:  `UPDATE "public"."users" SET "status" = $1 WHERE "id" = $2`,
			wantParams: []any{"active", "123"},
			wantTables: []string{`"public"."users"`},
		},
		{
			name: "delete without filters is unsafe",
			req: postgrest.Request{
				Method: "DELETE",
				Path:   "/users",
			},
			expectError: true,
		},
		{
			name: "rpc call binds named arguments",
			req: postgrest.Request{
				Method: "POST",
				Path:   "/rpc/sum",
				Body:   []byte(`{"a":1,"b":2}`),
			},
			wantQuery:  `SELECT * FROM "public"."sum"("a" := $1, "b" := $2)`,
			wantParams: []any{float64(1), float64(2)},
			wantTables: []string{`"public"."sum"`},
		},
		{
			name: "nested and/or logic tree",
			req: postgrest.Request{
				Method:      "GET",
				Path:        "/t",
				QueryString: "and=(a.gte.1,or(b.eq.x,c.eq.y))",
			},
			wantQuery:  `SELECT * FROM "public"."t" WHERE ("a" >= $1 AND ("b" = $2 OR "c" = $3))`,
			wantParams: []any{"1", "x", "y"},
			wantTables: []string{`"public"."t"`},
		},
		{
			name: "empty query string selects everything",
			req: postgrest.Request{
				Method: "GET",
				Path:   "/t",
			},
			wantQuery:  `SELECT * FROM "public"."t"`,
			wantParams: []any{},
			wantTables: []string{`"public"."t"`},
		},
		{
			name: "limit zero passes through",
			req: postgrest.Request{
				Method:      "GET",
				Path:        "/t",
				QueryString: "limit=0",
			},
			wantQuery:  `SELECT * FROM "public"."t" LIMIT $1`,
			wantParams: []any{int64(0)},
			wantTables: []string{`"public"."t"`},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := postgrest.ParseAndGenerate(tc.req)
			if tc.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantQuery, result.Query)
			require.Equal(t, tc.wantParams, result.Params)
			require.Equal(t, tc.wantTables, result.Tables)
		})
	}
}

// TestEqAnySingleElement covers spec.md §8's "eq(any).{…} with single-
// element list yields = ANY($1)" boundary behavior.
func TestEqAnySingleElement(t *testing.T) {
	result, err := postgrest.ParseAndGenerate(postgrest.Request{
		Method:      "GET",
		Path:        "/t",
		QueryString: "a=eq(any).{1}",
	})
	require.NoError(t, err)
	require.Equal(t, `SELECT * FROM "public"."t" WHERE "a" = ANY($1)`, result.Query)
	require.Equal(t, []any{[]string{"1"}}, result.Params)
}

// TestDeeplyNestedLogicTree covers spec.md §8's "deeply nested
// and(or(and(…))) to depth 16 parses successfully" boundary behavior.
func TestDeeplyNestedLogicTree(t *testing.T) {
	leaf := "a.eq.1"
	for i := 0; i < 16; i++ {
		leaf = "and(" + leaf + ")"
	}
	result, err := postgrest.ParseAndGenerate(postgrest.Request{
		Method:      "GET",
		Path:        "/t",
		QueryString: "and=(" + leaf + ")",
	})
	require.NoError(t, err)
	require.Contains(t, result.Query, `"a" = $1`)
}
