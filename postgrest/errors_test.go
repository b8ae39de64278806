package postgrest

import (
	"errors"
	"testing"
)

func TestCodeMapsWrappedSentinels(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{UnknownOperatorErr("xx"), CodeUnknownOperator},
		{InvalidLimitErr("abc"), CodeInvalidLimit},
		{InvalidOffsetErr("abc"), CodeInvalidOffset},
		{InvalidInsertBodyErr("bad"), CodeInvalidInsertBody},
		{InvalidUpdateBodyErr("bad"), CodeInvalidUpdateBody},
		{InvalidRpcArgsErr("bad"), CodeInvalidRpcArgs},
		{InvalidOnConflictErr("bad"), CodeInvalidOnConflict},
		{UnsupportedMethodErr("HEAD"), CodeUnsupportedMethod},
		{InvalidSchemaErr("bad schema"), CodeInvalidSchema},
		{InvalidTableNameErr("bad table"), CodeInvalidTableName},
		{InvalidIdentifierErr("bad", "reason"), CodeInvalidIdentifier},
		{QueryTooDeepErr(40, 32), CodeQueryTooDeep},
		{InListTooLargeErr(2000, 1000), CodeInListTooLarge},
		{ErrUnsafeUpdate, CodeUnsafeUpdate},
		{ErrUnsafeDelete, CodeUnsafeDelete},
		{ErrLimitWithoutOrder, CodeLimitWithoutOrder},
		{ErrNoInsertValues, CodeNoInsertValues},
		{ErrNoUpdateSet, CodeNoUpdateSet},
		{GenerationInvariantViolatedErr("bug"), CodeGenerationInvariantViolated},
	}
	for _, c := range cases {
		if got := Code(c.err); got != c.want {
			t.Errorf("Code(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestCodeNil(t *testing.T) {
	if got := Code(nil); got != "" {
		t.Errorf("Code(nil) = %q, want empty", got)
	}
}

func TestCodeUnknownError(t *testing.T) {
	if got := Code(errors.New("not ours")); got != "" {
		t.Errorf("Code(unknown) = %q, want empty", got)
	}
}

func TestErrorsWrapSentinelForIs(t *testing.T) {
	err := UnknownOperatorErr("bogus")
	if !errors.Is(err, ErrUnknownOperator) {
		t.Error("expected errors.Is to match the wrapped sentinel")
	}
	if err.Error() == ErrUnknownOperator.Error() {
		t.Error("expected constructor to add detail beyond the bare sentinel message")
	}
}
