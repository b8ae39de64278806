// Package postgrest: error taxonomy. Two flat families — ParseError (raised
// by the Parser/Router before any SQL is emitted) and GenerationError
// (raised by the Validator/Generator at the SQL boundary) — each a set of
// sentinel errors plus detail-carrying constructors in the teacher's
// errors.go style (errors.New + fmt.Errorf("%w: ...")). Every sentinel
// also has a stable Code string for SDK-style programmatic handling,
// mirrors api/database/errors.go's APIError/Code* layer.
package postgrest

import (
	"errors"
	"fmt"
)

// Stable error codes for SDK consumption.
const (
	CodeUnknownOperator      = "UNKNOWN_OPERATOR"
	CodeUnclosedParenthesis  = "UNCLOSED_PARENTHESIS"
	CodeInvalidLimit         = "INVALID_LIMIT"
	CodeInvalidOffset        = "INVALID_OFFSET"
	CodeInvalidJSONBody      = "INVALID_JSON_BODY"
	CodeInvalidInsertBody    = "INVALID_INSERT_BODY"
	CodeInvalidUpdateBody    = "INVALID_UPDATE_BODY"
	CodeInvalidRpcArgs       = "INVALID_RPC_ARGS"
	CodeEmptyUpdateBody      = "EMPTY_UPDATE_BODY"
	CodeInvalidOnConflict    = "INVALID_ON_CONFLICT"
	CodeUnsupportedMethod    = "UNSUPPORTED_METHOD"
	CodeInvalidSchema        = "INVALID_SCHEMA"
	CodeInvalidTableName     = "INVALID_TABLE_NAME"
	CodeInvalidIdentifier = "INVALID_IDENTIFIER"
	CodeQueryTooDeep      = "QUERY_TOO_DEEP"
	CodeInListTooLarge    = "IN_LIST_TOO_LARGE"

	CodeUnsafeUpdate                = "UNSAFE_UPDATE"
	CodeUnsafeDelete                = "UNSAFE_DELETE"
	CodeLimitWithoutOrder           = "LIMIT_WITHOUT_ORDER"
	CodeNoInsertValues              = "NO_INSERT_VALUES"
	CodeNoUpdateSet                 = "NO_UPDATE_SET"
	CodeGenerationInvariantViolated = "GENERATION_INVARIANT_VIOLATED"
)

// ParseError sentinels.
var (
	ErrUnknownOperator     = errors.New("unknown filter operator")
	ErrUnclosedParenthesis = errors.New("unclosed parenthesis in logic tree")
	ErrInvalidLimit        = errors.New("invalid limit value")
	ErrInvalidOffset       = errors.New("invalid offset value")
	ErrInvalidJSONBody     = errors.New("invalid JSON body")
	ErrInvalidInsertBody   = errors.New("invalid insert body")
	ErrInvalidUpdateBody   = errors.New("invalid update body")
	ErrInvalidRpcArgs      = errors.New("invalid rpc arguments")
	ErrEmptyUpdateBody     = errors.New("update body must not be empty")
	ErrInvalidOnConflict   = errors.New("invalid on_conflict parameter")
	ErrUnsupportedMethod   = errors.New("unsupported HTTP method")
	ErrInvalidSchema       = errors.New("invalid schema name")
	ErrInvalidTableName    = errors.New("invalid table name")
	ErrInvalidIdentifier   = errors.New("invalid identifier")
	ErrQueryTooDeep        = errors.New("logic tree nesting exceeds maximum depth")
	ErrInListTooLarge      = errors.New("in/array list exceeds maximum size")
)

// GenerationError sentinels.
var (
	ErrUnsafeUpdate               = errors.New("UPDATE requires at least one filter")
	ErrUnsafeDelete               = errors.New("DELETE requires at least one filter")
	ErrLimitWithoutOrder          = errors.New("LIMIT on a mutation requires a non-empty ORDER")
	ErrNoInsertValues             = errors.New("insert requires at least one row")
	ErrNoUpdateSet                = errors.New("update requires at least one column to set")
	ErrGenerationInvariantViolated = errors.New("generation invariant violated")
)

// UnknownOperatorErr reports an unrecognized filter-operator token.
func UnknownOperatorErr(token string) error {
	return fmt.Errorf("%w: %q", ErrUnknownOperator, token)
}

// InvalidLimitErr reports a `limit=` value that doesn't parse as a
// non-negative integer.
func InvalidLimitErr(raw string) error {
	return fmt.Errorf("%w: %q", ErrInvalidLimit, raw)
}

// InvalidOffsetErr reports an `offset=` value that doesn't parse as a
// non-negative integer.
func InvalidOffsetErr(raw string) error {
	return fmt.Errorf("%w: %q", ErrInvalidOffset, raw)
}

// InvalidJSONBodyErr wraps an underlying JSON decode failure.
func InvalidJSONBodyErr(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidJSONBody, msg)
}

// InvalidInsertBodyErr reports an insert body that is neither a JSON
// object nor a non-empty JSON array of objects.
func InvalidInsertBodyErr(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInsertBody, msg)
}

// InvalidUpdateBodyErr reports an update body that is not a JSON object.
func InvalidUpdateBodyErr(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidUpdateBody, msg)
}

// InvalidRpcArgsErr reports an rpc body that is not a JSON object.
func InvalidRpcArgsErr(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidRpcArgs, msg)
}

// InvalidOnConflictErr reports a malformed `on_conflict=` parameter.
func InvalidOnConflictErr(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidOnConflict, msg)
}

// UnsupportedMethodErr reports a method the router doesn't route.
func UnsupportedMethodErr(method string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
}

// InvalidSchemaErr reports a syntactically invalid schema name.
func InvalidSchemaErr(name string) error {
	return fmt.Errorf("%w: %q", ErrInvalidSchema, name)
}

// InvalidTableNameErr reports a syntactically invalid table name.
func InvalidTableNameErr(name string) error {
	return fmt.Errorf("%w: %q", ErrInvalidTableName, name)
}

// InvalidIdentifierErr reports an identifier containing unsafe
// characters (embedded quotes, empty, too long, bad leading character).
func InvalidIdentifierErr(name, reason string) error {
	return fmt.Errorf("%w: %q: %s", ErrInvalidIdentifier, name, reason)
}

// QueryTooDeepErr reports a logic tree deeper than config.Cfg.MaxQueryDepth.
func QueryTooDeepErr(depth, max int) error {
	return fmt.Errorf("%w: depth %d exceeds limit %d", ErrQueryTooDeep, depth, max)
}

// InListTooLargeErr reports an in/array/quantified list longer than
// config.Cfg.MaxInValues.
func InListTooLargeErr(n, max int) error {
	return fmt.Errorf("%w: %d elements exceeds limit %d", ErrInListTooLarge, n, max)
}

// GenerationInvariantViolatedErr reports a condition the validator should
// already have caught; reaching it indicates a bug in an upstream stage.
func GenerationInvariantViolatedErr(msg string) error {
	return fmt.Errorf("%w: %s", ErrGenerationInvariantViolated, msg)
}

// errorCodes maps each sentinel to its stable code, walked via errors.Is
// in Code. A flat table, not a type switch, per spec.md §9's "no dynamic
// dispatch" posture.
var errorCodes = []struct {
	err  error
	code string
}{
	{ErrUnknownOperator, CodeUnknownOperator},
	{ErrUnclosedParenthesis, CodeUnclosedParenthesis},
	{ErrInvalidLimit, CodeInvalidLimit},
	{ErrInvalidOffset, CodeInvalidOffset},
	{ErrInvalidJSONBody, CodeInvalidJSONBody},
	{ErrInvalidInsertBody, CodeInvalidInsertBody},
	{ErrInvalidUpdateBody, CodeInvalidUpdateBody},
	{ErrInvalidRpcArgs, CodeInvalidRpcArgs},
	{ErrEmptyUpdateBody, CodeEmptyUpdateBody},
	{ErrInvalidOnConflict, CodeInvalidOnConflict},
	{ErrUnsupportedMethod, CodeUnsupportedMethod},
	{ErrInvalidSchema, CodeInvalidSchema},
	{ErrInvalidTableName, CodeInvalidTableName},
	{ErrInvalidIdentifier, CodeInvalidIdentifier},
	{ErrQueryTooDeep, CodeQueryTooDeep},
	{ErrInListTooLarge, CodeInListTooLarge},
	{ErrUnsafeUpdate, CodeUnsafeUpdate},
	{ErrUnsafeDelete, CodeUnsafeDelete},
	{ErrLimitWithoutOrder, CodeLimitWithoutOrder},
	{ErrNoInsertValues, CodeNoInsertValues},
	{ErrNoUpdateSet, CodeNoUpdateSet},
	{ErrGenerationInvariantViolated, CodeGenerationInvariantViolated},
}

// Code returns the stable error code for any error returned by this
// package, or "" if err is nil or not one of ours.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return ""
}
