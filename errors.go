package rollup

import "errors"

// Sentinel errors returned by fragment rendering and Compile.
// All of them indicate incorrect caller usage rather than transient
// conditions; match with errors.Is.
var (
	// ErrInvalidFilterValue indicates a list filter constructed without a
	// value list.
	ErrInvalidFilterValue = errors.New("list filter requires a value list")

	// ErrMissingExpression indicates a custom filter without an expression.
	ErrMissingExpression = errors.New("custom filter requires an expression")

	// ErrUnsupportedFilterKind indicates a filter kind outside {list, custom}.
	ErrUnsupportedFilterKind = errors.New("unsupported filter kind")

	// ErrMissingTimeGrain indicates Compile was called before a time grain
	// was set. Position 1 of the statement is always the time bucket, so a
	// query cannot be assembled without one.
	ErrMissingTimeGrain = errors.New("no time grain set")
)
