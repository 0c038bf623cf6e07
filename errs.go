package totoml

import (
	"errors"
	"fmt"

	"github.com/fluxpipe/totoml/value"
)

var (
	// ErrShape indicates a root value whose shape cannot head a TOML
	// document.
	ErrShape = errors.New("unsupported top-level shape")

	// ErrEmbedded indicates a top-level string that failed to parse as
	// a TOML document.
	ErrEmbedded = errors.New("embedded document")

	// ErrDepth indicates a value nested beyond the configured limit.
	ErrDepth = errors.New("max depth exceeded")

	// ErrUnrepresentable indicates, under Strict, a value with no TOML
	// representation.
	ErrUnrepresentable = errors.New("unrepresentable value")

	errInternal = errors.New("internal error")
)

// ShapeError reports a root value, or a top-level list element, whose
// runtime type cannot head a TOML document.
type ShapeError struct {
	Kind value.Kind
	Span value.Span
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("a %s is not valid at the top level of a TOML document (%s)", e.Kind, e.Span)
}

func (e *ShapeError) Unwrap() error {
	return ErrShape
}

// ParseError reports a top-level string that was not a parseable TOML
// document.
type ParseError struct {
	Span value.Span
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("string value is not a TOML document (%s): %v", e.Span, e.Err)
}

func (e *ParseError) Unwrap() error {
	return ErrEmbedded
}

// DepthError reports a value whose nesting exceeds the limit set with
// MaxDepth.
type DepthError struct {
	Span  value.Span
	Limit int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("value nesting exceeds %d levels (%s)", e.Limit, e.Span)
}

func (e *DepthError) Unwrap() error {
	return ErrDepth
}

// UnrepresentableError reports, under Strict, a value of a kind that
// TOML cannot represent.
type UnrepresentableError struct {
	Kind value.Kind
	Span value.Span
}

func (e *UnrepresentableError) Error() string {
	return fmt.Sprintf("a %s has no TOML representation (%s)", e.Kind, e.Span)
}

func (e *UnrepresentableError) Unwrap() error {
	return ErrUnrepresentable
}
