package value

import "fmt"

// Span locates a value in the source that produced it, as a half-open
// byte range [Start, End). Values synthesized in memory carry the
// unknown span.
type Span struct {
	Start int
	End   int
}

// NewSpan returns the span covering bytes [start, end).
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// UnknownSpan returns the span used for values with no source location.
func UnknownSpan() Span {
	return Span{Start: -1, End: -1}
}

// IsUnknown reports whether s carries no source location.
func (s Span) IsUnknown() bool {
	return s.Start < 0 || s.End < s.Start
}

func (s Span) String() string {
	if s.IsUnknown() {
		return "unknown location"
	}
	return fmt.Sprintf("offset %d..%d", s.Start, s.End)
}
