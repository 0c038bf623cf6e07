package value

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Value is a dynamically typed pipeline value. Kind selects which of
// the payload fields is meaningful; the rest stay at their zero value.
//
// Records keep their fields in two order-correlated slices: Cols[i]
// names the field stored in Vals[i]. Field order is insertion order
// and is significant.
type Value struct {
	Kind Kind
	Span Span

	Bool     bool
	Int      int64 // IntKind magnitude, or FileSizeKind byte count
	Float    float64
	Str      string
	Bytes    []byte
	Duration time.Duration
	Time     time.Time
	Range    *Range
	Values   []*Value // ListKind elements
	Cols     []string // RecordKind field names
	Vals     []*Value // RecordKind field values, parallel to Cols
	Members  []PathMember
	Block    int // BlockKind id
	Err      error
	Custom   any
}

// Range is a bounded integer progression.
type Range struct {
	From      int64
	To        int64
	Step      int64
	Inclusive bool
}

func (r *Range) String() string {
	sep := ".."
	if !r.Inclusive {
		sep = "..<"
	}
	s := fmt.Sprintf("%d%s%d", r.From, sep, r.To)
	if r.Step != 0 && r.Step != 1 {
		s += fmt.Sprintf(" step %d", r.Step)
	}
	return s
}

// FromBool returns a bool value.
func FromBool(v bool) *Value {
	return &Value{Kind: BoolKind, Span: UnknownSpan(), Bool: v}
}

// FromInt returns an int value.
func FromInt(v int64) *Value {
	return &Value{Kind: IntKind, Span: UnknownSpan(), Int: v}
}

// FromFloat returns a float value.
func FromFloat(v float64) *Value {
	return &Value{Kind: FloatKind, Span: UnknownSpan(), Float: v}
}

// FromString returns a string value.
func FromString(v string) *Value {
	return &Value{Kind: StringKind, Span: UnknownSpan(), Str: v}
}

// FromBinary returns a binary value holding v. The slice is not copied.
func FromBinary(v []byte) *Value {
	return &Value{Kind: BinaryKind, Span: UnknownSpan(), Bytes: v}
}

// FromDuration returns a duration value.
func FromDuration(v time.Duration) *Value {
	return &Value{Kind: DurationKind, Span: UnknownSpan(), Duration: v}
}

// FromDate returns a date value.
func FromDate(v time.Time) *Value {
	return &Value{Kind: DateKind, Span: UnknownSpan(), Time: v}
}

// FromFileSize returns a file size value of n bytes.
func FromFileSize(n int64) *Value {
	return &Value{Kind: FileSizeKind, Span: UnknownSpan(), Int: n}
}

// FromRange returns a range value.
func FromRange(r *Range) *Value {
	return &Value{Kind: RangeKind, Span: UnknownSpan(), Range: r}
}

// FromList returns a list value with the given elements.
func FromList(vals ...*Value) *Value {
	return &Value{Kind: ListKind, Span: UnknownSpan(), Values: vals}
}

// FromRecord returns a record value zipping cols with vals. It panics
// if the slices differ in length.
func FromRecord(cols []string, vals []*Value) *Value {
	if len(cols) != len(vals) {
		panic(fmt.Sprintf("record with %d cols and %d vals", len(cols), len(vals)))
	}
	return &Value{Kind: RecordKind, Span: UnknownSpan(), Cols: cols, Vals: vals}
}

// FromBlock returns a block value referencing the block with id.
func FromBlock(id int) *Value {
	return &Value{Kind: BlockKind, Span: UnknownSpan(), Block: id}
}

// Nothing returns the nothing value.
func Nothing() *Value {
	return &Value{Kind: NothingKind, Span: UnknownSpan()}
}

// FromError returns an error value carrying err.
func FromError(err error) *Value {
	return &Value{Kind: ErrorKind, Span: UnknownSpan(), Err: err}
}

// FromCellPath returns a cell path value with the given members.
func FromCellPath(members ...PathMember) *Value {
	return &Value{Kind: CellPathKind, Span: UnknownSpan(), Members: members}
}

// FromCustom returns a custom value wrapping v.
func FromCustom(v any) *Value {
	return &Value{Kind: CustomKind, Span: UnknownSpan(), Custom: v}
}

// At sets the span of v and returns v.
func (v *Value) At(span Span) *Value {
	v.Span = span
	return v
}

// Get returns the record field named col, or nil if v is not a record
// or has no such field.
func (v *Value) Get(col string) *Value {
	if v.Kind != RecordKind {
		return nil
	}
	for i, c := range v.Cols {
		if c == col {
			return v.Vals[i]
		}
	}
	return nil
}

// String renders v for humans. It is not a serialization format.
func (v *Value) String() string {
	switch v.Kind {
	case BoolKind:
		return strconv.FormatBool(v.Bool)
	case IntKind:
		return strconv.FormatInt(v.Int, 10)
	case FloatKind:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case StringKind:
		return v.Str
	case BinaryKind:
		return fmt.Sprintf("0x%x", v.Bytes)
	case DurationKind:
		return v.Duration.String()
	case DateKind:
		return v.Time.Format(time.RFC3339)
	case FileSizeKind:
		if v.Int < 0 {
			return "-" + humanize.IBytes(uint64(-v.Int))
		}
		return humanize.IBytes(uint64(v.Int))
	case RangeKind:
		return v.Range.String()
	case ListKind:
		parts := make([]string, len(v.Values))
		for i, el := range v.Values {
			parts[i] = el.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case RecordKind:
		parts := make([]string, len(v.Cols))
		for i, col := range v.Cols {
			parts[i] = col + ": " + v.Vals[i].String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case BlockKind:
		return fmt.Sprintf("block %d", v.Block)
	case NothingKind:
		return "nothing"
	case ErrorKind:
		return "error: " + v.Err.Error()
	case CellPathKind:
		return pathString(v.Members)
	case CustomKind:
		return fmt.Sprintf("custom (%T)", v.Custom)
	}
	return "<invalid value>"
}
