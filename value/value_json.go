package value

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// wireValue is the JSON wire form of a Value. One struct covers every
// kind; MarshalJSON fills only the fields the kind uses, and
// UnmarshalJSON validates the structural invariants on the way in.
type wireValue struct {
	Kind     string          `json:"kind"`
	Span     *wireSpan       `json:"span,omitempty"`
	Bool     *bool           `json:"bool,omitempty"`
	Int      *int64          `json:"int,omitempty"`
	Float    *float64        `json:"float,omitempty"`
	Str      *string         `json:"str,omitempty"`
	Bytes    []byte          `json:"bytes,omitempty"`
	Duration *int64          `json:"duration,omitempty"`
	Date     *time.Time      `json:"date,omitempty"`
	FileSize *int64          `json:"filesize,omitempty"`
	Range    *wireRange      `json:"range,omitempty"`
	Values   []*Value        `json:"values,omitempty"`
	Cols     []string        `json:"cols,omitempty"`
	Vals     []*Value        `json:"vals,omitempty"`
	Members  []wireMember    `json:"members,omitempty"`
	Block    *int            `json:"block,omitempty"`
	Error    *string         `json:"error,omitempty"`
	Custom   json.RawMessage `json:"custom,omitempty"`
}

type wireSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type wireRange struct {
	From      int64 `json:"from"`
	To        int64 `json:"to"`
	Step      int64 `json:"step,omitempty"`
	Inclusive bool  `json:"inclusive"`
}

type wireMember struct {
	Key   *string `json:"key,omitempty"`
	Index *int64  `json:"index,omitempty"`
}

func (v *Value) MarshalJSON() ([]byte, error) {
	kind, err := v.Kind.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWire, err)
	}
	w := &wireValue{Kind: string(kind)}
	if !v.Span.IsUnknown() {
		w.Span = &wireSpan{Start: v.Span.Start, End: v.Span.End}
	}
	switch v.Kind {
	case BoolKind:
		w.Bool = &v.Bool
	case IntKind:
		w.Int = &v.Int
	case FloatKind:
		w.Float = &v.Float
	case StringKind:
		w.Str = &v.Str
	case BinaryKind:
		w.Bytes = v.Bytes
	case DurationKind:
		ns := int64(v.Duration)
		w.Duration = &ns
	case DateKind:
		w.Date = &v.Time
	case FileSizeKind:
		w.FileSize = &v.Int
	case RangeKind:
		if v.Range == nil {
			return nil, fmt.Errorf("%w: range value without bounds", ErrWire)
		}
		w.Range = &wireRange{
			From:      v.Range.From,
			To:        v.Range.To,
			Step:      v.Range.Step,
			Inclusive: v.Range.Inclusive,
		}
	case ListKind:
		w.Values = v.Values
	case RecordKind:
		if len(v.Cols) != len(v.Vals) {
			return nil, fmt.Errorf("%w: record with %d cols and %d vals", ErrWire, len(v.Cols), len(v.Vals))
		}
		w.Cols = v.Cols
		w.Vals = v.Vals
	case BlockKind:
		w.Block = &v.Block
	case NothingKind:
	case ErrorKind:
		msg := ""
		if v.Err != nil {
			msg = v.Err.Error()
		}
		w.Error = &msg
	case CellPathKind:
		w.Members = make([]wireMember, len(v.Members))
		for i, m := range v.Members {
			if m.Kind == IndexMember {
				idx := m.Index
				w.Members[i].Index = &idx
			} else {
				key := m.Key
				w.Members[i].Key = &key
			}
		}
	case CustomKind:
		d, err := json.Marshal(v.Custom)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWire, err)
		}
		w.Custom = d
	}
	return json.Marshal(w)
}

func (v *Value) UnmarshalJSON(d []byte) error {
	w := &wireValue{}
	if err := json.Unmarshal(d, w); err != nil {
		return err
	}
	var kind Kind
	if err := kind.UnmarshalText([]byte(w.Kind)); err != nil {
		return fmt.Errorf("%w: %v", ErrWire, err)
	}
	*v = Value{Kind: kind, Span: UnknownSpan()}
	if w.Span != nil {
		v.Span = Span{Start: w.Span.Start, End: w.Span.End}
	}
	switch kind {
	case BoolKind:
		if w.Bool != nil {
			v.Bool = *w.Bool
		}
	case IntKind:
		if w.Int != nil {
			v.Int = *w.Int
		}
	case FloatKind:
		if w.Float != nil {
			v.Float = *w.Float
		}
	case StringKind:
		if w.Str != nil {
			v.Str = *w.Str
		}
	case BinaryKind:
		v.Bytes = w.Bytes
	case DurationKind:
		if w.Duration != nil {
			v.Duration = time.Duration(*w.Duration)
		}
	case DateKind:
		if w.Date != nil {
			v.Time = *w.Date
		}
	case FileSizeKind:
		if w.FileSize != nil {
			v.Int = *w.FileSize
		}
	case RangeKind:
		if w.Range == nil {
			return fmt.Errorf("%w: range value without bounds", ErrWire)
		}
		v.Range = &Range{
			From:      w.Range.From,
			To:        w.Range.To,
			Step:      w.Range.Step,
			Inclusive: w.Range.Inclusive,
		}
	case ListKind:
		v.Values = w.Values
	case RecordKind:
		if len(w.Cols) != len(w.Vals) {
			return fmt.Errorf("%w: record with %d cols and %d vals", ErrWire, len(w.Cols), len(w.Vals))
		}
		v.Cols = w.Cols
		v.Vals = w.Vals
	case BlockKind:
		if w.Block != nil {
			v.Block = *w.Block
		}
	case NothingKind:
	case ErrorKind:
		msg := ""
		if w.Error != nil {
			msg = *w.Error
		}
		v.Err = errors.New(msg)
	case CellPathKind:
		v.Members = make([]PathMember, len(w.Members))
		for i, m := range w.Members {
			switch {
			case m.Key != nil && m.Index != nil:
				return fmt.Errorf("%w: cell path member with both key and index", ErrWire)
			case m.Key != nil:
				v.Members[i] = PathKey(*m.Key)
			case m.Index != nil:
				v.Members[i] = PathIndex(*m.Index)
			default:
				return fmt.Errorf("%w: cell path member with neither key nor index", ErrWire)
			}
		}
	case CustomKind:
		if len(w.Custom) > 0 {
			var payload any
			if err := json.Unmarshal(w.Custom, &payload); err != nil {
				return fmt.Errorf("%w: %v", ErrWire, err)
			}
			v.Custom = payload
		}
	}
	return nil
}
