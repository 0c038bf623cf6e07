package totoml

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/fluxpipe/totoml/debug"
	"github.com/fluxpipe/totoml/toml"
	"github.com/fluxpipe/totoml/value"
)

// Placeholder strings standing in for value kinds that TOML cannot
// represent. Strict conversions fail on these kinds instead.
const (
	RangePlaceholder   = "<Range>"
	BlockPlaceholder   = "<Block>"
	NothingPlaceholder = "<Nothing>"
	CustomPlaceholder  = "<Custom Value>"
)

// Export converts v and renders the result as TOML text.
func Export(ctx context.Context, v *value.Value, opts ...Option) (string, error) {
	node, err := Convert(ctx, v, opts...)
	if err != nil {
		return "", err
	}
	buf := bytes.NewBuffer(nil)
	if err := toml.Encode(node, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Convert turns a pipeline value into a TOML document tree.
//
// Three root shapes are accepted: a record, a list whose every element
// is a record, and a string holding TOML text. Records become the
// document's root table. Lists of records become an array of tables,
// except that a one-element array collapses to its only table. Strings
// are reparsed as TOML and returned as the document they contain.
// Anything else fails with a ShapeError before any conversion work
// happens. An error value anywhere in v aborts the conversion and
// returns the wrapped error unchanged.
//
// ctx is polled between top-level list elements and its error is
// returned as-is on cancellation. The input is never mutated.
func Convert(ctx context.Context, v *value.Value, opts ...Option) (*toml.Node, error) {
	cfg := newConfig(opts)
	if debug.Convert() {
		debug.Logf("convert: %s at root\n", v.Kind)
	}
	switch v.Kind {
	case value.RecordKind:
		node, err := cfg.classifyRecord(v, 0)
		if err != nil {
			return nil, err
		}
		return node.ToTable(), nil
	case value.ListKind:
		node, err := cfg.convertList(ctx, v)
		if err != nil {
			return nil, err
		}
		if node.IsTable() {
			return node.ToTable(), nil
		}
		return node, nil
	case value.StringKind:
		return cfg.reparse(v)
	case value.ErrorKind:
		return nil, v.Err
	}
	return nil, &ShapeError{Kind: v.Kind, Span: v.Span}
}

// convertList handles a root list. Element shapes are checked before
// any element converts; the conversion loop then polls ctx between
// elements.
func (cfg *config) convertList(ctx context.Context, v *value.Value) (*toml.Node, error) {
	for _, el := range v.Values {
		if el.Kind == value.ErrorKind {
			return nil, el.Err
		}
		if el.Kind != value.RecordKind {
			return nil, &ShapeError{Kind: el.Kind, Span: el.Span}
		}
	}
	arr := toml.Array()
	for _, el := range v.Values {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		node, err := cfg.classifyRecord(el, 1)
		if err != nil {
			return nil, err
		}
		arr.Values = append(arr.Values, node)
	}
	if singleInlineTable(arr) {
		return arr.Values[0], nil
	}
	return arr, nil
}

// classify maps one value to one TOML node. depth counts the
// containers above v.
func (cfg *config) classify(v *value.Value, depth int) (*toml.Node, error) {
	if depth > cfg.maxDepth {
		return nil, &DepthError{Span: v.Span, Limit: cfg.maxDepth}
	}
	switch v.Kind {
	case value.BoolKind:
		return toml.FromBool(v.Bool), nil
	case value.IntKind, value.FileSizeKind:
		return toml.FromInt(v.Int), nil
	case value.FloatKind:
		return toml.FromFloat(v.Float), nil
	case value.StringKind:
		return toml.FromString(v.Str), nil
	case value.BinaryKind:
		arr := toml.Array()
		for _, b := range v.Bytes {
			arr.Values = append(arr.Values, toml.FromInt(int64(b)))
		}
		return arr, nil
	case value.DurationKind:
		return toml.FromString(v.Duration.String()), nil
	case value.DateKind:
		return toml.FromString(v.Time.Format(time.RFC3339)), nil
	case value.RangeKind:
		return cfg.placeholder(v, RangePlaceholder)
	case value.ListKind:
		return cfg.classifyList(v, depth)
	case value.RecordKind:
		return cfg.classifyRecord(v, depth)
	case value.BlockKind:
		return cfg.placeholder(v, BlockPlaceholder)
	case value.NothingKind:
		return cfg.placeholder(v, NothingPlaceholder)
	case value.ErrorKind:
		return nil, v.Err
	case value.CellPathKind:
		arr := toml.Array()
		for _, m := range v.Members {
			if m.Kind == value.IndexMember {
				arr.Values = append(arr.Values, toml.FromInt(m.Index))
			} else {
				arr.Values = append(arr.Values, toml.FromString(m.Key))
			}
		}
		return arr, nil
	case value.CustomKind:
		return cfg.placeholder(v, CustomPlaceholder)
	}
	return nil, fmt.Errorf("%w: no conversion for kind %s", errInternal, v.Kind)
}

// classifyRecord converts a record field by field, in field order,
// into an inline table. The first failing field aborts the record.
func (cfg *config) classifyRecord(v *value.Value, depth int) (*toml.Node, error) {
	table := toml.InlineTable()
	for i, col := range v.Cols {
		node, err := cfg.classify(v.Vals[i], depth+1)
		if err != nil {
			return nil, err
		}
		table.Append(col, node)
	}
	return table, nil
}

// classifyList converts a list element by element, in element order,
// then collapses one-element arrays of tables.
func (cfg *config) classifyList(v *value.Value, depth int) (*toml.Node, error) {
	arr := toml.Array()
	for _, el := range v.Values {
		node, err := cfg.classify(el, depth+1)
		if err != nil {
			return nil, err
		}
		arr.Values = append(arr.Values, node)
	}
	if singleInlineTable(arr) {
		return arr.Values[0], nil
	}
	return arr, nil
}

// singleInlineTable reports whether arr is a one-element array whose
// only element is an inline table. Such arrays collapse to the inner
// table; arrays of two or more tables stay arrays of tables.
func singleInlineTable(arr *toml.Node) bool {
	return arr.Type == toml.ArrayType &&
		len(arr.Values) == 1 &&
		arr.Values[0].Type == toml.InlineTableType
}

func (cfg *config) placeholder(v *value.Value, s string) (*toml.Node, error) {
	if cfg.strict {
		return nil, &UnrepresentableError{Kind: v.Kind, Span: v.Span}
	}
	return toml.FromString(s), nil
}

// reparse treats a root string as TOML text it can normalize.
func (cfg *config) reparse(v *value.Value) (*toml.Node, error) {
	node, err := toml.Parse([]byte(v.Str))
	if err != nil {
		if debug.Reparse() {
			debug.Logf("reparse: %v\n", err)
		}
		return nil, &ParseError{Span: v.Span, Err: err}
	}
	if debug.Reparse() {
		debug.Logf("reparse:\n%v", node)
	}
	return node, nil
}
