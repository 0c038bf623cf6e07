package toml

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// EncState holds the rendering configuration for one Encode call.
type EncState struct {
	indent int
	colors *Colors
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) color(t Type, attr ColorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Color(t, attr, s)
}

// Encode renders node to w as TOML text. Top-level tables render as a
// document, one entry per line. A top-level array of tables renders as
// a multi-line array value. Anything else renders in value syntax on a
// single line. Output ends with a newline except for the empty table,
// which renders as the empty document.
func Encode(node *Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	switch node.Type {
	case TableType:
		return encodeDocument(node, w, es)
	case ArrayType:
		if err := encodeRootArray(node, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	default:
		if err := encodeValue(node, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	}
}

func encodeDocument(n *Node, w io.Writer, es *EncState) error {
	for i, key := range n.Keys {
		v := n.Values[i]
		if err := encodeKey(key, v.Type, w, es); err != nil {
			return err
		}
		if err := writeString(w, es.color(v.Type, SepColor, " = ")); err != nil {
			return err
		}
		if err := encodeValue(v, w, es); err != nil {
			return err
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func encodeRootArray(n *Node, w io.Writer, es *EncState) error {
	block := len(n.Values) > 0
	for _, el := range n.Values {
		if !el.IsTable() {
			block = false
			break
		}
	}
	if !block {
		return encodeArray(n, w, es)
	}
	if err := writeString(w, es.color(ArrayType, SepColor, "[")); err != nil {
		return err
	}
	pad := strings.Repeat(" ", es.indent)
	for _, el := range n.Values {
		if err := writeString(w, "\n"+pad); err != nil {
			return err
		}
		if err := encodeInlineTable(el, w, es); err != nil {
			return err
		}
		if err := writeString(w, es.color(ArrayType, SepColor, ",")); err != nil {
			return err
		}
	}
	return writeString(w, "\n"+es.color(ArrayType, SepColor, "]"))
}

func encodeValue(n *Node, w io.Writer, es *EncState) error {
	switch n.Type {
	case BoolType:
		return writeString(w, es.color(BoolType, ValueColor, strconv.FormatBool(n.Bool)))
	case IntegerType:
		return writeString(w, es.color(IntegerType, ValueColor, strconv.FormatInt(n.Int, 10)))
	case FloatType:
		return writeString(w, es.color(FloatType, ValueColor, formatFloat(n.Float)))
	case StringType:
		return writeString(w, es.color(StringType, ValueColor, quoteString(n.Str)))
	case ArrayType:
		return encodeArray(n, w, es)
	case InlineTableType, TableType:
		return encodeInlineTable(n, w, es)
	}
	panic("type")
}

func encodeArray(n *Node, w io.Writer, es *EncState) error {
	if err := writeString(w, es.color(ArrayType, SepColor, "[")); err != nil {
		return err
	}
	for i, el := range n.Values {
		if i > 0 {
			if err := writeString(w, es.color(ArrayType, SepColor, ", ")); err != nil {
				return err
			}
		}
		if err := encodeValue(el, w, es); err != nil {
			return err
		}
	}
	return writeString(w, es.color(ArrayType, SepColor, "]"))
}

func encodeInlineTable(n *Node, w io.Writer, es *EncState) error {
	if len(n.Keys) == 0 {
		return writeString(w, es.color(InlineTableType, SepColor, "{}"))
	}
	if err := writeString(w, es.color(InlineTableType, SepColor, "{ ")); err != nil {
		return err
	}
	for i, key := range n.Keys {
		if i > 0 {
			if err := writeString(w, es.color(InlineTableType, SepColor, ", ")); err != nil {
				return err
			}
		}
		if err := encodeKey(key, n.Values[i].Type, w, es); err != nil {
			return err
		}
		if err := writeString(w, es.color(InlineTableType, SepColor, " = ")); err != nil {
			return err
		}
		if err := encodeValue(n.Values[i], w, es); err != nil {
			return err
		}
	}
	return writeString(w, es.color(InlineTableType, SepColor, " }"))
}

func encodeKey(key string, t Type, w io.Writer, es *EncState) error {
	s := key
	if !bareKey(key) {
		s = quoteString(key)
	}
	return writeString(w, es.color(t, KeyColor, s))
}

// bareKey reports whether key can appear unquoted.
func bareKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}

const hexDigits = "0123456789ABCDEF"

// quoteString renders s as a TOML basic string.
func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\b':
			sb.WriteString(`\b`)
		case '\t':
			sb.WriteString(`\t`)
		case '\n':
			sb.WriteString(`\n`)
		case '\f':
			sb.WriteString(`\f`)
		case '\r':
			sb.WriteString(`\r`)
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			if r < 0x20 || r == 0x7f {
				sb.WriteString(`\u00`)
				sb.WriteByte(hexDigits[r>>4])
				sb.WriteByte(hexDigits[r&0xf])
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// formatFloat renders f as a TOML float. TOML floats always carry a
// fractional part or an exponent, and the non-finite values have
// dedicated spellings.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
