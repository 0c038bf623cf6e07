package toml

// Type enumerates the node types of a TOML document tree.
type Type int

const (
	InvalidType Type = iota
	BoolType
	IntegerType
	FloatType
	StringType
	ArrayType
	InlineTableType
	TableType
)

// Types returns all valid node types in declaration order.
func Types() []Type {
	return []Type{
		BoolType,
		IntegerType,
		FloatType,
		StringType,
		ArrayType,
		InlineTableType,
		TableType,
	}
}

var typeStrings = map[Type]string{
	BoolType:        "boolean",
	IntegerType:     "integer",
	FloatType:       "float",
	StringType:      "string",
	ArrayType:       "array",
	InlineTableType: "inline table",
	TableType:       "table",
}

func (t Type) String() string {
	s, ok := typeStrings[t]
	if !ok {
		return "<invalid type>"
	}
	return s
}

// Node is one node of a TOML document tree. Type selects the payload.
//
// Tables keep their entries in two order-correlated slices: Keys[i]
// names the entry stored in Values[i]. Entry order is insertion order
// and the encoder emits entries in that order. Arrays use Values alone.
type Node struct {
	Type Type

	Bool  bool
	Int   int64
	Float float64
	Str   string

	Keys   []string
	Values []*Node
}

// FromBool returns a boolean node.
func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

// FromInt returns an integer node.
func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int: v}
}

// FromFloat returns a float node.
func FromFloat(v float64) *Node {
	return &Node{Type: FloatType, Float: v}
}

// FromString returns a string node.
func FromString(v string) *Node {
	return &Node{Type: StringType, Str: v}
}

// Array returns an array node with the given elements.
func Array(elems ...*Node) *Node {
	return &Node{Type: ArrayType, Values: elems}
}

// InlineTable returns an empty inline table.
func InlineTable() *Node {
	return &Node{Type: InlineTableType}
}

// Table returns an empty top-level table.
func Table() *Node {
	return &Node{Type: TableType}
}

// Append adds the entry key = val at the end of table n. It panics if
// n is not a table.
func (n *Node) Append(key string, val *Node) {
	if !n.IsTable() {
		panic("append to " + n.Type.String())
	}
	n.Keys = append(n.Keys, key)
	n.Values = append(n.Values, val)
}

// Get returns the value of the entry named key, or nil if n is not a
// table or has no such entry.
func (n *Node) Get(key string) *Node {
	if !n.IsTable() {
		return nil
	}
	for i, k := range n.Keys {
		if k == key {
			return n.Values[i]
		}
	}
	return nil
}

// IsTable reports whether n is a table of either flavor.
func (n *Node) IsTable() bool {
	return n.Type == TableType || n.Type == InlineTableType
}

// ToTable returns a top-level table with the entries of n. The entry
// slices are shared, not copied.
func (n *Node) ToTable() *Node {
	if n.Type == TableType {
		return n
	}
	return &Node{Type: TableType, Keys: n.Keys, Values: n.Values}
}
