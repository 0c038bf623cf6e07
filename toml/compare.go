package toml

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntegerType:
		return cmp.Compare(a.Int, b.Int)
	case FloatType:
		return cmp.Compare(a.Float, b.Float)
	case StringType:
		return strings.Compare(a.Str, b.Str)
	case ArrayType:
		return compareArrays(a, b)
	case InlineTableType, TableType:
		return compareTables(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Bool < Integer < Float < String < Array < InlineTable < Table
func rank(t Type) int {
	switch t {
	case BoolType:
		return 0
	case IntegerType:
		return 1
	case FloatType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case InlineTableType:
		return 5
	case TableType:
		return 6
	}
	return 100
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareTables(a, b *Node) int {
	lenA := len(a.Keys)
	lenB := len(b.Keys)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Keys[i], b.Keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
