package value

import (
	"fmt"
	"strings"
)

// MemberKind discriminates the two member forms of a cell path.
type MemberKind int

const (
	KeyMember MemberKind = iota
	IndexMember
)

// PathMember is one step of a cell path: either a record key or a
// list index.
type PathMember struct {
	Kind  MemberKind
	Key   string
	Index int64
}

// PathKey returns a member selecting the record field named key.
func PathKey(key string) PathMember {
	return PathMember{Kind: KeyMember, Key: key}
}

// PathIndex returns a member selecting the list element at i.
func PathIndex(i int64) PathMember {
	return PathMember{Kind: IndexMember, Index: i}
}

func (m PathMember) String() string {
	if m.Kind == IndexMember {
		return fmt.Sprintf("[%d]", m.Index)
	}
	return m.Key
}

func pathString(members []PathMember) string {
	var sb strings.Builder
	for i, m := range members {
		if i > 0 && m.Kind == KeyMember {
			sb.WriteByte('.')
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}
