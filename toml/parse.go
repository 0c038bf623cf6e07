package toml

import (
	"fmt"
	"sort"
	"time"

	gotoml "github.com/pelletier/go-toml"
)

// Parse reads a TOML document into a Node tree. Table entries keep
// their document order; datetime values of every flavor come back as
// string nodes.
func Parse(data []byte) (*Node, error) {
	tree, err := gotoml.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return fromTree(tree, true)
}

func fromTree(t *gotoml.Tree, root bool) (*Node, error) {
	node := InlineTable()
	if root {
		node = Table()
	}
	keys := t.Keys()
	// Keys() iterates a map. Recover document order from positions.
	sort.Slice(keys, func(i, j int) bool {
		pi := t.GetPositionPath([]string{keys[i]})
		pj := t.GetPositionPath([]string{keys[j]})
		if pi.Line != pj.Line {
			return pi.Line < pj.Line
		}
		return pi.Col < pj.Col
	})
	for _, key := range keys {
		child, err := fromGo(t.GetPath([]string{key}))
		if err != nil {
			return nil, err
		}
		node.Append(key, child)
	}
	return node, nil
}

func fromGo(v any) (*Node, error) {
	switch x := v.(type) {
	case bool:
		return FromBool(x), nil
	case int64:
		return FromInt(x), nil
	case float64:
		return FromFloat(x), nil
	case string:
		return FromString(x), nil
	case time.Time:
		return FromString(x.Format(time.RFC3339Nano)), nil
	case gotoml.LocalDate:
		return FromString(x.String()), nil
	case gotoml.LocalTime:
		return FromString(x.String()), nil
	case gotoml.LocalDateTime:
		return FromString(x.String()), nil
	case *gotoml.Tree:
		return fromTree(x, false)
	case []*gotoml.Tree:
		arr := Array()
		for _, sub := range x {
			el, err := fromTree(sub, false)
			if err != nil {
				return nil, err
			}
			arr.Values = append(arr.Values, el)
		}
		return arr, nil
	case []any:
		arr := Array()
		for _, sub := range x {
			el, err := fromGo(sub)
			if err != nil {
				return nil, err
			}
			arr.Values = append(arr.Values, el)
		}
		return arr, nil
	}
	return nil, fmt.Errorf("%w: no tree form for %T", ErrParse, v)
}
