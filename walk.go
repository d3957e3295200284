package txtpb

import (
	"errors"
	"strconv"
)

// SkipMessage may be returned by a WalkFunc to skip the value of the current
// field. It is not returned by Walk.
var SkipMessage = errors.New("txtpb: skip message")

// WalkFunc is called for every field. path holds the names from the walk
// root down to f; elements of message lists appear as "name[i]".
type WalkFunc func(path []string, f Field) error

// Walk visits the fields of m depth-first in source order, descending into
// message values and message lists. Any error other than SkipMessage stops
// the walk and is returned.
func Walk(m Message, fn WalkFunc) error {
	return walk(nil, m, fn)
}

func walk(path []string, m Message, fn WalkFunc) error {
	for i := 0; i < m.Len(); i++ {
		f := m.Field(i)
		p := append(path[:len(path):len(path)], f.Name().String())
		if err := fn(p, f); err != nil {
			if errors.Is(err, SkipMessage) {
				continue
			}
			return err
		}

		v := f.Value()
		switch v.Kind() {
		case ValueMessage:
			inner, _ := v.Message()
			if err := walk(p, inner, fn); err != nil {
				return err
			}
		case ValueMessageList:
			elems, _ := v.List()
			last := len(p) - 1
			for j, e := range elems {
				inner, _ := e.Message()
				ep := append(p[:last:last], p[last]+"["+strconv.Itoa(j)+"]")
				if err := walk(ep, inner, fn); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
