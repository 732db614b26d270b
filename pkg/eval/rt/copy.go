// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package rt

// Copy duplicates a mutable value.  A shallow copy shares the elements and fields of v; a deep copy duplicates every
// list, dictionary and instance reachable from v, preserving sharing and cycles.  next numbers each new instance.
// Immutable values are returned unchanged.
func Copy(v Value, deep bool, next func() int) Value {
	c := &copier{deep: deep, next: next, done: make(map[Value]Value)}
	return c.copy(v)
}

type copier struct {
	deep bool
	next func() int
	done map[Value]Value // originals mapped to their copies.
}

func (c *copier) elem(v Value) Value {
	if c.deep {
		return c.copy(v)
	}
	return v
}

func (c *copier) copy(v Value) Value {
	if dup, has := c.done[v]; has {
		return dup
	}
	switch t := v.(type) {
	case *List:
		dup := &List{Elements: make([]Value, len(t.Elements))}
		c.done[v] = dup
		for i, elem := range t.Elements {
			dup.Elements[i] = c.elem(elem)
		}
		return dup
	case *Dictionary:
		dup := NewDictionary()
		c.done[v] = dup
		for _, key := range t.keys {
			dup.Set(key, c.elem(t.m[key]))
		}
		return dup
	case *Instance:
		dup := t.Copy(c.next())
		c.done[v] = dup
		if c.deep {
			for _, nm := range dup.Fields() {
				val, _ := t.Get(nm)
				fv := c.copy(val)
				if child, isinst := fv.(*Instance); isinst && child.Parent == t {
					child.Parent = dup
				}
				dup.fields.Set(nm, fv)
			}
		}
		return dup
	default:
		return v
	}
}
