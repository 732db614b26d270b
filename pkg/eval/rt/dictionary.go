// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package rt

// Dictionary is a mutable map that remembers insertion order.  Keys are compared the way Go compares interface
// values, so collections and instances are keyed by identity.
type Dictionary struct {
	keys []Value
	m    map[Value]Value
}

func NewDictionary() *Dictionary {
	return &Dictionary{m: make(map[Value]Value)}
}

func (d *Dictionary) String() string { return show(d, nil) }
func (d *Dictionary) Len() int       { return len(d.keys) }

// Keys returns the keys in insertion order.
func (d *Dictionary) Keys() []Value {
	return append([]Value(nil), d.keys...)
}

// Values returns the values in key insertion order.
func (d *Dictionary) Values() []Value {
	vals := make([]Value, len(d.keys))
	for i, key := range d.keys {
		vals[i] = d.m[key]
	}
	return vals
}

func (d *Dictionary) Get(key Value) (Value, bool) {
	v, has := d.m[key]
	return v, has
}

func (d *Dictionary) Set(key Value, v Value) {
	if _, has := d.m[key]; !has {
		d.keys = append(d.keys, key)
	}
	d.m[key] = v
}

// Delete removes key, returning false if it was absent.
func (d *Dictionary) Delete(key Value) bool {
	if _, has := d.m[key]; !has {
		return false
	}
	delete(d.m, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return true
}
