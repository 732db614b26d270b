// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package rt

// Pointer is a slot holding one variable or field.  Slots keep their identity while the map holding them grows, so a
// frame can be handed one and write through it later.
type Pointer struct {
	value Value
}

// NewPointer returns a slot holding value; nil is stored as null.
func NewPointer(value Value) *Pointer {
	ptr := &Pointer{}
	ptr.Set(value)
	return ptr
}

func (ptr *Pointer) Value() Value { return ptr.value }

// Set replaces the slot's value; nil is stored as null.
func (ptr *Pointer) Set(value Value) {
	if value == nil {
		value = Null
	}
	ptr.value = value
}

func (ptr *Pointer) String() string {
	return "*{" + ptr.value.String() + "}"
}
