// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package rt

import (
	"github.com/regina-lang/regina/pkg/tokens"
	"github.com/regina-lang/regina/pkg/util/contract"
)

// PropertyMap holds named slots and remembers the order in which they were created.  Instances use one for their
// resolved fields and frames use one for their variables.
type PropertyMap struct {
	m      map[tokens.Name]*Pointer // the slots.
	chrono []tokens.Name            // the ascending chronological order of slot creation.
}

// NewPropertyMap returns a fresh property map ready for use.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{
		m: make(map[tokens.Name]*Pointer),
	}
}

// Stable returns the keys in the order they were first set.
func (props *PropertyMap) Stable() []tokens.Name {
	return props.chrono
}

func (props *PropertyMap) Len() int { return len(props.chrono) }

// Has checks whether a property exists in the current map.
func (props *PropertyMap) Has(key tokens.Name) bool {
	_, has := props.m[key]
	return has
}

// GetAddr returns a reference to a map's property.  If no entry is found, the return value is nil.
func (props *PropertyMap) GetAddr(key tokens.Name) *Pointer {
	return props.m[key]
}

// TryGet returns a map's property value and whether it was found.
func (props *PropertyMap) TryGet(key tokens.Name) (Value, bool) {
	if ptr, has := props.m[key]; has {
		return ptr.Value(), true
	}
	return nil, false
}

// InitAddr initializes a slot that must not exist yet, substituting null for a nil value.
func (props *PropertyMap) InitAddr(key tokens.Name, value Value) *Pointer {
	contract.Assertf(props.m[key] == nil, "Cannot initialize an existing slot: %v", key)
	ptr := NewPointer(value)
	props.m[key] = ptr
	props.chrono = append(props.chrono, key)
	return ptr
}

// Set sets a map's property value, initializing the slot if required.  If a value already exists, it is overwritten.
func (props *PropertyMap) Set(key tokens.Name, value Value) {
	if ptr, has := props.m[key]; has {
		ptr.Set(value)
		return
	}
	props.InitAddr(key, value)
}

// Copy returns a map with fresh slots holding the same values, in the same order.
func (props *PropertyMap) Copy() *PropertyMap {
	c := NewPropertyMap()
	for _, key := range props.chrono {
		c.InitAddr(key, props.m[key].Value())
	}
	return c
}
