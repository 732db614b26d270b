// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package rt

import (
	"github.com/regina-lang/regina/pkg/tokens"
)

// Frame is one level of local variables.  Frames chain to their parent, forming the scope of an activation.
type Frame struct {
	parent *Frame
	vars   *PropertyMap
}

// NewFrame creates an empty frame chained to parent, which may be nil for the root of an activation.
func NewFrame(parent *Frame) *Frame {
	return &Frame{parent: parent, vars: NewPropertyMap()}
}

func (f *Frame) Parent() *Frame { return f.parent }

// Lookup finds a variable in this frame or any frame it is chained to.
func (f *Frame) Lookup(nm tokens.Name) (Value, bool) {
	for fr := f; fr != nil; fr = fr.parent {
		if v, has := fr.vars.TryGet(nm); has {
			return v, true
		}
	}
	return nil, false
}

// Assign overwrites an existing variable wherever it lives in the chain, returning false if there is none.
func (f *Frame) Assign(nm tokens.Name, v Value) bool {
	for fr := f; fr != nil; fr = fr.parent {
		if ptr := fr.vars.GetAddr(nm); ptr != nil {
			ptr.Set(v)
			return true
		}
	}
	return false
}

// Define creates or overwrites a variable in this frame.
func (f *Frame) Define(nm tokens.Name, v Value) {
	f.vars.Set(nm, v)
}

// Names returns every visible variable name, innermost first.
func (f *Frame) Names() []tokens.Name {
	var names []tokens.Name
	for fr := f; fr != nil; fr = fr.parent {
		names = append(names, fr.vars.Stable()...)
	}
	return names
}
