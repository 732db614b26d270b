// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	"github.com/golang/glog"

	"github.com/regina-lang/regina/pkg/compiler/symbols"
	"github.com/regina-lang/regina/pkg/diag"
	"github.com/regina-lang/regina/pkg/eval/rt"
)

// Allocator is a factory for instances.  It numbers every generation it hands out, starting at 1, since index 0
// denotes a class template.
type Allocator struct {
	last int // the index given to the most recent instance.
}

// NewAllocator allocates a fresh allocator instance.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next reserves the next instance index.
func (a *Allocator) Next() int {
	a.last++
	return a.last
}

// Count returns how many instances have been allocated.
func (a *Allocator) Count() int { return a.last }

// New creates an instance of class with all of its fields pending.
func (a *Allocator) New(tree diag.Diagable, class *symbols.Class) *rt.Instance {
	inst := rt.NewInstance(class, a.Next())
	if glog.V(7) {
		glog.V(7).Infof("Allocated %v #%v", class, inst.Index)
	}
	return inst
}

// CopyOf creates the next generation of an existing instance.
func (a *Allocator) CopyOf(tree diag.Diagable, inst *rt.Instance) *rt.Instance {
	dup := inst.Copy(a.Next())
	if glog.V(7) {
		glog.V(7).Infof("Copied %v #%v into #%v", inst.Class, inst.Index, dup.Index)
	}
	return dup
}
