// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package rt

import (
	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/compiler/symbols"
	"github.com/regina-lang/regina/pkg/tokens"
)

// Instance is a materialized class or object.  Every field is either resolved, holding a value, or pending, holding
// the initializer that will compute it on demand.  A resolved field never becomes pending again.
type Instance struct {
	Class  *symbols.Class // the template this instance was made from.
	Index  int            // the generation of this instance; 0 is reserved for the template itself.
	Parent *Instance      // the instance that owns this one, if any.

	fields     *PropertyMap      // resolved fields, in resolution order.
	pending    []*ast.Assignment // initializers still to run, in declaration order.
	afterFired bool              // true once the after hook has been run.
}

// NewInstance creates an instance of class with every initializer pending.
func NewInstance(class *symbols.Class, index int) *Instance {
	return &Instance{
		Class:   class,
		Index:   index,
		fields:  NewPropertyMap(),
		pending: append([]*ast.Assignment(nil), class.Inits...),
	}
}

func (inst *Instance) TypeName() string { return inst.Class.String() }
func (inst *Instance) String() string   { return show(inst, nil) }

// Get returns the value of a resolved field.
func (inst *Instance) Get(nm tokens.Name) (Value, bool) {
	return inst.fields.TryGet(nm)
}

// Pending returns the initializer of a field that has not been resolved yet.
func (inst *Instance) Pending(nm tokens.Name) (*ast.Assignment, bool) {
	if inst.fields.Has(nm) {
		return nil, false
	}
	for _, asn := range inst.pending {
		if id, isid := asn.Name(); isid && id.Ident == nm {
			return asn, true
		}
	}
	return nil, false
}

// Has returns true if nm is a field of this instance, resolved or not.
func (inst *Instance) Has(nm tokens.Name) bool {
	if inst.fields.Has(nm) {
		return true
	}
	_, pending := inst.Pending(nm)
	return pending
}

// Set resolves the field nm to v, dropping its initializer if it was still pending.  Fields that the class does not
// declare are created.
func (inst *Instance) Set(nm tokens.Name, v Value) {
	inst.fields.Set(nm, v)
	for i, asn := range inst.pending {
		if id, isid := asn.Name(); isid && id.Ident == nm {
			inst.pending = append(inst.pending[:i:i], inst.pending[i+1:]...)
			break
		}
	}
}

// Settle drops an initializer that has been run, such as one that assigns through a link.
func (inst *Instance) Settle(asn *ast.Assignment) {
	for i, p := range inst.pending {
		if p == asn {
			inst.pending = append(inst.pending[:i:i], inst.pending[i+1:]...)
			return
		}
	}
}

// IsPending returns true if asn is one of the initializers still to run.
func (inst *Instance) IsPending(asn *ast.Assignment) bool {
	for _, p := range inst.pending {
		if p == asn {
			return true
		}
	}
	return false
}

// FirstPending returns the earliest declared initializer that has not run yet.
func (inst *Instance) FirstPending() (*ast.Assignment, bool) {
	if len(inst.pending) == 0 {
		return nil, false
	}
	return inst.pending[0], true
}

func (inst *Instance) PendingCount() int { return len(inst.pending) }
func (inst *Instance) Resolved() bool    { return len(inst.pending) == 0 }

// MarkAfter returns true exactly once, the first time it is called on a fully resolved instance.
func (inst *Instance) MarkAfter() bool {
	if inst.afterFired || len(inst.pending) > 0 {
		return false
	}
	inst.afterFired = true
	return true
}

// Fields returns the names of the resolved fields, in resolution order.
func (inst *Instance) Fields() []tokens.Name {
	return inst.fields.Stable()
}

// printOrder lists the resolved fields the class declares, in declaration order, followed by any others.
func (inst *Instance) printOrder() []tokens.Name {
	var names []tokens.Name
	for _, nm := range inst.Class.Names {
		if inst.fields.Has(nm) {
			names = append(names, nm)
		}
	}
	for _, nm := range inst.fields.Stable() {
		if !inst.Class.HasField(nm) {
			names = append(names, nm)
		}
	}
	return names
}

// Copy returns a new generation of this instance holding the same field values and pending initializers.  Its
// hooks have not fired yet.
func (inst *Instance) Copy(index int) *Instance {
	return &Instance{
		Class:   inst.Class,
		Index:   index,
		Parent:  inst.Parent,
		fields:  inst.fields.Copy(),
		pending: append([]*ast.Assignment(nil), inst.pending...),
	}
}
