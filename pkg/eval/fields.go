// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	"github.com/golang/glog"

	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/diag"
	"github.com/regina-lang/regina/pkg/eval/rt"
	"github.com/regina-lang/regina/pkg/tokens"
)

// fieldContext is the context the initializers of inst are evaluated in.  It has no locals of its own, so names
// resolve against the instance and its module, never against whoever triggered the resolution.
func fieldContext(inst *rt.Instance) Context {
	return NewContext(inst.Class.Parent).WithInstance(inst).WithMode(TypeMode)
}

// getField reads a field of inst, running its initializer first if it is still pending.
func (e *evaluator) getField(inst *rt.Instance, nm tokens.Name) (rt.Value, bool, error) {
	if v, has := inst.Get(nm); has {
		return v, true, nil
	}
	asn, pending := inst.Pending(nm)
	if !pending {
		return nil, false, nil
	}
	if err := e.resolvePending(inst, asn); err != nil {
		return nil, false, err
	}
	v, has := inst.Get(nm)
	return v, has, nil
}

// resolvePending runs one pending initializer of inst.  The fields it visibly depends on are resolved first; the
// rest are resolved on demand while it is evaluated.  A field that depends on itself recurses until the stack runs
// out.
func (e *evaluator) resolvePending(inst *rt.Instance, asn *ast.Assignment) error {
	ctx := fieldContext(inst)
	if glog.V(7) {
		glog.V(7).Infof("Resolving a pending field of %v #%v", inst.Class, inst.Index)
	}

	for {
		dep, found, err := e.findInitializerDependency(ctx, inst, asn)
		if err != nil {
			return err
		}
		if !found || (dep.owner == inst && dep.asn == asn) {
			break
		}
		if err := e.resolvePending(dep.owner, dep.asn); err != nil {
			return err
		}
	}

	if !inst.IsPending(asn) {
		return nil // resolved while resolving its dependencies.
	}
	v, err := e.evalExpression(ctx, asn.Right)
	if err != nil {
		return err
	}
	if !inst.IsPending(asn) {
		return nil // the initializer assigned its own field; that assignment stands.
	}

	if id, isid := asn.Name(); isid {
		return e.setField(inst, id.Ident, v)
	}
	// The initializer assigns through a link, e.g. `a.b = 1`.
	if err := e.assign(ctx, asn.Left, v); err != nil {
		return err
	}
	inst.Settle(asn)
	return e.completed(inst)
}

// setField resolves a field of inst.  An instance stored in a field becomes owned by inst, unless it already has an
// owner, and its own pending fields are resolved.
func (e *evaluator) setField(inst *rt.Instance, nm tokens.Name, v rt.Value) error {
	_, wasPending := inst.Pending(nm)
	inst.Set(nm, v)
	if wasPending && e.hooks != nil {
		e.hooks.OnFieldResolved(inst, nm, v)
	}
	if child, isinst := v.(*rt.Instance); isinst && child != inst {
		if child.Parent == nil {
			child.Parent = inst
		}
		if !child.Resolved() {
			if err := e.resolveTree(child); err != nil {
				return err
			}
		}
	}
	return e.completed(inst)
}

// resolveTree resolves every pending field of inst, in declaration order, and then those of the instances its fields
// hold.
func (e *evaluator) resolveTree(inst *rt.Instance) error {
	for {
		asn, has := inst.FirstPending()
		if !has {
			break
		}
		if err := e.resolvePending(inst, asn); err != nil {
			return err
		}
	}
	for _, nm := range inst.Fields() {
		v, _ := inst.Get(nm)
		if child, isinst := v.(*rt.Instance); isinst && child != inst && !child.Resolved() {
			if err := e.resolveTree(child); err != nil {
				return err
			}
		}
	}
	return nil
}

// completed runs the after hook of inst if nothing is pending anymore and the hook has not run yet.
func (e *evaluator) completed(inst *rt.Instance) error {
	if !inst.MarkAfter() {
		return nil
	}
	return e.callHook(inst, tokens.AfterHook)
}

// initialize finishes a construction whose explicit arguments are installed: it runs the before hook, the after hook
// if nothing is left pending, and then resolves the remaining fields unless ctx is evaluating an initializer.
func (e *evaluator) initialize(ctx Context, tree diag.Diagable, inst *rt.Instance) error {
	if err := e.callHook(inst, tokens.BeforeHook); err != nil {
		return err
	}
	if inst.Resolved() {
		if err := e.completed(inst); err != nil {
			return err
		}
	}
	if e.hooks != nil {
		e.hooks.OnObjectInit(tree, inst)
	}
	if ctx.mode == TypeMode {
		return nil
	}
	return e.resolveTree(inst)
}

// callHook invokes the parameterless method nm of inst, if the class declares one.
func (e *evaluator) callHook(inst *rt.Instance, nm tokens.Name) error {
	fnc, has := inst.Class.LookupMethod(nm, 0)
	if !has {
		return nil
	}
	glog.V(5).Infof("Running %v of %v #%v", nm, inst.Class, inst.Index)
	_, err := e.call(inst.Class.Node, fnc, inst, e.calleeContext(fnc, inst), nil)
	return err
}
