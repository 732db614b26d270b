// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/golang/glog"

	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/compiler/errors"
	"github.com/regina-lang/regina/pkg/compiler/symbols"
	"github.com/regina-lang/regina/pkg/eval/rt"
	"github.com/regina-lang/regina/pkg/tokens"
	"github.com/regina-lang/regina/pkg/util/contract"
)

func (e *evaluator) evalCall(ctx Context, node *ast.Call) (rt.Value, error) {
	fnc, inst, found := e.resolveFunction(ctx, node)
	if !found {
		return nil, errors.ErrorFunctionNotFound.At(node, node.Name.Ident, node.Argc(),
			suggest(node.Name.Ident, e.functionNames(ctx)))
	}
	var this rt.Value
	if inst != nil {
		this = inst
	}
	return e.invoke(ctx, node, fnc, this, node.Args, node.Named)
}

// invoke evaluates the arguments of a call in the caller's context, binds them to the parameters of fnc, and calls
// it.  this is the receiver for methods, and nil otherwise.
func (e *evaluator) invoke(ctx Context, site ast.Node, fnc symbols.Function, this rt.Value,
	args []ast.Expression, named []*ast.Assignment) (rt.Value, error) {
	if len(args) > fnc.MaxArity() {
		return nil, errors.ErrorTooManyArguments.At(site, fnc, fnc.MaxArity(), len(args))
	}

	vals := make([]rt.Value, fnc.MaxArity())
	for i, arg := range args {
		v, err := e.evalExpression(ctx, arg)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	if err := e.bindNamed(ctx, fnc, vals, len(args), named); err != nil {
		return nil, err
	}
	for i, param := range fnc.Params() {
		if vals[i] == nil {
			return nil, errors.ErrorMissingArgument.At(site, param.Ident, fnc)
		}
	}

	callee := e.calleeContext(fnc, this)
	if err := e.bindDefaults(callee, fnc, vals); err != nil {
		return nil, err
	}
	return e.call(site, fnc, this, callee, vals)
}

// bindNamed stores named arguments into the slots of the parameters they name.  The first positional parameters are
// already bound.
func (e *evaluator) bindNamed(ctx Context, fnc symbols.Function, vals []rt.Value, positional int,
	named []*ast.Assignment) error {
	params := symbols.ParamNames(fnc)
	bound := mapset.NewThreadUnsafeSet[tokens.Name](params[:positional]...)
	for _, arg := range named {
		id, _ := arg.Name()
		slot := -1
		for i, nm := range params {
			if nm == id.Ident {
				slot = i
				break
			}
		}
		if slot < 0 {
			return errors.ErrorUnknownParameter.At(arg, fnc, id.Ident)
		}
		if !bound.Add(id.Ident) {
			return errors.ErrorParameterBoundTwice.At(arg, id.Ident, fnc)
		}
		v, err := e.evalExpression(ctx, arg.Right)
		if err != nil {
			return err
		}
		vals[slot] = v
	}
	return nil
}

// bindDefaults fills the unbound defaulted parameters.  A default is evaluated in the callee's context, seeing only
// the parameters declared before it.
func (e *evaluator) bindDefaults(callee Context, fnc symbols.Function, vals []rt.Value) error {
	defs := fnc.Defaults()
	if len(defs) == 0 {
		return nil
	}
	scratch := callee.NewActivation()
	required := len(fnc.Params())
	for i, param := range fnc.Params() {
		scratch.frame.Define(param.Ident, vals[i])
	}
	for j, def := range defs {
		slot := required + j
		if vals[slot] == nil {
			v, err := e.evalExpression(scratch, def.Right)
			if err != nil {
				return err
			}
			vals[slot] = v
		}
		id, _ := def.Name()
		scratch.frame.Define(id.Ident, vals[slot])
	}
	return nil
}

// calleeContext is the context the body and defaults of fnc see: the module that declares it and, for a method, its
// receiver.
func (e *evaluator) calleeContext(fnc symbols.Function, this rt.Value) Context {
	f, isuser := fnc.(*symbols.UserFunction)
	if !isuser {
		return NewContext(e.global)
	}
	ctx := NewContext(f.Module)
	if inst, isinst := this.(*rt.Instance); isinst && f.Class != nil {
		ctx = ctx.WithInstance(inst)
	}
	return ctx
}

// call runs fnc with its parameters already bound to vals.
func (e *evaluator) call(site ast.Node, fnc symbols.Function, this rt.Value, callee Context,
	vals []rt.Value) (rt.Value, error) {
	if e.hooks != nil {
		leave, err := e.hooks.OnEnterFunction(fnc, vals)
		if err != nil {
			return nil, err
		}
		if leave != nil {
			defer leave()
		}
	}
	if glog.V(7) {
		glog.V(7).Infof("Calling %v with %v argument(s)", fnc, len(vals))
	}

	switch f := fnc.(type) {
	case *symbols.UserFunction:
		act := callee.NewActivation()
		for i, nm := range symbols.ParamNames(f) {
			act.frame.Define(nm, vals[i])
		}
		uw, err := e.evalStatements(act, f.Body())
		if err != nil {
			return nil, err
		}
		if uw == nil {
			return rt.Null, nil
		}
		if !uw.Return() {
			return nil, errors.ErrorJumpOutsideLoop.At(site, uw)
		}
		return uw.Returned(), nil
	case *Intrinsic:
		return f.Invoke(e, &Args{Site: site, This: this, Values: vals})
	default:
		contract.Failf("Unrecognized function type: %v", fnc)
		return nil, nil
	}
}
