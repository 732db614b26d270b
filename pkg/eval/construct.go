// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/compiler/errors"
	"github.com/regina-lang/regina/pkg/compiler/symbols"
	"github.com/regina-lang/regina/pkg/eval/rt"
	"github.com/regina-lang/regina/pkg/tokens"
)

func (e *evaluator) evalConstructor(ctx Context, node *ast.Constructor) (rt.Value, error) {
	inst, err := e.instantiate(ctx, node.Type)
	if err != nil {
		return nil, err
	}
	return e.construct(ctx, node, inst, node.Args, node.Named)
}

// instantiate creates the instance a constructor fills in.  A class yields a fresh instance; an existing instance
// yields its next generation, a copy that the constructor arguments then override.
func (e *evaluator) instantiate(ctx Context, target ast.Expression) (*rt.Instance, error) {
	if id, isid := target.(*ast.Identifier); isid {
		if class, has := ctx.ResolveClass(id.Ident); has {
			return e.rt.Alloc.New(target, class), nil
		}
		v, found, err := e.lookupIdentifier(ctx, id.Ident)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, errors.ErrorClassNotFound.At(target, id.Ident,
				suggest(id.Ident, symbols.StableClassMap(ctx.module.Classes)))
		}
		return e.instantiateValue(target, v)
	}

	v, err := e.evalExpression(ctx, target)
	if err != nil {
		return nil, err
	}
	return e.instantiateValue(target, v)
}

func (e *evaluator) instantiateValue(site ast.Node, v rt.Value) (*rt.Instance, error) {
	switch t := v.(type) {
	case *rt.ClassRef:
		if !t.Class.Object() {
			return e.rt.Alloc.New(site, t.Class), nil
		}
	case *rt.Instance:
		if !t.Class.Object() {
			return e.rt.Alloc.CopyOf(site, t), nil
		}
	}
	return nil, errors.ErrorNotConstructible.At(site, v.TypeName())
}

// construct installs the constructor arguments into inst and initializes it.  Arguments must be named after fields
// the class declares.  They are evaluated in the caller's context, in which `this` is the instance under
// construction, so later arguments can read the fields that earlier ones supplied.
func (e *evaluator) construct(ctx Context, site ast.Node, inst *rt.Instance,
	args []ast.Expression, named []*ast.Assignment) (rt.Value, error) {
	if len(args) > 0 {
		return nil, errors.ErrorUnnamedConstructorArgument.At(args[0], inst.Class)
	}

	argctx := ctx.WithMode(FunctionMode).EnterScope()
	argctx.frame.Define(tokens.ThisVariable, inst)
	supplied := mapset.NewThreadUnsafeSet[tokens.Name]()
	for _, arg := range named {
		id, isid := arg.Name()
		if !isid {
			return nil, errors.ErrorUnnamedConstructorArgument.At(arg, inst.Class)
		}
		if !inst.Class.HasField(id.Ident) {
			return nil, errors.ErrorUnknownField.At(arg, inst.Class, id.Ident)
		}
		if !supplied.Add(id.Ident) {
			return nil, errors.ErrorFieldBoundTwice.At(arg, id.Ident, inst.Class)
		}
		v, err := e.evalExpression(argctx, arg.Right)
		if err != nil {
			return nil, err
		}
		inst.Set(id.Ident, v)
		if child, isinst := v.(*rt.Instance); isinst && child != inst {
			child.Parent = inst
		}
	}

	if err := e.initialize(ctx, site, inst); err != nil {
		return nil, err
	}
	return inst, nil
}
