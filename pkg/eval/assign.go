// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/compiler/errors"
	"github.com/regina-lang/regina/pkg/eval/rt"
	"github.com/regina-lang/regina/pkg/tokens"
)

// assign stores v into the place target names: a variable, a property reached through a link, or a subscript.
func (e *evaluator) assign(ctx Context, target ast.Expression, v rt.Value) error {
	if call, has := callOnLeft(target); has {
		return errors.ErrorCallOnAssignmentLeft.At(call)
	}
	switch t := target.(type) {
	case *ast.Identifier:
		return e.assignIdentifier(ctx, t, v)
	case *ast.Link:
		return e.assignLink(ctx, t, v)
	case *ast.Index:
		container, err := e.evalExpression(ctx, t.Target)
		if err != nil {
			return err
		}
		return e.setSubscript(ctx, t, container, v)
	default:
		return errors.ErrorIllegalAssignment.At(target, target.GetKind())
	}
}

// callOnLeft finds a call in a position that an assignment would have to write through.  Subscripts and link
// elements may not be calls, since a call's result is not a place.
func callOnLeft(target ast.Expression) (ast.Expression, bool) {
	switch t := target.(type) {
	case *ast.Call, *ast.Constructor, *ast.Invocation:
		return t, true
	case *ast.Index:
		return callOnLeft(t.DeepestLeft())
	case *ast.Link:
		for _, el := range t.Elements {
			if call, has := callOnLeft(el); has {
				return call, true
			}
		}
	}
	return nil, false
}

// assignIdentifier assigns a bare name.  An existing local wins, then a field of the current instance; otherwise a
// new local is defined in the innermost scope.
func (e *evaluator) assignIdentifier(ctx Context, id *ast.Identifier, v rt.Value) error {
	if id.Ident == tokens.ThisVariable || id.Ident == tokens.ParentVariable {
		return errors.ErrorIllegalAssignment.At(id, id.Ident)
	}
	if ctx.frame.Assign(id.Ident, v) {
		return nil
	}
	if ctx.instance != nil && ctx.instance.Has(id.Ident) {
		return e.setField(ctx.instance, id.Ident, v)
	}
	ctx.frame.Define(id.Ident, v)
	return nil
}

// assignLink assigns the last element of a link on the value of the elements before it.  If a nullable element
// short-circuits the path, nothing is assigned.
func (e *evaluator) assignLink(ctx Context, link *ast.Link, v rt.Value) error {
	last := len(link.Elements) - 1
	cur, next, err := e.linkRoot(ctx, link)
	if err != nil {
		return err
	}
	if cur == nil {
		return nil
	}
	if next > last {
		return errors.ErrorIllegalAssignment.At(link, "an imported member")
	}
	if cur, err = e.linkWalk(ctx, link, cur, next, last); err != nil {
		return err
	}
	if cur == nil {
		return nil
	}

	switch el := link.Elements[last].(type) {
	case *ast.Identifier:
		return e.setProperty(el, cur, el.Ident, v)
	case *ast.Index:
		// `a.b[1] = v` reads `a.b` and all but the last subscript, then assigns the last one.
		container, miss, err := e.memberOf(ctx, cur, el.Target)
		if err != nil {
			return err
		}
		if miss != nil {
			if link.IsNullable(last) {
				return nil
			}
			return miss
		}
		return e.setSubscript(ctx, el, container, v)
	default:
		return errors.ErrorIllegalAssignment.At(el, el.GetKind())
	}
}

// setProperty assigns a field of an instance.  Assigning a field the class does not declare adds it.
func (e *evaluator) setProperty(site ast.Node, target rt.Value, nm tokens.Name, v rt.Value) error {
	inst, isinst := target.(*rt.Instance)
	if !isinst {
		return errors.ErrorNotAnInstance.At(site, target.TypeName())
	}
	if nm == tokens.ThisVariable || nm == tokens.ParentVariable {
		return errors.ErrorPropertyCannotBeSet.At(site, nm, inst.TypeName())
	}
	return e.setField(inst, nm, v)
}
