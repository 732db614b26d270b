// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/compiler/errors"
	"github.com/regina-lang/regina/pkg/compiler/symbols"
	"github.com/regina-lang/regina/pkg/eval/rt"
	"github.com/regina-lang/regina/pkg/tokens"
)

// evalLink evaluates a dotted chain such as `a.b.c(1)[2]`.  Each element is resolved against the value of the
// previous one.  A missing property or method at a nullable element turns the whole chain into null.
func (e *evaluator) evalLink(ctx Context, node *ast.Link) (rt.Value, error) {
	cur, next, err := e.linkRoot(ctx, node)
	if err != nil {
		return nil, err
	}
	if cur != nil {
		cur, err = e.linkWalk(ctx, node, cur, next, len(node.Elements))
	}
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return rt.Null, nil
	}
	return cur, nil
}

// linkRoot resolves the first element of a chain and returns its value together with the index of the first element
// still to be applied.  An identifier that names no variable, field or module member may name an import, in which
// case the following element is resolved inside the imported module.  A nil value means the chain short-circuited.
func (e *evaluator) linkRoot(ctx Context, node *ast.Link) (rt.Value, int, error) {
	root, isid := node.Elements[0].(*ast.Identifier)
	if !isid {
		v, err := e.evalExpression(ctx, node.Elements[0])
		return v, 1, err
	}

	v, found, err := e.lookupIdentifier(ctx, root.Ident)
	if err != nil {
		return nil, 0, err
	}
	if found {
		return v, 1, nil
	}

	if mod, isimport := ctx.module.LookupImport(root.Ident); isimport {
		v, miss, err := e.importMember(ctx, mod, node.Elements[1])
		if err != nil {
			return nil, 0, err
		}
		if miss != nil {
			if node.IsNullable(1) {
				return nil, 0, nil
			}
			return nil, 0, miss
		}
		return v, 2, nil
	}

	return nil, 0, errors.ErrorIdentifierNotFound.At(root, root.Ident, suggest(root.Ident, e.visibleNames(ctx)))
}

// linkWalk applies the elements [from, to) of a chain to cur.  It returns nil if a nullable element short-circuited.
func (e *evaluator) linkWalk(ctx Context, node *ast.Link, cur rt.Value, from int, to int) (rt.Value, error) {
	for i := from; i < to; i++ {
		v, miss, err := e.memberOf(ctx, cur, node.Elements[i])
		if err != nil {
			return nil, err
		}
		if miss != nil {
			if node.IsNullable(i) {
				return nil, nil
			}
			return nil, miss
		}
		cur = v
	}
	return cur, nil
}

// memberOf resolves one chain element against cur.  A property or method that does not exist is reported through
// miss rather than err, so that the caller can decide whether it short-circuits.
func (e *evaluator) memberOf(ctx Context, cur rt.Value, el ast.Expression) (rt.Value, *errors.Error, error) {
	switch n := el.(type) {
	case *ast.Identifier:
		v, found, err := e.property(cur, n.Ident)
		if err != nil {
			return nil, nil, err
		}
		if !found {
			return nil, errors.ErrorPropertyNotFound.At(n, n.Ident, cur.TypeName(),
				suggest(n.Ident, e.propertyNames(cur))), nil
		}
		return v, nil, nil
	case *ast.Call:
		return e.callMethod(ctx, cur, n)
	case *ast.Index:
		base, miss, err := e.memberOf(ctx, cur, n.DeepestLeft())
		if err != nil || miss != nil {
			return nil, miss, err
		}
		v, err := e.applySubscripts(ctx, n, base)
		return v, nil, err
	default:
		return nil, nil, errors.ErrorUnexpectedNode.At(el, el.GetKind())
	}
}

// property reads a property of any value: a field of an instance, or a property of a primitive.
func (e *evaluator) property(cur rt.Value, nm tokens.Name) (rt.Value, bool, error) {
	switch v := cur.(type) {
	case *rt.Instance:
		if nm == tokens.ParentVariable {
			return parentOf(v), true, nil
		}
		return e.getField(v, nm)
	case rt.NullValue:
		return nil, false, nil
	default:
		pv, found := e.lib.Property(cur, nm)
		return pv, found, nil
	}
}

// callMethod invokes a method of an instance or of a primitive value.
func (e *evaluator) callMethod(ctx Context, cur rt.Value, node *ast.Call) (rt.Value, *errors.Error, error) {
	nm, argc := node.Name.Ident, node.Argc()
	var fnc symbols.Function
	var found bool
	switch v := cur.(type) {
	case *rt.Instance:
		fnc, found = v.Class.LookupMethod(nm, argc)
	case rt.NullValue:
	default:
		fnc, found = e.lib.Method(cur, nm, argc)
	}
	if !found {
		return nil, errors.ErrorMethodNotFound.At(node, nm, argc, cur.TypeName(),
			suggest(nm, e.methodNames(cur))), nil
	}
	v, err := e.invoke(ctx, node, fnc, cur, node.Args, node.Named)
	return v, nil, err
}

// importMember resolves the element that follows an import alias inside the imported module.  Calls and constructors
// fall back to each other, since the decision between the two was made against the importing module.
func (e *evaluator) importMember(ctx Context, mod *symbols.Module,
	el ast.Expression) (rt.Value, *errors.Error, error) {
	switch n := el.(type) {
	case *ast.Identifier:
		v, found, err := e.lookupMember(mod, n.Ident)
		if err != nil || found {
			return v, nil, err
		}
		return nil, importMiss(n, n.Ident, mod), nil
	case *ast.Call:
		return e.importInvocation(ctx, mod, n, n.Name.Ident, n.Args, n.Named)
	case *ast.Constructor:
		if id, isid := n.Type.(*ast.Identifier); isid {
			return e.importInvocation(ctx, mod, n, id.Ident, n.Args, n.Named)
		}
	case *ast.Index:
		base, miss, err := e.importMember(ctx, mod, n.DeepestLeft())
		if err != nil || miss != nil {
			return nil, miss, err
		}
		v, err := e.applySubscripts(ctx, n, base)
		return v, nil, err
	}
	return nil, nil, errors.ErrorUnexpectedNode.At(el, el.GetKind())
}

func (e *evaluator) importInvocation(ctx Context, mod *symbols.Module, site ast.Node, nm tokens.Name,
	args []ast.Expression, named []*ast.Assignment) (rt.Value, *errors.Error, error) {
	if fnc, has := mod.LookupFunction(nm, len(args)+len(named)); has {
		v, err := e.invoke(ctx, site, fnc, nil, args, named)
		return v, nil, err
	}
	if class, has := mod.LookupClass(nm); has {
		v, err := e.construct(ctx, site, e.rt.Alloc.New(site, class), args, named)
		return v, nil, err
	}
	return nil, importMiss(site, nm, mod), nil
}

func importMiss(site ast.Node, nm tokens.Name, mod *symbols.Module) *errors.Error {
	return errors.ErrorImportNotFound.At(site, nm, mod, suggest(nm, mod.MemberNames()))
}

// propertyNames lists the properties of a value, for suggestions.
func (e *evaluator) propertyNames(v rt.Value) []tokens.Name {
	if inst, isinst := v.(*rt.Instance); isinst {
		return fieldNames(inst)
	}
	return e.lib.PropertyNames(v)
}

// methodNames lists the methods of a value, for suggestions.
func (e *evaluator) methodNames(v rt.Value) []tokens.Name {
	if inst, isinst := v.(*rt.Instance); isinst {
		return symbols.StableFunctionMap(inst.Class.Methods)
	}
	return e.lib.MethodNames(v)
}
