// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/eval/rt"
	"github.com/regina-lang/regina/pkg/tokens"
)

// dependency is a pending initializer that some expression reads.
type dependency struct {
	owner *rt.Instance
	asn   *ast.Assignment
}

// findInitializerDependency returns the first pending initializer that evaluating asn would read.  For an initializer
// that assigns through a link, the link's path is searched before the value.
func (e *evaluator) findInitializerDependency(ctx Context, inst *rt.Instance,
	asn *ast.Assignment) (dependency, bool, error) {
	if link, islink := asn.Left.(*ast.Link); islink {
		dep, found, err := e.findUnresolvedLink(ctx, inst, link, len(link.Elements)-1)
		if err != nil || found {
			return dep, found, err
		}
	}
	return e.findUnresolved(ctx, inst, asn.Right)
}

// findUnresolved searches expr for a read of a field that is still pending.  Only reads that can be decided without
// side effects are found; function bodies and method results are left to on-demand resolution.
func (e *evaluator) findUnresolved(ctx Context, inst *rt.Instance, expr ast.Expression) (dependency, bool, error) {
	switch n := expr.(type) {
	case nil:
		return dependency{}, false, nil
	case *ast.Identifier:
		if _, local := ctx.LookupLocal(n.Ident); local {
			return dependency{}, false, nil
		}
		if asn, pending := inst.Pending(n.Ident); pending {
			return dependency{owner: inst, asn: asn}, true, nil
		}
		return dependency{}, false, nil
	case *ast.Link:
		return e.findUnresolvedLink(ctx, inst, n, len(n.Elements))
	case *ast.Index:
		return e.findUnresolvedAll(ctx, inst, append([]ast.Expression{n.Target}, n.Index)...)
	case *ast.Call:
		return e.findUnresolvedArgs(ctx, inst, n.Args, n.Named)
	case *ast.Constructor:
		dep, found, err := e.findUnresolved(ctx, inst, n.Type)
		if err != nil || found {
			return dep, found, err
		}
		return e.findUnresolvedArgs(ctx, inst, n.Args, n.Named)
	case *ast.BinaryOperator:
		return e.findUnresolvedAll(ctx, inst, n.Left, n.Right)
	case *ast.UnaryOperator:
		return e.findUnresolved(ctx, inst, n.Operand)
	case *ast.ListLiteral:
		return e.findUnresolvedAll(ctx, inst, n.Elements...)
	case *ast.DictLiteral:
		for _, entry := range n.Entries {
			dep, found, err := e.findUnresolvedAll(ctx, inst, entry.Key, entry.Value)
			if err != nil || found {
				return dep, found, err
			}
		}
		return dependency{}, false, nil
	case *ast.Ternary:
		// Which branch runs is unknown until the condition is evaluated, so the branches resolve on demand.
		return e.findUnresolved(ctx, inst, n.Condition)
	default:
		return dependency{}, false, nil
	}
}

func (e *evaluator) findUnresolvedAll(ctx Context, inst *rt.Instance,
	exprs ...ast.Expression) (dependency, bool, error) {
	for _, expr := range exprs {
		dep, found, err := e.findUnresolved(ctx, inst, expr)
		if err != nil || found {
			return dep, found, err
		}
	}
	return dependency{}, false, nil
}

func (e *evaluator) findUnresolvedArgs(ctx Context, inst *rt.Instance, args []ast.Expression,
	named []*ast.Assignment) (dependency, bool, error) {
	dep, found, err := e.findUnresolvedAll(ctx, inst, args...)
	if err != nil || found {
		return dep, found, err
	}
	for _, arg := range named {
		if dep, found, err := e.findUnresolved(ctx, inst, arg.Right); err != nil || found {
			return dep, found, err
		}
	}
	return dependency{}, false, nil
}

// findUnresolvedLink follows the elements [0, upto) of a link through resolved fields, and reports the first pending
// field it reaches.  The walk stops at anything it cannot follow without evaluating it, such as a method call.
func (e *evaluator) findUnresolvedLink(ctx Context, inst *rt.Instance, link *ast.Link,
	upto int) (dependency, bool, error) {
	var cur *rt.Instance
	switch root := link.Elements[0].(type) {
	case *ast.Identifier:
		if _, local := ctx.LookupLocal(root.Ident); local {
			return dependency{}, false, nil
		}
		switch root.Ident {
		case tokens.ThisVariable:
			cur = inst
		case tokens.ParentVariable:
			cur = inst.Parent
		default:
			if asn, pending := inst.Pending(root.Ident); pending {
				return dependency{owner: inst, asn: asn}, true, nil
			}
			v, _ := inst.Get(root.Ident)
			cur, _ = v.(*rt.Instance)
		}
	default:
		dep, found, err := e.findUnresolved(ctx, inst, root)
		if err != nil || found {
			return dep, found, err
		}
	}

	for i := 1; i < upto && cur != nil; i++ {
		var nm tokens.Name
		switch el := link.Elements[i].(type) {
		case *ast.Identifier:
			nm = el.Ident
		case *ast.Index:
			dep, found, err := e.findUnresolvedAll(ctx, inst, el.Subscripts()...)
			if err != nil || found {
				return dep, found, err
			}
			if id, isid := el.DeepestLeft().(*ast.Identifier); isid {
				if asn, pending := cur.Pending(id.Ident); pending {
					return dependency{owner: cur, asn: asn}, true, nil
				}
			}
			return dependency{}, false, nil
		case *ast.Call:
			return e.findUnresolvedArgs(ctx, inst, el.Args, el.Named)
		default:
			return dependency{}, false, nil
		}

		if nm == tokens.ParentVariable {
			cur = cur.Parent
			continue
		}
		if asn, pending := cur.Pending(nm); pending {
			return dependency{owner: cur, asn: asn}, true, nil
		}
		v, _ := cur.Get(nm)
		cur, _ = v.(*rt.Instance)
	}
	return dependency{}, false, nil
}
