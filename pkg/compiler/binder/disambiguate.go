// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package binder

import (
	"github.com/golang/glog"

	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/compiler/symbols"
)

// disambiguate replaces every Invocation in module's file with a Call or a Constructor.  An invocation whose name is
// a class of the module constructs it; anything else calls a function.  Inside links, invocations after the first
// element are method calls, except right after an import alias, where the imported module decides.
func (b *binder) disambiguate(module *symbols.Module) {
	glog.V(5).Infof("Disambiguating invocations of module '%v'", module)
	d := &disambiguator{module: module}
	ast.Walk(ast.NewVisitor(d.visit, nil), module.Node)
}

type disambiguator struct {
	module *symbols.Module
}

func (d *disambiguator) visit(node ast.Node) bool {
	// Links are settled first since their elements depend on position.  The general rule below then leaves them be.
	if link, islink := node.(*ast.Link); islink {
		d.settleLink(link)
	}
	ast.ReplaceChildren(node, func(expr ast.Expression) ast.Expression {
		return settle(d.module, expr)
	})
	return true
}

func (d *disambiguator) settleLink(link *ast.Link) {
	var imported *symbols.Module
	for i, elem := range link.Elements {
		switch {
		case i == 0:
			if id, isid := elem.(*ast.Identifier); isid {
				imported, _ = d.module.LookupImport(id.Ident)
			}
			link.Elements[i] = settleTarget(d.module, elem)
		case i == 1 && imported != nil:
			link.Elements[i] = settleTarget(imported, elem)
		default:
			link.Elements[i] = settleMethod(elem)
		}
	}
}

// settle decides a free-standing invocation against module's classes.
func settle(module *symbols.Module, expr ast.Expression) ast.Expression {
	inv, isinv := expr.(*ast.Invocation)
	if !isinv {
		return expr
	}
	if _, isclass := module.LookupClass(inv.Name.Ident); isclass {
		glog.V(7).Infof("Invocation '%v' constructs a class", inv.Name.Ident)
		return ast.NewConstructor(inv.Loc, inv.Name, inv.Args, inv.Named)
	}
	return ast.NewCall(inv.Loc, inv.Name, inv.Args, inv.Named)
}

// settleTarget settles expr, or the deepest-left target of a subscript chain, against module.
func settleTarget(module *symbols.Module, expr ast.Expression) ast.Expression {
	if idx, isidx := expr.(*ast.Index); isidx {
		innermost := deepestIndex(idx)
		innermost.Target = settle(module, innermost.Target)
		return expr
	}
	return settle(module, expr)
}

// settleMethod turns an invocation, or the deepest-left target of a subscript chain, into a method call.
func settleMethod(expr ast.Expression) ast.Expression {
	if idx, isidx := expr.(*ast.Index); isidx {
		innermost := deepestIndex(idx)
		innermost.Target = settleMethod(innermost.Target)
		return expr
	}
	if inv, isinv := expr.(*ast.Invocation); isinv {
		return ast.NewCall(inv.Loc, inv.Name, inv.Args, inv.Named)
	}
	return expr
}

// deepestIndex returns the innermost subscript of a chain, the one whose target is not itself a subscript.
func deepestIndex(idx *ast.Index) *ast.Index {
	for {
		next, isidx := idx.Target.(*ast.Index)
		if !isidx {
			return idx
		}
		idx = next
	}
}
