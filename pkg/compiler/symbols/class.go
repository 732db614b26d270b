// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package symbols

import (
	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/diag"
	"github.com/regina-lang/regina/pkg/tokens"
)

// Class is a fully bound class or singleton object.  It is the immutable template that instances are made from:
// instances keep their own field values, while the class only knows the initializers.
type Class struct {
	Node    *ast.Class
	Parent  *Module
	Inits   []*ast.Assignment               // every field initializer, in declaration order.
	Fields  map[tokens.Name]*ast.Assignment // initializers that declare a field by name.
	Names   []tokens.Name                   // declared field names, in declaration order.
	Links   []*ast.Assignment               // initializers that assign through a link, e.g. `a.b = 1`.
	Methods FunctionMap
}

var _ Symbol = (*Class)(nil)

func (node *Class) Name() tokens.Name   { return node.Node.Name.Ident }
func (node *Class) Tree() diag.Diagable { return node.Node }
func (node *Class) Object() bool        { return node.Node.Object }
func (node *Class) String() string      { return string(node.Name()) }

// NewClassSym returns a new Class symbol with the given node and parent, and no members.
func NewClassSym(node *ast.Class, parent *Module) *Class {
	return &Class{
		Node:    node,
		Parent:  parent,
		Fields:  make(map[tokens.Name]*ast.Assignment),
		Methods: make(FunctionMap),
	}
}

// HasField returns true if the class declares a field named nm.
func (node *Class) HasField(nm tokens.Name) bool {
	_, has := node.Fields[nm]
	return has
}

// LookupMethod finds the method named nm that accepts argc arguments.
func (node *Class) LookupMethod(nm tokens.Name, argc int) (Function, bool) {
	return node.Methods[nm].Select(argc)
}

// HasMethod returns true if the class declares any method named nm, regardless of arity.
func (node *Class) HasMethod(nm tokens.Name) bool {
	return len(node.Methods[nm]) > 0
}

// MemberNames returns every field and method name, for suggestions.
func (node *Class) MemberNames() []tokens.Name {
	names := append([]tokens.Name(nil), node.Names...)
	return append(names, StableFunctionMap(node.Methods)...)
}
