// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package symbols

import (
	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/diag"
	"github.com/regina-lang/regina/pkg/tokens"
)

// Module is the namespace of one source file: its functions, classes, singleton objects and import aliases.  The
// global module holds the embedded functions and has no file.
type Module struct {
	Path      string
	Node      *ast.File
	Functions FunctionMap
	Classes   map[tokens.Name]*Class
	Objects   map[tokens.Name]*Class
	Imports   map[tokens.Name]*Module
}

var _ Symbol = (*Module)(nil)

func (node *Module) Name() tokens.Name { return tokens.Name(node.Path) }
func (node *Module) Tree() diag.Diagable {
	if node.Node == nil {
		return nil
	}
	return node.Node
}
func (node *Module) String() string { return node.Path }

// NewModuleSym returns a new, empty Module symbol for the given file.
func NewModuleSym(node *ast.File) *Module {
	var path string
	if node != nil {
		path = node.Path
	}
	return &Module{
		Path:      path,
		Node:      node,
		Functions: make(FunctionMap),
		Classes:   make(map[tokens.Name]*Class),
		Objects:   make(map[tokens.Name]*Class),
		Imports:   make(map[tokens.Name]*Module),
	}
}

// Main returns the top-level statements of the module's file, if it has any.
func (node *Module) Main() *ast.Block {
	if node.Node == nil {
		return nil
	}
	return node.Node.Main
}

// LookupFunction finds the function named nm that accepts argc arguments.
func (node *Module) LookupFunction(nm tokens.Name, argc int) (Function, bool) {
	return node.Functions[nm].Select(argc)
}

// LookupClass finds a class (not an object) by name.
func (node *Module) LookupClass(nm tokens.Name) (*Class, bool) {
	class, has := node.Classes[nm]
	return class, has
}

// LookupObject finds a singleton object by name.
func (node *Module) LookupObject(nm tokens.Name) (*Class, bool) {
	obj, has := node.Objects[nm]
	return obj, has
}

// LookupImport finds an imported module by its alias.
func (node *Module) LookupImport(alias tokens.Name) (*Module, bool) {
	imp, has := node.Imports[alias]
	return imp, has
}

// Declares returns true if nm names a class or object of this module.
func (node *Module) Declares(nm tokens.Name) bool {
	_, isclass := node.Classes[nm]
	_, isobj := node.Objects[nm]
	return isclass || isobj
}

// MemberNames returns every name declared by the module, for suggestions.
func (node *Module) MemberNames() []tokens.Name {
	names := StableFunctionMap(node.Functions)
	names = append(names, StableClassMap(node.Classes)...)
	names = append(names, StableClassMap(node.Objects)...)
	return append(names, StableModuleMap(node.Imports)...)
}
