// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package symbols

import (
	"fmt"

	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/diag"
	"github.com/regina-lang/regina/pkg/tokens"
)

// Function is a callable symbol: required parameters first, then defaulted ones.
type Function interface {
	Symbol
	Params() []*ast.Identifier   // required parameters, in declaration order.
	Defaults() []*ast.Assignment // defaulted parameters, in declaration order, after the required ones.
	MinArity() int               // the number of required parameters.
	MaxArity() int               // the total number of parameters.
	Accepts(argc int) bool       // true if a call with argc arguments may select this function.
}

// ParamName returns the name of the ith parameter of f, counting defaulted parameters after required ones.
func ParamName(f Function, i int) tokens.Name {
	params := f.Params()
	if i < len(params) {
		return params[i].Ident
	}
	id, _ := f.Defaults()[i-len(params)].Name()
	return id.Ident
}

// ParamNames returns the names of all of f's parameters in declaration order.
func ParamNames(f Function) []tokens.Name {
	names := make([]tokens.Name, f.MaxArity())
	for i := range names {
		names[i] = ParamName(f, i)
	}
	return names
}

// UserFunction is a function or method declared in source.
type UserFunction struct {
	Node   *ast.Function
	Module *Module // the module whose file declares this function.
	Class  *Class  // the declaring class, if this is a method.
}

var _ Function = (*UserFunction)(nil)

func (node *UserFunction) Name() tokens.Name           { return node.Node.Name.Ident }
func (node *UserFunction) Tree() diag.Diagable         { return node.Node }
func (node *UserFunction) Params() []*ast.Identifier   { return node.Node.Params }
func (node *UserFunction) Defaults() []*ast.Assignment { return node.Node.Defaults }
func (node *UserFunction) MinArity() int               { return len(node.Node.Params) }
func (node *UserFunction) MaxArity() int               { return len(node.Node.Params) + len(node.Node.Defaults) }
func (node *UserFunction) Accepts(argc int) bool       { return accepts(node, argc) }
func (node *UserFunction) Body() *ast.Block            { return node.Node.Body }
func (node *UserFunction) String() string {
	if node.Class != nil {
		return fmt.Sprintf("%v.%v", node.Class.Name(), node.Name())
	}
	return string(node.Name())
}

// NewUserFunctionSym returns a new function symbol for the given node.  class is nil for module-level functions.
func NewUserFunctionSym(node *ast.Function, module *Module, class *Class) *UserFunction {
	return &UserFunction{Node: node, Module: module, Class: class}
}

// EmbeddedFunction is the signature of a function implemented by the host.  Defaults are ordinary expressions, so
// they are evaluated exactly like the defaults of user functions.
type EmbeddedFunction struct {
	Nm   tokens.Name
	Ps   []*ast.Identifier
	Defs []*ast.Assignment
}

var _ Function = (*EmbeddedFunction)(nil)

func (node *EmbeddedFunction) Name() tokens.Name           { return node.Nm }
func (node *EmbeddedFunction) Tree() diag.Diagable         { return nil }
func (node *EmbeddedFunction) Params() []*ast.Identifier   { return node.Ps }
func (node *EmbeddedFunction) Defaults() []*ast.Assignment { return node.Defs }
func (node *EmbeddedFunction) MinArity() int               { return len(node.Ps) }
func (node *EmbeddedFunction) MaxArity() int               { return len(node.Ps) + len(node.Defs) }
func (node *EmbeddedFunction) Accepts(argc int) bool       { return accepts(node, argc) }
func (node *EmbeddedFunction) String() string              { return string(node.Nm) }

// NewEmbeddedFunctionSym builds a host function signature.  Each default is a parameter name paired with the
// expression that computes its value.
func NewEmbeddedFunctionSym(name tokens.Name, params []tokens.Name, defaults ...Default) *EmbeddedFunction {
	fnc := &EmbeddedFunction{Nm: name}
	for _, p := range params {
		fnc.Ps = append(fnc.Ps, ast.NewIdentifier(nil, p))
	}
	for _, def := range defaults {
		fnc.Defs = append(fnc.Defs, ast.NewAssignment(nil, ast.NewIdentifier(nil, def.Name), def.Value))
	}
	return fnc
}

// Default is a defaulted parameter of an embedded function.
type Default struct {
	Name  tokens.Name
	Value ast.Expression
}

func accepts(f Function, argc int) bool {
	return f.MinArity() <= argc && argc <= f.MaxArity()
}

// Functions is an overload set: every function sharing a name within a module or class.
type Functions []Function

// Select picks the overload that accepts argc arguments.
func (fs Functions) Select(argc int) (Function, bool) {
	for _, f := range fs {
		if f.Accepts(argc) {
			return f, true
		}
	}
	return nil, false
}

// Overlaps returns the member of the set whose arity range intersects f's, if any.  Two such overloads could not
// be told apart by a call.
func (fs Functions) Overlaps(f Function) (Function, bool) {
	for _, other := range fs {
		if f.MinArity() <= other.MaxArity() && other.MinArity() <= f.MaxArity() {
			return other, true
		}
	}
	return nil, false
}

// FunctionMap maps names to overload sets.
type FunctionMap map[tokens.Name]Functions
