// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	"github.com/regina-lang/regina/pkg/compiler/symbols"
	"github.com/regina-lang/regina/pkg/eval/rt"
	"github.com/regina-lang/regina/pkg/tokens"
)

// Mode changes how ambiguous lookups are interpreted.
type Mode int

const (
	// ValueMode is ordinary evaluation: constructors return fully resolved instances.
	ValueMode Mode = iota
	// FunctionMode is used while binding constructor arguments.  Constructors nested in an argument resolve fully
	// even when the enclosing initializer is being evaluated in TypeMode.
	FunctionMode
	// TypeMode is used while evaluating field initializers: nested constructors return their instance with its
	// fields still pending, to be resolved once the owner stores it.
	TypeMode
)

func (m Mode) String() string {
	switch m {
	case ValueMode:
		return "VALUE"
	case FunctionMode:
		return "FUNCTION"
	case TypeMode:
		return "TYPE"
	default:
		return "?"
	}
}

// Context is the environment an expression is evaluated in: a chain of local frames, the instance that supplies
// `this`, the module whose names are in scope, and the resolution mode.  Contexts are values; every derivation
// returns a new context and leaves its source untouched.
type Context struct {
	frame    *rt.Frame
	instance *rt.Instance
	module   *symbols.Module
	mode     Mode
}

// NewContext creates the root context of a module's main block.
func NewContext(module *symbols.Module) Context {
	return Context{frame: rt.NewFrame(nil), module: module, mode: ValueMode}
}

func (ctx Context) Frame() *rt.Frame        { return ctx.frame }
func (ctx Context) Instance() *rt.Instance  { return ctx.instance }
func (ctx Context) Module() *symbols.Module { return ctx.module }
func (ctx Context) Mode() Mode              { return ctx.mode }

func (ctx Context) WithInstance(inst *rt.Instance) Context {
	ctx.instance = inst
	return ctx
}

func (ctx Context) WithMode(mode Mode) Context {
	ctx.mode = mode
	return ctx
}

// EnterScope pushes an empty frame chained to the current one.
func (ctx Context) EnterScope() Context {
	ctx.frame = rt.NewFrame(ctx.frame)
	return ctx
}

// NewActivation replaces the frame chain with a single empty frame, as a function call does.
func (ctx Context) NewActivation() Context {
	ctx.frame = rt.NewFrame(nil)
	return ctx
}

// LookupLocal searches the frame chain only.
func (ctx Context) LookupLocal(nm tokens.Name) (rt.Value, bool) {
	return ctx.frame.Lookup(nm)
}

// ResolveClass finds a class declared by the active module.
func (ctx Context) ResolveClass(nm tokens.Name) (*symbols.Class, bool) {
	return ctx.module.LookupClass(nm)
}
