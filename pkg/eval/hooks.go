// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	"github.com/regina-lang/regina/pkg/compiler/symbols"
	"github.com/regina-lang/regina/pkg/diag"
	"github.com/regina-lang/regina/pkg/eval/rt"
	"github.com/regina-lang/regina/pkg/tokens"
)

// Hooks is a set of callbacks that can be used to hook into interesting interpreter events.
type Hooks interface {
	// OnEnterFunction is invoked whenever we enter a function, after its arguments are bound.  The returned function,
	// if any, is invoked when the function returns.  Returning an error aborts the call.
	OnEnterFunction(fnc symbols.Function, args []rt.Value) (func(), error)
	// OnObjectInit is invoked after an instance has been constructed and its before hook has run.  The diagnostics
	// tree is the AST node responsible for the construction.
	OnObjectInit(tree diag.Diagable, inst *rt.Instance)
	// OnFieldResolved is invoked each time a field moves from pending to resolved.
	OnFieldResolved(inst *rt.Instance, nm tokens.Name, v rt.Value)
	// OnDone is invoked after interpretation has completed.  It is given the error that ended it, if any.
	OnDone(err error)
}
