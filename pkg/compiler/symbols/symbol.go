// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

// Package symbols contains the bound declarations of a Regina program: modules (one per source file), the classes
// and singleton objects declared in them, and functions.  Symbols are built once by the binder and are read-only
// afterwards; all per-run state lives in the evaluator's runtime.
package symbols

import (
	"fmt"

	"github.com/regina-lang/regina/pkg/diag"
	"github.com/regina-lang/regina/pkg/tokens"
)

// Symbol is the base interface for all Regina symbol types.
type Symbol interface {
	Name() tokens.Name   // the simple name for this symbol.
	Tree() diag.Diagable // the diagnosable tree associated with this symbol.
	String() string      // implement Stringer for easy formatting (e.g., in error messages).
}

var _ fmt.Stringer = (Symbol)(nil)
