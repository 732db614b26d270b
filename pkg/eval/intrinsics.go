// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/compiler/errors"
	"github.com/regina-lang/regina/pkg/compiler/symbols"
	"github.com/regina-lang/regina/pkg/eval/rt"
	"github.com/regina-lang/regina/pkg/tokens"
)

// Invoker implements an intrinsic function's functionality.
type Invoker func(e *evaluator, args *Args) (rt.Value, error)

// Args are the bound arguments of an intrinsic call, one per parameter, defaults included.
type Args struct {
	Site   ast.Node   // the call, for error locations.
	This   rt.Value   // the receiver of a primitive method, or nil.
	Values []rt.Value // the argument values, in parameter order.
}

// String returns the ith argument, which must be a string.
func (args *Args) String(i int) (string, error) {
	s, iss := args.Values[i].(rt.String)
	if !iss {
		return "", errors.ErrorUnexpectedType.At(args.Site, "String", args.Values[i].TypeName())
	}
	return string(s), nil
}

// Int returns the ith argument, which must be an integer.
func (args *Args) Int(i int) (int64, error) {
	n, isint := args.Values[i].(rt.Int)
	if !isint {
		return 0, errors.ErrorUnexpectedType.At(args.Site, "Int", args.Values[i].TypeName())
	}
	return int64(n), nil
}

// Number returns the ith argument, which must be a number, widened to a float.
func (args *Args) Number(i int) (float64, error) {
	f, isnum := rt.AsFloat(args.Values[i])
	if !isnum {
		return 0, errors.ErrorUnexpectedType.At(args.Site, "Number", args.Values[i].TypeName())
	}
	return f, nil
}

// Intrinsic is a function implemented by the host.  Its signature is an ordinary embedded function symbol, so calls
// to it are bound exactly like calls to user functions.
type Intrinsic struct {
	*symbols.EmbeddedFunction
	Invoke Invoker
}

var _ symbols.Function = (*Intrinsic)(nil)

// NewIntrinsic returns an intrinsic with the given signature and implementation.
func NewIntrinsic(name tokens.Name, params []tokens.Name, invoke Invoker, defaults ...symbols.Default) *Intrinsic {
	return &Intrinsic{
		EmbeddedFunction: symbols.NewEmbeddedFunctionSym(name, params, defaults...),
		Invoke:           invoke,
	}
}

// Intrinsics contains the functions that every module can call without declaring or importing them.  A module's own
// functions take precedence over them.
var Intrinsics []*Intrinsic

func init() {
	x := []tokens.Name{"x"}
	path := []tokens.Name{"path"}
	Intrinsics = []*Intrinsic{
		NewIntrinsic("print", x, printValue),
		NewIntrinsic("except", x, raise),
		NewIntrinsic("input", nil, input),
		NewIntrinsic("write", []tokens.Name{"content", "path"}, writeFile),
		NewIntrinsic("read", path, readFile),
		NewIntrinsic("exists", path, fileExists),
		NewIntrinsic("delete", path, deleteFile),
		NewIntrinsic("test", x, test),
		NewIntrinsic("rnd", nil, random, intDefault("isInt", 0)),
		NewIntrinsic("seed", x, seed),
		NewIntrinsic("str", x, toStr),
		NewIntrinsic("int", x, toInt),
		NewIntrinsic("double", x, toDouble),
		NewIntrinsic("list", x, toList),
		NewIntrinsic("floatEquals", []tokens.Name{"first", "second"}, floatEquals,
			doubleDefault("epsilon", 1e-28), doubleDefault("absTh", 1e-7)),
		NewIntrinsic("type", []tokens.Name{"instance"}, typeOf),
		NewIntrinsic("range", []tokens.Name{"start", "end"}, makeRange, intDefault("step", 1)),
		NewIntrinsic("copy", []tokens.Name{"instance"}, copyValue, intDefault("deep", 1)),
	}
}

func intDefault(nm tokens.Name, v int64) symbols.Default {
	return symbols.Default{Name: nm, Value: ast.NewIntLiteral(nil, v)}
}

func doubleDefault(nm tokens.Name, v float64) symbols.Default {
	return symbols.Default{Name: nm, Value: ast.NewDoubleLiteral(nil, v)}
}

// NewGlobalModule returns the module that holds the intrinsics.  It has no file, and is searched after the calling
// module's own functions.
func NewGlobalModule() *symbols.Module {
	global := symbols.NewModuleSym(nil)
	for _, intrin := range Intrinsics {
		global.Functions[intrin.Name()] = append(global.Functions[intrin.Name()], intrin)
	}
	return global
}
