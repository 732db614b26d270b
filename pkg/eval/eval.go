// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

// Package eval is the tree-walking evaluator of Regina.  Everything is resolved while evaluating: identifiers through
// the scope chain, the current instance and the active module; dotted chains step by step; and class fields on
// demand, the first time something reads them.
package eval

import (
	"context"

	"github.com/golang/glog"
	"github.com/opentracing/opentracing-go"

	"github.com/regina-lang/regina/pkg/compiler"
	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/compiler/errors"
	"github.com/regina-lang/regina/pkg/compiler/symbols"
	"github.com/regina-lang/regina/pkg/eval/rt"
	"github.com/regina-lang/regina/pkg/util/contract"
)

// Interpreter can evaluate loaded Regina programs.
type Interpreter interface {
	// Runtime returns the host state shared by every evaluation.
	Runtime() *Runtime
	// Run evaluates the main block of the program's entry module.
	Run(ctx context.Context) error
	// EvaluateModule evaluates the main block of any loaded module.
	EvaluateModule(ctx context.Context, mod *symbols.Module) error
}

// New creates an interpreter for prog.
func New(prog *compiler.Program, opts Options) Interpreter {
	contract.Require(prog != nil, "prog")
	e := &evaluator{
		prog:  prog,
		rt:    NewRuntime(opts),
		hooks: opts.Hooks,
	}
	e.global = NewGlobalModule()
	e.lib = NewLibrary()
	return e
}

type evaluator struct {
	prog   *compiler.Program // the program being evaluated.
	rt     *Runtime          // streams, file system, random generator and singleton objects.
	hooks  Hooks             // callbacks for interesting events, if any.
	global *symbols.Module   // the embedded functions, visible from every module.
	lib    *Library          // the methods and properties of primitive values.
}

var _ Interpreter = (*evaluator)(nil)

func (e *evaluator) Runtime() *Runtime { return e.rt }

func (e *evaluator) Run(ctx context.Context) error {
	return e.EvaluateModule(ctx, e.prog.Entry)
}

func (e *evaluator) EvaluateModule(ctx context.Context, mod *symbols.Module) (err error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "evaluate")
	span.SetTag("module", mod.Path)
	defer span.Finish()

	glog.Infof("Evaluating module '%v'", mod)
	if glog.V(2) {
		defer func() {
			glog.V(2).Infof("Evaluation of module '%v' completed (%v instance(s) allocated, err=%v)",
				mod, e.rt.Alloc.Count(), err)
		}()
	}
	if e.hooks != nil {
		defer func() { e.hooks.OnDone(err) }()
	}

	main := mod.Main()
	if main == nil {
		return nil
	}
	uw, err := e.evalStatements(NewContext(mod), main)
	if err != nil {
		span.SetTag("error", true)
		return err
	}
	if uw != nil && !uw.Return() {
		return errors.ErrorJumpOutsideLoop.At(main, uw)
	}
	return nil
}

// Statements

// evalStatement evaluates a statement, returning any break, continue or return it produced.
func (e *evaluator) evalStatement(ctx Context, node ast.Statement) (*rt.Unwind, error) {
	switch n := node.(type) {
	case *ast.Block:
		return e.evalBlock(ctx, n)
	case *ast.Assignment:
		return nil, e.evalAssignment(ctx, n)
	case *ast.If:
		return e.evalIf(ctx, n)
	case *ast.While:
		return e.evalWhile(ctx, n)
	case *ast.Foreach:
		return e.evalForeach(ctx, n)
	case *ast.Return:
		return e.evalReturn(ctx, n)
	case *ast.Break:
		return rt.NewBreakUnwind(), nil
	case *ast.Continue:
		return rt.NewContinueUnwind(), nil
	case ast.Expression:
		_, err := e.evalExpression(ctx, n)
		return nil, err
	default:
		contract.Failf("Unrecognized statement node kind: %v", node.GetKind())
		return nil, nil
	}
}

// evalBlock evaluates a block in a scope of its own.
func (e *evaluator) evalBlock(ctx Context, node *ast.Block) (*rt.Unwind, error) {
	return e.evalStatements(ctx.EnterScope(), node)
}

// evalStatements evaluates the statements of a block in ctx, stopping at the first unwind.  A bare block directly
// inside another one is rejected: it almost always means a missing `if` or `while`.
func (e *evaluator) evalStatements(ctx Context, node *ast.Block) (*rt.Unwind, error) {
	for _, stmt := range node.Statements {
		if inner, isblock := stmt.(*ast.Block); isblock {
			return nil, errors.ErrorBlockWithinBlock.At(inner)
		}
		if uw, err := e.evalStatement(ctx, stmt); uw != nil || err != nil {
			return uw, err
		}
	}
	return nil, nil
}

func (e *evaluator) evalIf(ctx Context, node *ast.If) (*rt.Unwind, error) {
	cond, err := e.evalCondition(ctx, node.Condition)
	if err != nil {
		return nil, err
	}
	if cond {
		return e.evalBlock(ctx, node.Consequent)
	} else if node.Alternate != nil {
		return e.evalBlock(ctx, node.Alternate)
	}
	return nil, nil
}

func (e *evaluator) evalWhile(ctx Context, node *ast.While) (*rt.Unwind, error) {
	for {
		cond, err := e.evalCondition(ctx, node.Condition)
		if err != nil || !cond {
			return nil, err
		}
		uw, err := e.evalBlock(ctx, node.Body)
		if err != nil {
			return nil, err
		}
		if uw != nil {
			if uw.Break() {
				return nil, nil
			}
			if !uw.Continue() {
				return uw, nil
			}
		}
	}
}

func (e *evaluator) evalForeach(ctx Context, node *ast.Foreach) (*rt.Unwind, error) {
	source, err := e.evalExpression(ctx, node.Source)
	if err != nil {
		return nil, err
	}

	loop := ctx.EnterScope()
	name := node.Variable.Ident
	var uw *rt.Unwind
	body := func(item rt.Value) bool {
		loop.frame.Define(name, item)
		var res *rt.Unwind
		if res, err = e.evalBlock(loop, node.Body); err != nil {
			return false
		}
		if res != nil && !res.Continue() {
			if !res.Break() {
				uw = res
			}
			return false
		}
		return true
	}

	switch s := source.(type) {
	case *rt.Range:
		s.Each(func(i rt.Int) bool { return body(i) })
	case *rt.List:
		// Iterate over a snapshot, so that the body may change the list.
		for _, elem := range append([]rt.Value(nil), s.Elements...) {
			if !body(elem) {
				break
			}
		}
	case rt.String:
		for _, c := range string(s) {
			if !body(rt.String(c)) {
				break
			}
		}
	default:
		return nil, errors.ErrorNotIterable.At(node.Source, source.TypeName())
	}
	return uw, err
}

func (e *evaluator) evalReturn(ctx Context, node *ast.Return) (*rt.Unwind, error) {
	if node.Expression == nil {
		return rt.NewReturnUnwind(nil), nil
	}
	ret, err := e.evalExpression(ctx, node.Expression)
	if err != nil {
		return nil, err
	}
	return rt.NewReturnUnwind(ret), nil
}

// evalCondition evaluates an expression whose value must be a number; anything but zero is true.
func (e *evaluator) evalCondition(ctx Context, node ast.Expression) (bool, error) {
	v, err := e.evalExpression(ctx, node)
	if err != nil {
		return false, err
	}
	return truthy(node, v)
}

// Expressions

func (e *evaluator) evalExpression(ctx Context, node ast.Expression) (rt.Value, error) {
	switch n := node.(type) {
	case *ast.NullLiteral:
		return rt.Null, nil
	case *ast.IntLiteral:
		return rt.Int(n.Value), nil
	case *ast.DoubleLiteral:
		return rt.Double(n.Value), nil
	case *ast.StringLiteral:
		return rt.String(n.Value), nil
	case *ast.ListLiteral:
		return e.evalListLiteral(ctx, n)
	case *ast.DictLiteral:
		return e.evalDictLiteral(ctx, n)
	case *ast.Identifier:
		return e.evalIdentifier(ctx, n)
	case *ast.Link:
		return e.evalLink(ctx, n)
	case *ast.Index:
		return e.evalIndex(ctx, n)
	case *ast.Call:
		return e.evalCall(ctx, n)
	case *ast.Constructor:
		return e.evalConstructor(ctx, n)
	case *ast.Invocation:
		return nil, errors.ErrorUnboundInvocation.At(n, n.Name.Ident)
	case *ast.BinaryOperator:
		return e.evalBinaryOperator(ctx, n)
	case *ast.UnaryOperator:
		return e.evalUnaryOperator(ctx, n)
	case *ast.Ternary:
		cond, err := e.evalCondition(ctx, n.Condition)
		if err != nil {
			return nil, err
		}
		if cond {
			return e.evalExpression(ctx, n.Consequent)
		}
		return e.evalExpression(ctx, n.Alternate)
	default:
		contract.Failf("Unrecognized expression node kind: %v", node.GetKind())
		return nil, nil
	}
}

func (e *evaluator) evalListLiteral(ctx Context, node *ast.ListLiteral) (rt.Value, error) {
	list := rt.NewList()
	for _, elem := range node.Elements {
		v, err := e.evalExpression(ctx, elem)
		if err != nil {
			return nil, err
		}
		list.Elements = append(list.Elements, v)
	}
	return list, nil
}

func (e *evaluator) evalDictLiteral(ctx Context, node *ast.DictLiteral) (rt.Value, error) {
	dict := rt.NewDictionary()
	for _, entry := range node.Entries {
		k, err := e.evalExpression(ctx, entry.Key)
		if err != nil {
			return nil, err
		}
		v, err := e.evalExpression(ctx, entry.Value)
		if err != nil {
			return nil, err
		}
		dict.Set(k, v)
	}
	return dict, nil
}

func (e *evaluator) evalIdentifier(ctx Context, node *ast.Identifier) (rt.Value, error) {
	v, found, err := e.lookupIdentifier(ctx, node.Ident)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.ErrorIdentifierNotFound.At(node, node.Ident, suggest(node.Ident, e.visibleNames(ctx)))
	}
	return v, nil
}

func (e *evaluator) evalAssignment(ctx Context, node *ast.Assignment) error {
	v, err := e.evalExpression(ctx, node.Right)
	if err != nil {
		return err
	}
	return e.assign(ctx, node.Left, v)
}
