// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	"math"

	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/compiler/errors"
	"github.com/regina-lang/regina/pkg/eval/rt"
)

func (e *evaluator) evalBinaryOperator(ctx Context, node *ast.BinaryOperator) (rt.Value, error) {
	left, err := e.evalExpression(ctx, node.Left)
	if err != nil {
		return nil, err
	}

	// Logical operators short-circuit, and so evaluate their right side only when needed.
	if node.Operator == ast.OpAnd || node.Operator == ast.OpOr {
		l, err := truthy(node.Left, left)
		if err != nil {
			return nil, err
		}
		if (node.Operator == ast.OpAnd) != l {
			return rt.Bool(l), nil
		}
		right, err := e.evalExpression(ctx, node.Right)
		if err != nil {
			return nil, err
		}
		r, err := truthy(node.Right, right)
		if err != nil {
			return nil, err
		}
		return rt.Bool(r), nil
	}

	right, err := e.evalExpression(ctx, node.Right)
	if err != nil {
		return nil, err
	}
	return binary(node, node.Operator, left, right)
}

// binary applies a non-logical binary operator.
func binary(site ast.Node, op ast.Operator, left rt.Value, right rt.Value) (rt.Value, error) {
	switch op {
	case ast.OpEq:
		return rt.Bool(rt.Equals(left, right)), nil
	case ast.OpNotEq:
		return rt.Bool(!rt.Equals(left, right)), nil
	case ast.OpLt, ast.OpGt, ast.OpLtEq, ast.OpGtEq:
		return compare(site, op, left, right)
	case ast.OpAdd:
		if l, isl := left.(*rt.List); isl {
			if r, isr := right.(*rt.List); isr {
				elems := make([]rt.Value, 0, len(l.Elements)+len(r.Elements))
				elems = append(elems, l.Elements...)
				return rt.NewList(append(elems, r.Elements...)...), nil
			}
		}
		_, ls := left.(rt.String)
		_, rs := right.(rt.String)
		if ls || rs {
			return rt.String(left.String() + right.String()), nil
		}
	}

	li, lint := left.(rt.Int)
	ri, rint := right.(rt.Int)
	if lint && rint {
		return intArithmetic(site, op, li, ri, left, right)
	}
	lf, lnum := rt.AsFloat(left)
	rf, rnum := rt.AsFloat(right)
	if lnum && rnum {
		return floatArithmetic(site, op, lf, rf, left, right)
	}
	return nil, mismatch(site, op, left, right)
}

func intArithmetic(site ast.Node, op ast.Operator, l rt.Int, r rt.Int,
	left rt.Value, right rt.Value) (rt.Value, error) {
	switch op {
	case ast.OpAdd:
		return l + r, nil
	case ast.OpSub:
		return l - r, nil
	case ast.OpMul:
		return l * r, nil
	case ast.OpDiv:
		if r == 0 {
			return nil, errors.ErrorDivisionByZero.At(site)
		}
		return rt.Double(float64(l) / float64(r)), nil
	case ast.OpIntDiv:
		if r == 0 {
			return nil, errors.ErrorDivisionByZero.At(site)
		}
		q := l / r
		if (l%r != 0) && ((l < 0) != (r < 0)) {
			q-- // round toward negative infinity.
		}
		return q, nil
	case ast.OpMod:
		if r == 0 {
			return nil, errors.ErrorDivisionByZero.At(site)
		}
		return l % r, nil
	}
	return nil, mismatch(site, op, left, right)
}

func floatArithmetic(site ast.Node, op ast.Operator, l float64, r float64,
	left rt.Value, right rt.Value) (rt.Value, error) {
	switch op {
	case ast.OpAdd:
		return rt.Double(l + r), nil
	case ast.OpSub:
		return rt.Double(l - r), nil
	case ast.OpMul:
		return rt.Double(l * r), nil
	case ast.OpDiv:
		if r == 0 {
			return nil, errors.ErrorDivisionByZero.At(site)
		}
		return rt.Double(l / r), nil
	case ast.OpIntDiv:
		if r == 0 {
			return nil, errors.ErrorDivisionByZero.At(site)
		}
		return rt.Double(math.Floor(l / r)), nil
	case ast.OpMod:
		if r == 0 {
			return nil, errors.ErrorDivisionByZero.At(site)
		}
		return rt.Double(math.Mod(l, r)), nil
	}
	return nil, mismatch(site, op, left, right)
}

// compare orders two numbers or two strings.
func compare(site ast.Node, op ast.Operator, left rt.Value, right rt.Value) (rt.Value, error) {
	var c int
	if ls, isl := left.(rt.String); isl {
		rs, isr := right.(rt.String)
		if !isr {
			return nil, mismatch(site, op, left, right)
		}
		switch {
		case ls < rs:
			c = -1
		case ls > rs:
			c = 1
		}
	} else {
		lf, lnum := rt.AsFloat(left)
		rf, rnum := rt.AsFloat(right)
		if !lnum || !rnum {
			return nil, mismatch(site, op, left, right)
		}
		switch {
		case lf < rf:
			c = -1
		case lf > rf:
			c = 1
		}
	}

	switch op {
	case ast.OpLt:
		return rt.Bool(c < 0), nil
	case ast.OpGt:
		return rt.Bool(c > 0), nil
	case ast.OpLtEq:
		return rt.Bool(c <= 0), nil
	default:
		return rt.Bool(c >= 0), nil
	}
}

func mismatch(site ast.Node, op ast.Operator, left rt.Value, right rt.Value) error {
	return errors.ErrorBinaryOperatorMismatch.At(site, op, left.TypeName(), right.TypeName())
}

func (e *evaluator) evalUnaryOperator(ctx Context, node *ast.UnaryOperator) (rt.Value, error) {
	v, err := e.evalExpression(ctx, node.Operand)
	if err != nil {
		return nil, err
	}
	switch node.Operator {
	case ast.OpSub:
		switch n := v.(type) {
		case rt.Int:
			return -n, nil
		case rt.Double:
			return -n, nil
		}
	case ast.OpNot:
		if rt.IsNumber(v) {
			b, _ := truthy(node, v)
			return rt.Bool(!b), nil
		}
	}
	return nil, errors.ErrorUnaryOperatorMismatch.At(node, node.Operator, v.TypeName())
}

// truthy decides a condition: numbers are true when they are not zero, and anything else is an error.
func truthy(site ast.Node, v rt.Value) (bool, error) {
	f, isnum := rt.AsFloat(v)
	if !isnum {
		return false, errors.ErrorConditionNotNumeric.At(site, v.TypeName())
	}
	return f != 0, nil
}
