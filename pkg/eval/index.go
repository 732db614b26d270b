// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	"math"
	"unicode/utf8"

	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/compiler/errors"
	"github.com/regina-lang/regina/pkg/eval/rt"
)

func (e *evaluator) evalIndex(ctx Context, node *ast.Index) (rt.Value, error) {
	base, err := e.evalExpression(ctx, node.DeepestLeft())
	if err != nil {
		return nil, err
	}
	return e.applySubscripts(ctx, node, base)
}

// applySubscripts applies every subscript of a chain such as `x[1][2]` to the value of its deepest left.
func (e *evaluator) applySubscripts(ctx Context, node *ast.Index, base rt.Value) (rt.Value, error) {
	cur := base
	for _, sub := range node.Subscripts() {
		idx, err := e.evalExpression(ctx, sub)
		if err != nil {
			return nil, err
		}
		if cur, err = subscript(sub, cur, idx); err != nil {
			return nil, err
		}
	}
	return cur, nil
}

// subscript reads container[idx].  Lists, strings and ranges take an integer index; a dictionary returns null for a
// missing key.
func subscript(site ast.Node, container rt.Value, idx rt.Value) (rt.Value, error) {
	switch c := container.(type) {
	case *rt.List:
		i, err := position(site, idx, len(c.Elements))
		if err != nil {
			return nil, err
		}
		return c.Elements[i], nil
	case rt.String:
		runes := []rune(string(c))
		i, err := position(site, idx, len(runes))
		if err != nil {
			return nil, err
		}
		return rt.String(runes[i]), nil
	case *rt.Range:
		n := c.Len()
		if n > math.MaxInt {
			n = math.MaxInt
		}
		i, err := position(site, idx, int(n))
		if err != nil {
			return nil, err
		}
		return rt.Int(c.Start + int64(i)*c.Step), nil
	case *rt.Dictionary:
		if v, has := c.Get(idx); has {
			return v, nil
		}
		return rt.Null, nil
	default:
		return nil, errors.ErrorNotIndexable.At(site, container.TypeName())
	}
}

// setSubscript evaluates the index of node and assigns container[index] = v.
func (e *evaluator) setSubscript(ctx Context, node *ast.Index, container rt.Value, v rt.Value) error {
	idx, err := e.evalExpression(ctx, node.Index)
	if err != nil {
		return err
	}
	switch c := container.(type) {
	case *rt.List:
		i, err := position(node.Index, idx, len(c.Elements))
		if err != nil {
			return err
		}
		c.Elements[i] = v
		return nil
	case *rt.Dictionary:
		c.Set(idx, v)
		return nil
	case rt.String, *rt.Range:
		return errors.ErrorNotAssignableIndex.At(node, container.TypeName())
	default:
		return errors.ErrorNotIndexable.At(node, container.TypeName())
	}
}

// position checks that idx is an integer index into a sequence of length n.
func position(site ast.Node, idx rt.Value, n int) (int, error) {
	i, isint := idx.(rt.Int)
	if !isint {
		return 0, errors.ErrorUnexpectedType.At(site, "Int", idx.TypeName())
	}
	if i < 0 || int64(i) >= int64(n) {
		return 0, errors.ErrorIndexOutOfRange.At(site, i, n)
	}
	return int(i), nil
}

// runeCount is the length of a string as the language sees it.
func runeCount(s rt.String) int { return utf8.RuneCountInString(string(s)) }
