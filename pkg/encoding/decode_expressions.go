// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package encoding

import (
	"gopkg.in/yaml.v3"

	"github.com/regina-lang/regina/pkg/compiler/ast"
)

func (d *decoder) decodeExpression(n *yaml.Node) (ast.Expression, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return d.decodeScalarExpression(n)
	case yaml.SequenceNode:
		elems, err := d.decodeExpressions(n)
		if err != nil {
			return nil, err
		}
		return ast.NewListLiteral(d.loc(n), elems), nil
	case yaml.MappingNode:
		switch disc := discriminator(n); disc {
		case "id":
			m, err := d.mapping(n, "id")
			if err != nil {
				return nil, err
			}
			return d.decodeName(m.get("id"))
		case "str":
			m, err := d.mapping(n, "str")
			if err != nil {
				return nil, err
			}
			s, err := d.scalar(m.get("str"))
			if err != nil {
				return nil, err
			}
			return ast.NewStringLiteral(d.loc(n), s), nil
		case "link":
			return d.decodeLink(n)
		case "call", "new", "invoke":
			return d.decodeInvocation(n, disc)
		case "index":
			return d.decodeIndex(n)
		case "op":
			return d.decodeOperator(n)
		case "ternary":
			return d.decodeTernary(n)
		case "list":
			m, err := d.mapping(n, "list")
			if err != nil {
				return nil, err
			}
			elems, err := d.decodeExpressions(m.get("list"))
			if err != nil {
				return nil, err
			}
			return ast.NewListLiteral(d.loc(n), elems), nil
		case "dict":
			return d.decodeDict(n)
		default:
			return nil, d.errorf(n, "unrecognized expression '%v'", disc)
		}
	default:
		return nil, d.errorf(n, "expected an expression, got %v", describe(n))
	}
}

// decodeScalarExpression decodes literals and bare identifiers.  Booleans have no type of their own and become 1 or 0.
func (d *decoder) decodeScalarExpression(n *yaml.Node) (ast.Expression, error) {
	switch n.ShortTag() {
	case "!!null":
		return ast.NewNullLiteral(d.loc(n)), nil
	case "!!int":
		var v int64
		if err := n.Decode(&v); err != nil {
			return nil, d.errorf(n, "illegal integer '%v': %v", n.Value, err)
		}
		return ast.NewIntLiteral(d.loc(n), v), nil
	case "!!float":
		var v float64
		if err := n.Decode(&v); err != nil {
			return nil, d.errorf(n, "illegal number '%v': %v", n.Value, err)
		}
		return ast.NewDoubleLiteral(d.loc(n), v), nil
	case "!!bool":
		var v bool
		if err := n.Decode(&v); err != nil {
			return nil, d.errorf(n, "illegal boolean '%v': %v", n.Value, err)
		}
		if v {
			return ast.NewIntLiteral(d.loc(n), 1), nil
		}
		return ast.NewIntLiteral(d.loc(n), 0), nil
	case "!!str":
		if isQuoted(n) {
			return ast.NewStringLiteral(d.loc(n), n.Value), nil
		}
		return d.decodeName(n)
	default:
		return nil, d.errorf(n, "unsupported scalar tag %v", n.ShortTag())
	}
}

func (d *decoder) decodeExpressions(n *yaml.Node) ([]ast.Expression, error) {
	items, err := d.sequence(n)
	if err != nil {
		return nil, err
	}
	var exprs []ast.Expression
	for _, item := range items {
		expr, err := d.decodeExpression(item)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// decodeLink decodes `{link: [a, b, c], nullable: [1]}`.
func (d *decoder) decodeLink(n *yaml.Node) (*ast.Link, error) {
	m, err := d.mapping(n, "link", "nullable")
	if err != nil {
		return nil, err
	}
	elems, err := d.decodeExpressions(m.get("link"))
	if err != nil {
		return nil, err
	}
	if len(elems) < 2 {
		return nil, d.errorf(n, "a link needs at least two elements")
	}

	var nullable []int
	idxs, err := d.sequence(m.get("nullable"))
	if err != nil {
		return nil, err
	}
	for _, idx := range idxs {
		var i int
		if err := idx.Decode(&i); err != nil {
			return nil, d.errorf(idx, "nullable entries must be element indices")
		}
		if i < 1 || i >= len(elems) {
			return nil, d.errorf(idx, "nullable index %v is out of range", i)
		}
		nullable = append(nullable, i)
	}
	return ast.NewLink(d.loc(n), elems, nullable), nil
}

// decodeInvocation decodes `{call|new|invoke: name, args: [...]}`.
func (d *decoder) decodeInvocation(n *yaml.Node, disc string) (ast.Expression, error) {
	m, err := d.mapping(n, disc, "args")
	if err != nil {
		return nil, err
	}
	args, named, err := d.decodeArgs(m.get("args"))
	if err != nil {
		return nil, err
	}

	target := m.get(disc)
	if disc == "new" {
		t, err := d.decodeExpression(target)
		if err != nil {
			return nil, err
		}
		return ast.NewConstructor(d.loc(n), t, args, named), nil
	}

	name, err := d.decodeName(target)
	if err != nil {
		return nil, err
	}
	if disc == "call" {
		return ast.NewCall(d.loc(n), name, args, named), nil
	}
	return ast.NewInvocation(d.loc(n), name, args, named), nil
}

// decodeArgs splits an argument list into unnamed arguments and the `{set: name, to: value}` ones that follow them.
func (d *decoder) decodeArgs(n *yaml.Node) ([]ast.Expression, []*ast.Assignment, error) {
	items, err := d.sequence(n)
	if err != nil {
		return nil, nil, err
	}
	var args []ast.Expression
	var named []*ast.Assignment
	for _, item := range items {
		if item.Kind == yaml.MappingNode && discriminator(item) == "set" {
			asn, err := d.decodeAssignment(item)
			if err != nil {
				return nil, nil, err
			}
			if _, isid := asn.Name(); !isid {
				return nil, nil, d.errorf(item, "a named argument must name a parameter")
			}
			named = append(named, asn)
			continue
		}
		if len(named) > 0 {
			return nil, nil, d.errorf(item, "unnamed argument follows a named one")
		}
		arg, err := d.decodeExpression(item)
		if err != nil {
			return nil, nil, err
		}
		args = append(args, arg)
	}
	return args, named, nil
}

// decodeIndex decodes `{index: target, at: index}`.
func (d *decoder) decodeIndex(n *yaml.Node) (*ast.Index, error) {
	m, err := d.mapping(n, "index", "at")
	if err != nil {
		return nil, err
	}
	target, err := d.decodeExpression(m.get("index"))
	if err != nil {
		return nil, err
	}
	at, err := d.require(m, "at")
	if err != nil {
		return nil, err
	}
	index, err := d.decodeExpression(at)
	if err != nil {
		return nil, err
	}
	return ast.NewIndex(d.loc(n), target, index), nil
}

// decodeOperator decodes `{op: "+", left: a, right: b}` and `{op: "!", operand: a}`.
func (d *decoder) decodeOperator(n *yaml.Node) (ast.Expression, error) {
	m, err := d.mapping(n, "op", "left", "right", "operand")
	if err != nil {
		return nil, err
	}
	tok, err := d.scalar(m.get("op"))
	if err != nil {
		return nil, err
	}
	op := ast.Operator(tok)

	if operand := m.get("operand"); operand != nil {
		if m.get("left") != nil || m.get("right") != nil {
			return nil, d.errorf(n, "an operator takes either an operand or left and right")
		}
		if !ast.UnaryOperators[op] {
			return nil, d.errorf(n, "'%v' is not a unary operator", tok)
		}
		expr, err := d.decodeExpression(operand)
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOperator(d.loc(n), op, expr), nil
	}

	if !ast.BinaryOperators[op] {
		return nil, d.errorf(n, "'%v' is not a binary operator", tok)
	}
	l, err := d.require(m, "left")
	if err != nil {
		return nil, err
	}
	r, err := d.require(m, "right")
	if err != nil {
		return nil, err
	}
	left, err := d.decodeExpression(l)
	if err != nil {
		return nil, err
	}
	right, err := d.decodeExpression(r)
	if err != nil {
		return nil, err
	}
	return ast.NewBinaryOperator(d.loc(n), op, left, right), nil
}

// decodeTernary decodes `{ternary: cond, then: a, else: b}`.
func (d *decoder) decodeTernary(n *yaml.Node) (*ast.Ternary, error) {
	m, err := d.mapping(n, "ternary", "then", "else")
	if err != nil {
		return nil, err
	}
	var parts [3]ast.Expression
	for i, key := range []string{"ternary", "then", "else"} {
		v, err := d.require(m, key)
		if err != nil {
			return nil, err
		}
		if parts[i], err = d.decodeExpression(v); err != nil {
			return nil, err
		}
	}
	return ast.NewTernary(d.loc(n), parts[0], parts[1], parts[2]), nil
}

// decodeDict decodes `{dict: [{key: k, value: v}, ...]}`.
func (d *decoder) decodeDict(n *yaml.Node) (*ast.DictLiteral, error) {
	m, err := d.mapping(n, "dict")
	if err != nil {
		return nil, err
	}
	items, err := d.sequence(m.get("dict"))
	if err != nil {
		return nil, err
	}
	var entries []*ast.DictEntry
	for _, item := range items {
		em, err := d.mapping(item, "key", "value")
		if err != nil {
			return nil, err
		}
		k, err := d.require(em, "key")
		if err != nil {
			return nil, err
		}
		v, err := d.require(em, "value")
		if err != nil {
			return nil, err
		}
		key, err := d.decodeExpression(k)
		if err != nil {
			return nil, err
		}
		value, err := d.decodeExpression(v)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &ast.DictEntry{Key: key, Value: value})
	}
	return ast.NewDictLiteral(d.loc(n), entries), nil
}

