// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package encoding

import (
	"gopkg.in/yaml.v3"

	"github.com/regina-lang/regina/pkg/compiler/ast"
)

// decodeBlock decodes a sequence of statements.
func (d *decoder) decodeBlock(n *yaml.Node) (*ast.Block, error) {
	items, err := d.sequence(n)
	if err != nil {
		return nil, err
	}
	block := ast.NewBlock(d.loc(n), nil)
	for _, item := range items {
		stmt, err := d.decodeStatement(item)
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	return block, nil
}

func (d *decoder) decodeStatement(n *yaml.Node) (ast.Statement, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if !isQuoted(n) {
			switch n.Value {
			case "break":
				return ast.NewBreak(d.loc(n)), nil
			case "continue":
				return ast.NewContinue(d.loc(n)), nil
			case "return":
				return ast.NewReturn(d.loc(n), nil), nil
			}
		}
	case yaml.MappingNode:
		switch discriminator(n) {
		case "set":
			return d.decodeAssignment(n)
		case "if":
			return d.decodeIf(n)
		case "while":
			return d.decodeWhile(n)
		case "foreach":
			return d.decodeForeach(n)
		case "return":
			return d.decodeReturn(n)
		case "block":
			m, err := d.mapping(n, "block")
			if err != nil {
				return nil, err
			}
			return d.decodeBlock(m.get("block"))
		}
	case yaml.SequenceNode:
		return nil, d.errorf(n, "a bare sequence is not a statement; use `block` or `list`")
	}
	return d.decodeExpression(n)
}

// decodeAssignment decodes `{set: target, to: value}`.
func (d *decoder) decodeAssignment(n *yaml.Node) (*ast.Assignment, error) {
	m, err := d.mapping(n, "set", "to")
	if err != nil {
		return nil, err
	}
	target, err := d.require(m, "set")
	if err != nil {
		return nil, err
	}
	value, err := d.require(m, "to")
	if err != nil {
		return nil, err
	}
	left, err := d.decodeExpression(target)
	if err != nil {
		return nil, err
	}
	right, err := d.decodeExpression(value)
	if err != nil {
		return nil, err
	}
	return ast.NewAssignment(d.loc(n), left, right), nil
}

func (d *decoder) decodeIf(n *yaml.Node) (*ast.If, error) {
	m, err := d.mapping(n, "if", "then", "else")
	if err != nil {
		return nil, err
	}
	cond, err := d.decodeExpression(m.get("if"))
	if err != nil {
		return nil, err
	}
	then, err := d.require(m, "then")
	if err != nil {
		return nil, err
	}
	cons, err := d.decodeBlock(then)
	if err != nil {
		return nil, err
	}
	var alt *ast.Block
	if els := m.get("else"); els != nil {
		if els.Kind == yaml.MappingNode && discriminator(els) == "if" {
			// else-if chains nest as a block holding a single if.
			elif, err := d.decodeIf(els)
			if err != nil {
				return nil, err
			}
			alt = ast.NewBlock(d.loc(els), []ast.Statement{elif})
		} else if alt, err = d.decodeBlock(els); err != nil {
			return nil, err
		}
	}
	return ast.NewIf(d.loc(n), cond, cons, alt), nil
}

func (d *decoder) decodeWhile(n *yaml.Node) (*ast.While, error) {
	m, err := d.mapping(n, "while", "do")
	if err != nil {
		return nil, err
	}
	cond, err := d.decodeExpression(m.get("while"))
	if err != nil {
		return nil, err
	}
	do, err := d.require(m, "do")
	if err != nil {
		return nil, err
	}
	body, err := d.decodeBlock(do)
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(d.loc(n), cond, body), nil
}

func (d *decoder) decodeForeach(n *yaml.Node) (*ast.Foreach, error) {
	m, err := d.mapping(n, "foreach", "in", "do")
	if err != nil {
		return nil, err
	}
	variable, err := d.decodeName(m.get("foreach"))
	if err != nil {
		return nil, err
	}
	in, err := d.require(m, "in")
	if err != nil {
		return nil, err
	}
	source, err := d.decodeExpression(in)
	if err != nil {
		return nil, err
	}
	do, err := d.require(m, "do")
	if err != nil {
		return nil, err
	}
	body, err := d.decodeBlock(do)
	if err != nil {
		return nil, err
	}
	return ast.NewForeach(d.loc(n), variable, source, body), nil
}

func (d *decoder) decodeReturn(n *yaml.Node) (*ast.Return, error) {
	m, err := d.mapping(n, "return")
	if err != nil {
		return nil, err
	}
	value := m.get("return")
	if isNull(value) && !isQuoted(value) && value.Value == "" {
		return ast.NewReturn(d.loc(n), nil), nil
	}
	expr, err := d.decodeExpression(value)
	if err != nil {
		return nil, err
	}
	return ast.NewReturn(d.loc(n), expr), nil
}
