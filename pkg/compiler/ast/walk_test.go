// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/regina-lang/regina/pkg/tokens"
)

func id(name string) *Identifier { return NewIdentifier(nil, tokens.Name(name)) }

// sample builds `foreach i in range(0, n) { total = total + p?.x[i] }`.
func sample() *Block {
	elem := NewIndex(nil, id("x"), id("i"))
	link := NewLink(nil, []Expression{id("p"), elem}, []int{1})
	sum := NewBinaryOperator(nil, OpAdd, id("total"), link)
	body := NewBlock(nil, []Statement{NewAssignment(nil, id("total"), sum)})
	src := NewInvocation(nil, id("range"), []Expression{NewIntLiteral(nil, 0), id("n")}, nil)
	return NewBlock(nil, []Statement{NewForeach(nil, id("i"), src, body)})
}

func TestWalkOrder(t *testing.T) {
	t.Parallel()

	var idents []string
	var kinds []NodeKind
	Walk(NewVisitor(func(n Node) bool {
		if ident, isid := n.(*Identifier); isid {
			idents = append(idents, string(ident.Ident))
		}
		return true
	}, func(n Node) {
		kinds = append(kinds, n.GetKind())
	}), sample())

	assert.Equal(t, []string{"i", "range", "n", "total", "total", "p", "x", "i"}, idents)
	// Post-order places the outermost block last.
	assert.Equal(t, BlockKind, kinds[len(kinds)-1])
}

func TestWalkSkipsChildren(t *testing.T) {
	t.Parallel()

	var count int
	Walk(NewVisitor(func(n Node) bool {
		count++
		_, isfor := n.(*Foreach)
		return !isfor
	}, nil), sample())
	assert.Equal(t, 2, count)
}

func TestReplaceChildren(t *testing.T) {
	t.Parallel()

	block := sample()
	loop := block.Statements[0].(*Foreach)

	ReplaceChildren(loop, func(e Expression) Expression {
		if inv, isinv := e.(*Invocation); isinv {
			return NewCall(inv.Loc, inv.Name, inv.Args, inv.Named)
		}
		return e
	})

	call, iscall := loop.Source.(*Call)
	if assert.True(t, iscall) {
		assert.Equal(t, tokens.Name("range"), call.Name.Ident)
		assert.Equal(t, 2, call.Argc())
	}
}

func TestIndexChains(t *testing.T) {
	t.Parallel()

	// a[1][2]
	inner := NewIndex(nil, id("a"), NewIntLiteral(nil, 1))
	outer := NewIndex(nil, inner, NewIntLiteral(nil, 2))

	left, isid := outer.DeepestLeft().(*Identifier)
	assert.True(t, isid)
	assert.Equal(t, tokens.Name("a"), left.Ident)

	subs := outer.Subscripts()
	assert.Len(t, subs, 2)
	assert.Equal(t, int64(1), subs[0].(*IntLiteral).Value)
	assert.Equal(t, int64(2), subs[1].(*IntLiteral).Value)
}

func TestWhere(t *testing.T) {
	t.Parallel()

	n := NewIdentifier(&Location{File: "main.yaml", Start: Position{Line: 3, Column: 9}}, "x")
	doc, loc := n.Where()
	assert.Equal(t, "main.yaml", doc.File)
	assert.Equal(t, 3, loc.Start.Line)
	assert.Equal(t, 9, loc.Start.Column)

	doc, loc = id("y").Where()
	assert.Nil(t, doc)
	assert.Nil(t, loc)
}
