// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package ast

// Statement is an element inside of an executable block.
type Statement interface {
	Node
	statement()
}

type StatementNode struct {
	NodeValue
}

func (node *StatementNode) statement() {}

// Assignment stores the value of Right into the place named by Left.  Left is an Identifier, a Link or an Index.  The
// same node shape declares class fields, defaulted parameters and named call arguments.
type Assignment struct {
	StatementNode
	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

var _ Statement = (*Assignment)(nil)

const AssignmentKind NodeKind = "Assignment"

func NewAssignment(loc *Location, left Expression, right Expression) *Assignment {
	return &Assignment{StatementNode: StatementNode{NewNodeValue(AssignmentKind, loc)}, Left: left, Right: right}
}

// Name returns the simple name being assigned, if Left is a bare identifier.
func (node *Assignment) Name() (*Identifier, bool) {
	id, isid := node.Left.(*Identifier)
	return id, isid
}

// Block is a sequence of statements.  A Block may not appear directly inside another Block.
type Block struct {
	StatementNode
	Statements []Statement `json:"statements,omitempty"`
}

var _ Statement = (*Block)(nil)

const BlockKind NodeKind = "Block"

func NewBlock(loc *Location, stmts []Statement) *Block {
	return &Block{StatementNode: StatementNode{NewNodeValue(BlockKind, loc)}, Statements: stmts}
}

// If evaluates Consequent when Condition holds, and Alternate (if any) otherwise.
type If struct {
	StatementNode
	Condition  Expression `json:"condition"`
	Consequent *Block     `json:"consequent"`
	Alternate  *Block     `json:"alternate,omitempty"`
}

var _ Statement = (*If)(nil)

const IfKind NodeKind = "If"

func NewIf(loc *Location, cond Expression, cons *Block, alt *Block) *If {
	return &If{StatementNode: StatementNode{NewNodeValue(IfKind, loc)}, Condition: cond, Consequent: cons, Alternate: alt}
}

// While repeats Body for as long as Condition holds.
type While struct {
	StatementNode
	Condition Expression `json:"condition"`
	Body      *Block     `json:"body"`
}

var _ Statement = (*While)(nil)

const WhileKind NodeKind = "While"

func NewWhile(loc *Location, cond Expression, body *Block) *While {
	return &While{StatementNode: StatementNode{NewNodeValue(WhileKind, loc)}, Condition: cond, Body: body}
}

// Foreach binds Variable to each item of Source in turn and runs Body.
type Foreach struct {
	StatementNode
	Variable *Identifier `json:"variable"`
	Source   Expression  `json:"source"`
	Body     *Block      `json:"body"`
}

var _ Statement = (*Foreach)(nil)

const ForeachKind NodeKind = "Foreach"

func NewForeach(loc *Location, variable *Identifier, source Expression, body *Block) *Foreach {
	return &Foreach{
		StatementNode: StatementNode{NewNodeValue(ForeachKind, loc)},
		Variable:      variable,
		Source:        source,
		Body:          body,
	}
}

// Return leaves the enclosing function, optionally with a value.
type Return struct {
	StatementNode
	Expression Expression `json:"expression,omitempty"`
}

var _ Statement = (*Return)(nil)

const ReturnKind NodeKind = "Return"

func NewReturn(loc *Location, expr Expression) *Return {
	return &Return{StatementNode: StatementNode{NewNodeValue(ReturnKind, loc)}, Expression: expr}
}

// Break leaves the innermost loop.
type Break struct {
	StatementNode
}

var _ Statement = (*Break)(nil)

const BreakKind NodeKind = "Break"

func NewBreak(loc *Location) *Break {
	return &Break{StatementNode{NewNodeValue(BreakKind, loc)}}
}

// Continue skips to the next iteration of the innermost loop.
type Continue struct {
	StatementNode
}

var _ Statement = (*Continue)(nil)

const ContinueKind NodeKind = "Continue"

func NewContinue(loc *Location) *Continue {
	return &Continue{StatementNode{NewNodeValue(ContinueKind, loc)}}
}
