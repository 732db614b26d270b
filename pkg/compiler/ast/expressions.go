// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package ast

import (
	"github.com/regina-lang/regina/pkg/tokens"
)

// Expression is an executable operation that usually produces a value.  Every expression may also stand on its own
// as a statement, in which case its value is dropped.
type Expression interface {
	Statement
	expression()
}

type ExpressionNode struct {
	NodeValue
}

func (node *ExpressionNode) statement()  {}
func (node *ExpressionNode) expression() {}

/* Literals */

// NullLiteral represents the usual `null` constant.
type NullLiteral struct {
	ExpressionNode
}

var _ Expression = (*NullLiteral)(nil)

const NullLiteralKind NodeKind = "NullLiteral"

func NewNullLiteral(loc *Location) *NullLiteral {
	return &NullLiteral{ExpressionNode{NewNodeValue(NullLiteralKind, loc)}}
}

// IntLiteral represents a 64-bit integer constant.
type IntLiteral struct {
	ExpressionNode
	Value int64 `json:"value"`
}

var _ Expression = (*IntLiteral)(nil)

const IntLiteralKind NodeKind = "IntLiteral"

func NewIntLiteral(loc *Location, v int64) *IntLiteral {
	return &IntLiteral{ExpressionNode: ExpressionNode{NewNodeValue(IntLiteralKind, loc)}, Value: v}
}

// DoubleLiteral represents a floating point IEEE 754 constant.
type DoubleLiteral struct {
	ExpressionNode
	Value float64 `json:"value"`
}

var _ Expression = (*DoubleLiteral)(nil)

const DoubleLiteralKind NodeKind = "DoubleLiteral"

func NewDoubleLiteral(loc *Location, v float64) *DoubleLiteral {
	return &DoubleLiteral{ExpressionNode: ExpressionNode{NewNodeValue(DoubleLiteralKind, loc)}, Value: v}
}

// StringLiteral represents a UTF8-encoded string constant.
type StringLiteral struct {
	ExpressionNode
	Value string `json:"value"`
}

var _ Expression = (*StringLiteral)(nil)

const StringLiteralKind NodeKind = "StringLiteral"

func NewStringLiteral(loc *Location, v string) *StringLiteral {
	return &StringLiteral{ExpressionNode: ExpressionNode{NewNodeValue(StringLiteralKind, loc)}, Value: v}
}

// ListLiteral evaluates each element in order and collects them into a fresh list.
type ListLiteral struct {
	ExpressionNode
	Elements []Expression `json:"elements,omitempty"`
}

var _ Expression = (*ListLiteral)(nil)

const ListLiteralKind NodeKind = "ListLiteral"

func NewListLiteral(loc *Location, elems []Expression) *ListLiteral {
	return &ListLiteral{ExpressionNode: ExpressionNode{NewNodeValue(ListLiteralKind, loc)}, Elements: elems}
}

// DictLiteral evaluates each key/value pair in order and collects them into a fresh dictionary.
type DictLiteral struct {
	ExpressionNode
	Entries []*DictEntry `json:"entries,omitempty"`
}

// DictEntry is a single key/value pair in a dictionary literal.
type DictEntry struct {
	Key   Expression `json:"key"`
	Value Expression `json:"value"`
}

var _ Expression = (*DictLiteral)(nil)

const DictLiteralKind NodeKind = "DictLiteral"

func NewDictLiteral(loc *Location, entries []*DictEntry) *DictLiteral {
	return &DictLiteral{ExpressionNode: ExpressionNode{NewNodeValue(DictLiteralKind, loc)}, Entries: entries}
}

/* Access */

// Link is a dotted access chain, `a.b.c`.  Every element after the first is resolved against the value produced by
// the one before it.  Elements whose index appears in Nullable were written with safe navigation (`a?.b`): when
// their property or method is missing, the whole chain produces null instead of failing.
type Link struct {
	ExpressionNode
	Elements []Expression `json:"elements"`
	Nullable []int        `json:"nullable,omitempty"`
}

var _ Expression = (*Link)(nil)

const LinkKind NodeKind = "Link"

func NewLink(loc *Location, elems []Expression, nullable []int) *Link {
	return &Link{ExpressionNode: ExpressionNode{NewNodeValue(LinkKind, loc)}, Elements: elems, Nullable: nullable}
}

// IsNullable returns true if the element at index i was written with safe navigation.
func (node *Link) IsNullable(i int) bool {
	for _, n := range node.Nullable {
		if n == i {
			return true
		}
	}
	return false
}

// Index is a subscript, `target[index]`.  Chained subscripts nest through Target.
type Index struct {
	ExpressionNode
	Target Expression `json:"target"`
	Index  Expression `json:"index"`
}

var _ Expression = (*Index)(nil)

const IndexKind NodeKind = "Index"

func NewIndex(loc *Location, target Expression, index Expression) *Index {
	return &Index{ExpressionNode: ExpressionNode{NewNodeValue(IndexKind, loc)}, Target: target, Index: index}
}

// DeepestLeft returns the innermost subscripted expression, e.g. `a` for `a[1][2]`.
func (node *Index) DeepestLeft() Expression {
	var target Expression = node
	for {
		idx, isidx := target.(*Index)
		if !isidx {
			return target
		}
		target = idx.Target
	}
}

// Subscripts returns the index expressions of a subscript chain, outermost last.
func (node *Index) Subscripts() []Expression {
	var subs []Expression
	var target Expression = node
	for {
		idx, isidx := target.(*Index)
		if !isidx {
			break
		}
		subs = append([]Expression{idx.Index}, subs...)
		target = idx.Target
	}
	return subs
}

/* Invocations */

// Invocation is an identifier applied to arguments whose meaning (function call or constructor) has not yet been
// decided.  The binder replaces every Invocation with a Call or a Constructor before evaluation.
type Invocation struct {
	ExpressionNode
	Name  *Identifier   `json:"name"`
	Args  []Expression  `json:"args,omitempty"`
	Named []*Assignment `json:"named,omitempty"`
}

var _ Expression = (*Invocation)(nil)

const InvocationKind NodeKind = "Invocation"

func NewInvocation(loc *Location, name *Identifier, args []Expression, named []*Assignment) *Invocation {
	return &Invocation{
		ExpressionNode: ExpressionNode{NewNodeValue(InvocationKind, loc)},
		Name:           name,
		Args:           args,
		Named:          named,
	}
}

// Call invokes a function or method.  Unnamed arguments always precede named ones.
type Call struct {
	ExpressionNode
	Name  *Identifier   `json:"name"`
	Args  []Expression  `json:"args,omitempty"`
	Named []*Assignment `json:"named,omitempty"`
}

var _ Expression = (*Call)(nil)

const CallKind NodeKind = "Call"

func NewCall(loc *Location, name *Identifier, args []Expression, named []*Assignment) *Call {
	return &Call{ExpressionNode: ExpressionNode{NewNodeValue(CallKind, loc)}, Name: name, Args: args, Named: named}
}

// Argc is the total number of arguments, which selects between overloads.
func (node *Call) Argc() int { return len(node.Args) + len(node.Named) }

// Constructor instantiates a class.  Type is usually an Identifier naming the class; any other expression must
// evaluate to a class reference or to an existing instance, which is then copied.  Only named arguments are legal;
// unnamed ones are kept so that they can be reported.
type Constructor struct {
	ExpressionNode
	Type  Expression    `json:"type"`
	Args  []Expression  `json:"args,omitempty"`
	Named []*Assignment `json:"named,omitempty"`
}

var _ Expression = (*Constructor)(nil)

const ConstructorKind NodeKind = "Constructor"

func NewConstructor(loc *Location, t Expression, args []Expression, named []*Assignment) *Constructor {
	return &Constructor{
		ExpressionNode: ExpressionNode{NewNodeValue(ConstructorKind, loc)},
		Type:           t,
		Args:           args,
		Named:          named,
	}
}

/* Operators */

// Operator is a binary or unary operator token.
type Operator string

const (
	OpAdd    Operator = "+"
	OpSub    Operator = "-"
	OpMul    Operator = "*"
	OpDiv    Operator = "/"
	OpIntDiv Operator = "//"
	OpMod    Operator = "%"
	OpEq     Operator = "=="
	OpNotEq  Operator = "!="
	OpLt     Operator = "<"
	OpGt     Operator = ">"
	OpLtEq   Operator = "<="
	OpGtEq   Operator = ">="
	OpAnd    Operator = "&&"
	OpOr     Operator = "||"
	OpNot    Operator = "!"
)

// BinaryOperators is the set of all legal binary operators.
var BinaryOperators = map[Operator]bool{
	OpAdd: true, OpSub: true, OpMul: true, OpDiv: true, OpIntDiv: true, OpMod: true,
	OpEq: true, OpNotEq: true, OpLt: true, OpGt: true, OpLtEq: true, OpGtEq: true,
	OpAnd: true, OpOr: true,
}

// UnaryOperators is the set of all legal unary operators.
var UnaryOperators = map[Operator]bool{
	OpSub: true, OpNot: true,
}

// BinaryOperator applies an infix operator.  `&&` and `||` do not evaluate Right when Left decides the result.
type BinaryOperator struct {
	ExpressionNode
	Operator Operator   `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

var _ Expression = (*BinaryOperator)(nil)

const BinaryOperatorKind NodeKind = "BinaryOperator"

func NewBinaryOperator(loc *Location, op Operator, left Expression, right Expression) *BinaryOperator {
	return &BinaryOperator{
		ExpressionNode: ExpressionNode{NewNodeValue(BinaryOperatorKind, loc)},
		Operator:       op,
		Left:           left,
		Right:          right,
	}
}

// UnaryOperator applies a prefix operator.
type UnaryOperator struct {
	ExpressionNode
	Operator Operator   `json:"operator"`
	Operand  Expression `json:"operand"`
}

var _ Expression = (*UnaryOperator)(nil)

const UnaryOperatorKind NodeKind = "UnaryOperator"

func NewUnaryOperator(loc *Location, op Operator, operand Expression) *UnaryOperator {
	return &UnaryOperator{
		ExpressionNode: ExpressionNode{NewNodeValue(UnaryOperatorKind, loc)},
		Operator:       op,
		Operand:        operand,
	}
}

// Ternary evaluates exactly one of its branches.
type Ternary struct {
	ExpressionNode
	Condition  Expression `json:"condition"`
	Consequent Expression `json:"consequent"`
	Alternate  Expression `json:"alternate"`
}

var _ Expression = (*Ternary)(nil)

const TernaryKind NodeKind = "Ternary"

func NewTernary(loc *Location, cond Expression, cons Expression, alt Expression) *Ternary {
	return &Ternary{
		ExpressionNode: ExpressionNode{NewNodeValue(TernaryKind, loc)},
		Condition:      cond,
		Consequent:     cons,
		Alternate:      alt,
	}
}

// NameOf returns the name a call-like expression refers to, if it has one.
func NameOf(expr Expression) (tokens.Name, bool) {
	switch n := expr.(type) {
	case *Identifier:
		return n.Ident, true
	case *Call:
		return n.Name.Ident, true
	case *Invocation:
		return n.Name.Ident, true
	case *Constructor:
		if id, isid := n.Type.(*Identifier); isid {
			return id.Ident, true
		}
	}
	return "", false
}
