// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package ast

import (
	"reflect"

	"github.com/golang/glog"

	"github.com/regina-lang/regina/pkg/util/contract"
)

// Visitor is a pluggable interface invoked during walks of an AST.
type Visitor interface {
	// Visit visits the given AST node.  If it returns nil, the calling code will stop visiting immediately after the
	// call to Visit returns.  If it returns a non-nil Visitor, the calling code will continue visiting.
	Visit(node Node) Visitor

	// After is invoked after visitation of a given node.
	After(node Node)
}

// Walk visits an AST node and all of its children.  It walks the AST in depth-first order, visiting children in the
// order in which they would be evaluated.
func Walk(v Visitor, node Node) {
	contract.Requiref(node != nil, "node", "!= nil")

	if glog.V(9) {
		glog.V(9).Infof("AST visitor walk: pre-visit %v", reflect.TypeOf(node))
	}

	// First visit the node; only proceed if the visitor says to do so (and use its returned visitor below).
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	// Definitions
	case *File:
		for _, imp := range n.Imports {
			Walk(v, imp)
		}
		for _, fnc := range n.Functions {
			Walk(v, fnc)
		}
		for _, class := range n.Classes {
			Walk(v, class)
		}
		for _, obj := range n.Objects {
			Walk(v, obj)
		}
		if n.Main != nil {
			Walk(v, n.Main)
		}
	case *Import:
		Walk(v, n.Alias)
	case *Function:
		Walk(v, n.Name)
		for _, param := range n.Params {
			Walk(v, param)
		}
		for _, def := range n.Defaults {
			Walk(v, def)
		}
		Walk(v, n.Body)
	case *Class:
		Walk(v, n.Name)
		for _, field := range n.Fields {
			Walk(v, field)
		}
		for _, method := range n.Methods {
			Walk(v, method)
		}

	// Statements
	case *Assignment:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *Block:
		for _, stmt := range n.Statements {
			Walk(v, stmt)
		}
	case *If:
		Walk(v, n.Condition)
		Walk(v, n.Consequent)
		if n.Alternate != nil {
			Walk(v, n.Alternate)
		}
	case *While:
		Walk(v, n.Condition)
		Walk(v, n.Body)
	case *Foreach:
		Walk(v, n.Variable)
		Walk(v, n.Source)
		Walk(v, n.Body)
	case *Return:
		if n.Expression != nil {
			Walk(v, n.Expression)
		}
	case *Break, *Continue:
		// No children, nothing to do.

	// Expressions
	case *Identifier, *NullLiteral, *IntLiteral, *DoubleLiteral, *StringLiteral:
		// No children, nothing to do.
	case *ListLiteral:
		for _, elem := range n.Elements {
			Walk(v, elem)
		}
	case *DictLiteral:
		for _, entry := range n.Entries {
			Walk(v, entry.Key)
			Walk(v, entry.Value)
		}
	case *Link:
		for _, elem := range n.Elements {
			Walk(v, elem)
		}
	case *Index:
		Walk(v, n.Target)
		Walk(v, n.Index)
	case *Invocation:
		Walk(v, n.Name)
		walkArgs(v, n.Args, n.Named)
	case *Call:
		Walk(v, n.Name)
		walkArgs(v, n.Args, n.Named)
	case *Constructor:
		Walk(v, n.Type)
		walkArgs(v, n.Args, n.Named)
	case *BinaryOperator:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *UnaryOperator:
		Walk(v, n.Operand)
	case *Ternary:
		Walk(v, n.Condition)
		Walk(v, n.Consequent)
		Walk(v, n.Alternate)

	default:
		contract.Failf("Unrecognized AST node type: %v", reflect.TypeOf(node))
	}

	// Finally let the visitor know that we are done processing this node.
	v.After(node)
}

func walkArgs(v Visitor, args []Expression, named []*Assignment) {
	for _, arg := range args {
		Walk(v, arg)
	}
	for _, arg := range named {
		Walk(v, arg)
	}
}

// ReplaceChildren replaces every direct expression child of node with the result of f.  Statements of a Block that
// are expressions are replaced too.  Children that are not expressions (blocks, named arguments, declarations) are
// left alone; a walk reaches them separately.
func ReplaceChildren(node Node, f func(Expression) Expression) {
	switch n := node.(type) {
	case *File, *Import, *Function, *Class, *Break, *Continue,
		*Identifier, *NullLiteral, *IntLiteral, *DoubleLiteral, *StringLiteral:
		// No expression children.
	case *Assignment:
		n.Left = f(n.Left)
		n.Right = f(n.Right)
	case *Block:
		for i, stmt := range n.Statements {
			if expr, isexpr := stmt.(Expression); isexpr {
				n.Statements[i] = f(expr)
			}
		}
	case *If:
		n.Condition = f(n.Condition)
	case *While:
		n.Condition = f(n.Condition)
	case *Foreach:
		n.Source = f(n.Source)
	case *Return:
		if n.Expression != nil {
			n.Expression = f(n.Expression)
		}
	case *ListLiteral:
		replaceAll(n.Elements, f)
	case *DictLiteral:
		for _, entry := range n.Entries {
			entry.Key = f(entry.Key)
			entry.Value = f(entry.Value)
		}
	case *Link:
		replaceAll(n.Elements, f)
	case *Index:
		n.Target = f(n.Target)
		n.Index = f(n.Index)
	case *Invocation:
		replaceAll(n.Args, f)
	case *Call:
		replaceAll(n.Args, f)
	case *Constructor:
		n.Type = f(n.Type)
		replaceAll(n.Args, f)
	case *BinaryOperator:
		n.Left = f(n.Left)
		n.Right = f(n.Right)
	case *UnaryOperator:
		n.Operand = f(n.Operand)
	case *Ternary:
		n.Condition = f(n.Condition)
		n.Consequent = f(n.Consequent)
		n.Alternate = f(n.Alternate)
	default:
		contract.Failf("Unrecognized AST node type: %v", reflect.TypeOf(node))
	}
}

func replaceAll(exprs []Expression, f func(Expression) Expression) {
	for i, expr := range exprs {
		exprs[i] = f(expr)
	}
}

// visitor adapts a pair of functions to the Visitor interface.
type visitor struct {
	pre  func(Node) bool
	post func(Node)
}

func (v *visitor) Visit(node Node) Visitor {
	if v.pre != nil && !v.pre(node) {
		return nil
	}
	return v
}

func (v *visitor) After(node Node) {
	if v.post != nil {
		v.post(node)
	}
}

// NewVisitor creates a Visitor out of a pre-visit function, which returns false to skip a node's children, and an
// optional post-visit function.
func NewVisitor(pre func(Node) bool, post func(Node)) Visitor {
	return &visitor{pre: pre, post: post}
}
