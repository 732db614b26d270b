// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

// Package ast contains the Regina abstract syntax tree.  Trees arrive from the external parser already built, in the
// serialized form understood by the encoding package.
//
// The node set is closed: every consumer switches over the concrete node types and fails on anything it does not
// recognize.  Trees are only mutated by the binder's disambiguation pass; evaluation never changes them.
package ast

import (
	"github.com/regina-lang/regina/pkg/diag"
	"github.com/regina-lang/regina/pkg/tokens"
)

// Node is a discriminated type for all serialized blocks and instructions.
type Node interface {
	nd()
	GetKind() NodeKind                       // the node kind.
	GetLoc() *Location                       // an optional location associated with this node.
	Where() (*diag.Document, *diag.Location) // source location information for this node.
}

var _ diag.Diagable = (Node)(nil)

// NodeKind is a type discriminator, indicating what sort of kind a node instance represents.  RTTI frequently takes
// its place, however it is handy for debugging and in error messages.
type NodeKind string

// Location is a file plus the position of the node within it.
type Location struct {
	File  string    `json:"file,omitempty"`
	Start Position  `json:"start"`
	End   *Position `json:"end,omitempty"`
}

// Position is a 1-based line and column pair.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// NodeValue is embedded in every concrete node.
type NodeValue struct {
	Kind NodeKind  `json:"kind"`
	Loc  *Location `json:"loc,omitempty"`
}

func (node *NodeValue) nd()               {}
func (node *NodeValue) GetKind() NodeKind { return node.Kind }
func (node *NodeValue) GetLoc() *Location { return node.Loc }

func (node *NodeValue) Where() (*diag.Document, *diag.Location) {
	if node.Loc == nil {
		return nil, nil
	}
	var doc *diag.Document
	if node.Loc.File != "" {
		doc = diag.NewDocument(node.Loc.File)
	}
	var end *diag.Pos
	if node.Loc.End != nil {
		end = &diag.Pos{Line: node.Loc.End.Line, Column: node.Loc.End.Column}
	}
	return doc, &diag.Location{
		Start: diag.Pos{Line: node.Loc.Start.Line, Column: node.Loc.Start.Column},
		End:   end,
	}
}

// NewNodeValue returns the common node header for a node of the given kind.
func NewNodeValue(kind NodeKind, loc *Location) NodeValue {
	return NodeValue{Kind: kind, Loc: loc}
}

// Identifier represents a simple string token associated with its source location context.
type Identifier struct {
	ExpressionNode
	Ident tokens.Name `json:"ident"` // a valid identifier: (letter | "_") (letter | digit | "_")*
}

var _ Node = (*Identifier)(nil)
var _ Expression = (*Identifier)(nil)

const IdentifierKind NodeKind = "Identifier"

// NewIdentifier creates an identifier at the given location.
func NewIdentifier(loc *Location, name tokens.Name) *Identifier {
	return &Identifier{ExpressionNode: ExpressionNode{NewNodeValue(IdentifierKind, loc)}, Ident: name}
}
