// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

// Package encoding decodes the serialized syntax trees that the Regina parser produces.  The format is YAML (JSON is
// accepted too, being a subset); mappings are discriminated by their first key rather than by a kind field, which
// keeps hand-written trees short.  Because of that polymorphism the standard unmarshaling routines cannot be used, so
// the decoders walk yaml.Node trees by hand, which also gives every AST node its line and column.
package encoding

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"gopkg.in/yaml.v3"

	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/compiler/errors"
	"github.com/regina-lang/regina/pkg/diag"
)

// Exts contains the file extensions of serialized trees, in preference order.
var Exts = []string{".yaml", ".yml", ".json"}

// IsExt returns true if ext names a serialized tree.
func IsExt(ext string) bool {
	for _, e := range Exts {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// Decode unmarshals the serialized tree of the source file at path.
func Decode(doc *diag.Document) (*ast.File, error) {
	glog.V(5).Infof("Decoding %v (%v bytes)", doc.File, len(doc.Body))

	d := &decoder{path: doc.File}

	var root yaml.Node
	if err := yaml.Unmarshal(doc.Body, &root); err != nil {
		return nil, errors.ErrorIllegalSyntax.At(d.at(&root), err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		// An empty document is an empty file.
		return &ast.File{NodeValue: ast.NewNodeValue(ast.FileKind, d.loc(&root)), Path: doc.File}, nil
	}
	return d.decodeFile(root.Content[0])
}

// decoder carries the file being decoded so that every node can be located.
type decoder struct {
	path string
}

func (d *decoder) loc(n *yaml.Node) *ast.Location {
	return &ast.Location{File: d.path, Start: ast.Position{Line: n.Line, Column: n.Column}}
}

// at returns something that locates n for error reporting.
func (d *decoder) at(n *yaml.Node) diag.Diagable {
	nv := ast.NewNodeValue("", d.loc(n))
	return &nv
}

func (d *decoder) errorf(n *yaml.Node, msg string, args ...interface{}) error {
	return errors.ErrorIllegalSyntax.At(d.at(n), fmt.Sprintf(msg, args...))
}

// mapping is a decoded YAML mapping whose keys keep their source order.
type mapping struct {
	node   *yaml.Node
	keys   []string
	values map[string]*yaml.Node
}

// mapping decodes n as a mapping whose keys must all be in allowed.
func (d *decoder) mapping(n *yaml.Node, allowed ...string) (*mapping, error) {
	if n.Kind != yaml.MappingNode {
		return nil, d.errorf(n, "expected a mapping, got %v", describe(n))
	}
	m := &mapping{node: n, values: make(map[string]*yaml.Node)}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, d.errorf(k, "mapping keys must be scalars")
		}
		if _, has := m.values[k.Value]; has {
			return nil, d.errorf(k, "duplicate key '%v'", k.Value)
		}
		if len(allowed) > 0 && !contains(allowed, k.Value) {
			return nil, d.errorf(k, "unexpected key '%v'; expected one of %v", k.Value, strings.Join(allowed, ", "))
		}
		m.keys = append(m.keys, k.Value)
		m.values[k.Value] = v
	}
	return m, nil
}

// discriminator returns the first key of a mapping node, which selects the node kind.
func discriminator(n *yaml.Node) string {
	if n.Kind == yaml.MappingNode && len(n.Content) > 0 {
		return n.Content[0].Value
	}
	return ""
}

func (m *mapping) get(key string) *yaml.Node { return m.values[key] }

// require fetches a key that must be present.
func (d *decoder) require(m *mapping, key string) (*yaml.Node, error) {
	if v := m.get(key); v != nil {
		return v, nil
	}
	return nil, d.errorf(m.node, "missing required key '%v'", key)
}

// sequence returns the items of a sequence node; a null node is an empty sequence.
func (d *decoder) sequence(n *yaml.Node) ([]*yaml.Node, error) {
	if n == nil || isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, d.errorf(n, "expected a sequence, got %v", describe(n))
	}
	return n.Content, nil
}

func (d *decoder) scalar(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", d.errorf(n, "expected a scalar, got %v", describe(n))
	}
	return n.Value, nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func isQuoted(n *yaml.Node) bool {
	return n.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0
}

func describe(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "a mapping"
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.ScalarNode:
		return fmt.Sprintf("the scalar '%v'", n.Value)
	case yaml.AliasNode:
		return "an alias"
	default:
		return "nothing"
	}
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}

// DefaultAlias is the alias an import gets when none is written: the file's base name without its extension.
func DefaultAlias(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
