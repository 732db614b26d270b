// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package binder

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/compiler/errors"
	"github.com/regina-lang/regina/pkg/compiler/symbols"
	"github.com/regina-lang/regina/pkg/diag"
	"github.com/regina-lang/regina/pkg/encoding"
)

func decode(t *testing.T, path string, src string) *ast.File {
	file, err := encoding.Decode(&diag.Document{File: path, Body: []byte(src)})
	require.NoError(t, err)
	return file
}

// bindAll binds files, resolving each import by its literal path.
func bindAll(files ...*ast.File) (map[string]*symbols.Module, error) {
	pkg := &Package{Files: files, Imports: make(map[*ast.Import]string)}
	known := make(map[string]bool)
	for _, file := range files {
		known[file.Path] = true
	}
	for _, file := range files {
		for _, imp := range file.Imports {
			if known[imp.Path] {
				pkg.Imports[imp] = imp.Path
			}
		}
	}
	return Bind(pkg)
}

func TestDeclarations(t *testing.T) {
	t.Parallel()

	file := decode(t, "main.yaml", `
functions:
  - {name: f, params: [a]}
  - {name: f, params: [a, b, {set: c, to: 1}]}
classes:
  - name: Point
    fields:
      - {set: x, to: 0}
      - {set: y, to: 0}
      - {set: {link: [x, z]}, to: 1}
    methods:
      - {name: norm}
objects:
  - name: Origin
`)
	modules, err := Bind(&Package{Files: []*ast.File{file}})
	require.NoError(t, err)

	module := modules["main.yaml"]
	require.NotNil(t, module)
	f1, ok := module.LookupFunction("f", 1)
	require.True(t, ok)
	assert.Equal(t, 1, f1.MaxArity())
	f3, ok := module.LookupFunction("f", 3)
	require.True(t, ok)
	assert.Equal(t, 2, f3.MinArity())
	_, ok = module.LookupFunction("f", 0)
	assert.False(t, ok)

	point, ok := module.LookupClass("Point")
	require.True(t, ok)
	assert.False(t, point.Object())
	assert.Len(t, point.Inits, 3)
	assert.Len(t, point.Links, 1)
	assert.True(t, point.HasField("x"))
	assert.False(t, point.HasField("z"))
	_, ok = point.LookupMethod("norm", 0)
	assert.True(t, ok)

	origin, ok := module.LookupObject("Origin")
	require.True(t, ok)
	assert.True(t, origin.Object())
	_, ok = module.LookupClass("Origin")
	assert.False(t, ok)
}

func TestDuplicatesAreAggregated(t *testing.T) {
	t.Parallel()

	file := decode(t, "main.yaml", `
imports:
  - missing.yaml
functions:
  - {name: f, params: [a]}
  - {name: f, params: [b]}
  - {name: g, params: [a, a]}
classes:
  - name: Point
    fields:
      - {set: x, to: 0}
      - {set: x, to: 1}
objects:
  - name: Point
`)
	_, err := Bind(&Package{Files: []*ast.File{file}, Imports: map[*ast.Import]string{}})
	require.Error(t, err)

	multi, ok := err.(*multierror.Error)
	require.True(t, ok)
	var ids []diag.ID
	for _, e := range multi.Errors {
		located, ok := errors.As(e)
		require.True(t, ok)
		ids = append(ids, located.Diag.ID)
	}
	assert.ElementsMatch(t, []diag.ID{
		errors.ErrorDuplicateFunction.ID,
		errors.ErrorDuplicateParameter.ID,
		errors.ErrorDuplicateField.ID,
		errors.ErrorDuplicateClass.ID,
		errors.ErrorUnknownImport.ID,
	}, ids)
}

func TestDisambiguation(t *testing.T) {
	t.Parallel()

	main := decode(t, "main.yaml", `
imports:
  - {path: geo.yaml, as: geo}
classes:
  - {name: Point}
main:
  - {invoke: Point, args: [{set: x, to: 1}]}
  - {invoke: f, args: [1]}
  - {link: [p, {invoke: move}]}
  - {link: [geo, {invoke: Circle}]}
  - {link: [geo, {invoke: area}]}
  - {link: [{invoke: Point}, x]}
  - {link: [p, {index: {invoke: items}, at: 0}]}
  - {set: q, to: {invoke: Point}}
`)
	geo := decode(t, "geo.yaml", `
classes:
  - {name: Circle}
`)
	_, err := bindAll(main, geo)
	require.NoError(t, err)

	stmts := main.Main.Statements
	assert.IsType(t, &ast.Constructor{}, stmts[0])
	assert.IsType(t, &ast.Call{}, stmts[1])
	assert.IsType(t, &ast.Call{}, stmts[2].(*ast.Link).Elements[1])
	assert.IsType(t, &ast.Constructor{}, stmts[3].(*ast.Link).Elements[1])
	assert.IsType(t, &ast.Call{}, stmts[4].(*ast.Link).Elements[1])
	assert.IsType(t, &ast.Constructor{}, stmts[5].(*ast.Link).Elements[0])
	idx := stmts[6].(*ast.Link).Elements[1].(*ast.Index)
	assert.IsType(t, &ast.Call{}, idx.Target)
	assert.IsType(t, &ast.Constructor{}, stmts[7].(*ast.Assignment).Right)

	// Nothing ambiguous may survive the pass.
	ast.Walk(ast.NewVisitor(func(node ast.Node) bool {
		_, isinv := node.(*ast.Invocation)
		assert.False(t, isinv, "unsettled invocation at %v", node.GetLoc())
		return true
	}, nil), main)
}

func TestImportsLink(t *testing.T) {
	t.Parallel()

	main := decode(t, "main.yaml", "imports: [{path: lib.yaml, as: l}]\n")
	lib := decode(t, "lib.yaml", "functions: [{name: helper}]\n")
	modules, err := bindAll(main, lib)
	require.NoError(t, err)
	require.Len(t, modules, 2)

	l, ok := modules["main.yaml"].LookupImport("l")
	require.True(t, ok)
	assert.Same(t, modules["lib.yaml"], l)
	_, ok = l.LookupFunction("helper", 0)
	assert.True(t, ok)
}
