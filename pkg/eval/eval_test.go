// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regina-lang/regina/pkg/compiler"
	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/compiler/errors"
)

// program is a set of source files; the entry file is main.yaml.
type program map[string]string

// run loads and evaluates p, returning what it printed.
func run(t require.TestingT, p program, opts Options) (string, error) {
	fs := afero.NewMemMapFs()
	for path, body := range p {
		require.NoError(t, afero.WriteFile(fs, path, []byte(body), 0o644))
	}
	prog, err := compiler.Load(context.Background(), compiler.Options{Fs: fs}, "main.yaml")
	require.NoError(t, err)

	var out bytes.Buffer
	opts.Stdout = &out
	if opts.Stdin == nil {
		opts.Stdin = strings.NewReader("")
	}
	if opts.Fs == nil {
		opts.Fs = fs
	}
	err = New(prog, opts).Run(context.Background())
	return out.String(), err
}

func runMain(t require.TestingT, src string) (string, error) {
	return run(t, program{"main.yaml": src}, Options{})
}

// mustRun runs src and fails the test on any error.
func mustRun(t require.TestingT, src string) string {
	out, err := runMain(t, src)
	require.NoError(t, err)
	return out
}

// requireError checks that err is a located error raised from tmpl.
func requireError(t require.TestingT, err error, tmpl *errors.Template) *errors.Error {
	require.Error(t, err)
	e, ok := errors.As(err)
	require.True(t, ok, "not a located error: %v", err)
	assert.Equal(t, tmpl.Kind, e.Kind, "unexpected kind for %v", err)
	assert.Equal(t, tmpl.ID, e.Diag.ID, "unexpected diagnostic %v", err)
	return e
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

const pointClass = `
classes:
  - name: Point
    fields:
      - {set: x, to: {op: "*", left: y, right: 2}}
      - {set: y, to: 3}
`

func TestDeferredFields(t *testing.T) {
	t.Parallel()

	out := mustRun(t, pointClass+`
main:
  - {set: p, to: {invoke: Point}}
  - {call: print, args: [p]}
  - {set: q, to: {invoke: Point, args: [{set: y, to: 5}]}}
  - {call: print, args: [{link: [q, x]}]}
`)
	assert.Equal(t, lines("Point{x: 6, y: 3}", "10"), out)
}

func TestInitializerRunsOnce(t *testing.T) {
	t.Parallel()

	out := mustRun(t, `
objects:
  - name: Counter
    fields: [{set: n, to: 0}]
functions:
  - name: tick
    body:
      - {set: {link: [Counter, n]}, to: {op: "+", left: {link: [Counter, n]}, right: 1}}
      - {return: {link: [Counter, n]}}
classes:
  - name: A
    fields:
      - {set: v, to: {call: tick}}
      - {set: w, to: {op: "+", left: v, right: v}}
main:
  - {set: a, to: {invoke: A}}
  - {call: print, args: [{link: [a, v]}]}
  - {call: print, args: [{link: [a, w]}]}
  - {call: print, args: [{link: [a, v]}]}
  - {call: print, args: [{link: [Counter, n]}]}
`)
	assert.Equal(t, lines("1", "2", "1", "1"), out)
}

func TestTernaryInitializerRunsOnce(t *testing.T) {
	t.Parallel()

	out := mustRun(t, `
objects:
  - name: Counter
    fields: [{set: n, to: 0}]
functions:
  - name: tick
    body:
      - {set: {link: [Counter, n]}, to: {op: "+", left: {link: [Counter, n]}, right: 1}}
      - {return: {link: [Counter, n]}}
classes:
  - name: A
    fields:
      - set: v
        to: {ternary: {op: ">", left: {call: tick}, right: 0}, then: w, else: {call: except, args: ["untaken"]}}
      - {set: w, to: 7}
main:
  - {set: a, to: {invoke: A}}
  - {call: print, args: [{link: [a, v]}]}
  - {call: print, args: [{link: [Counter, n]}]}
`)
	assert.Equal(t, lines("7", "1"), out)
}

func TestAfterHookFiresOnce(t *testing.T) {
	t.Parallel()

	out := mustRun(t, `
objects:
  - name: Log
    fields: [{set: count, to: 0}]
classes:
  - name: B
    fields:
      - {set: x, to: 1}
      - {set: y, to: {op: "+", left: x, right: 1}}
    methods:
      - name: before
        body: [{call: print, args: ["before"]}]
      - name: after
        body:
          - {set: {link: [Log, count]}, to: {op: "+", left: {link: [Log, count]}, right: 1}}
main:
  - {set: b, to: {invoke: B}}
  - {set: {link: [b, x]}, to: 5}
  - {set: {link: [b, z]}, to: 6}
  - {call: print, args: [{link: [Log, count]}]}
  - {call: print, args: [b]}
`)
	assert.Equal(t, lines("before", "1", "B{x: 5, y: 2, z: 6}"), out)
}

func TestAfterHookWithNamedArguments(t *testing.T) {
	t.Parallel()

	out := mustRun(t, `
objects:
  - name: Log
    fields: [{set: count, to: 0}]
classes:
  - name: C
    fields:
      - {set: x, to: 1}
      - {set: y, to: {op: "+", left: x, right: 1}}
      - {set: z, to: 0}
    methods:
      - name: after
        body:
          - {set: {link: [Log, count]}, to: {op: "+", left: {link: [Log, count]}, right: 1}}
main:
  - {set: c, to: {invoke: C, args: [{set: z, to: 9}, {set: x, to: 4}]}}
  - {set: d, to: {invoke: C, args: [{set: z, to: 9}, {set: y, to: 2}, {set: x, to: 4}]}}
  - {call: print, args: [{link: [Log, count]}]}
  - {call: print, args: [c]}
  - {call: print, args: [d]}
`)
	assert.Equal(t, lines("2", "C{x: 4, y: 5, z: 9}", "C{x: 4, y: 2, z: 9}"), out)
}

func TestParentAndNestedInstances(t *testing.T) {
	t.Parallel()

	out := mustRun(t, `
classes:
  - name: Tree
    fields:
      - {set: leaf, to: {invoke: Leaf}}
      - {set: label, to: "root"}
  - name: Leaf
    fields:
      - {set: owner, to: {link: [parent, label]}}
main:
  - {set: t, to: {invoke: Tree}}
  - {call: print, args: [{link: [t, leaf, owner]}]}
  - {call: print, args: [{link: [t, leaf, parent, label]}]}
  - {call: print, args: [{link: [t, parent]}]}
`)
	assert.Equal(t, lines("root", "root", "null"), out)
}

func TestLinkAssigningInitializers(t *testing.T) {
	t.Parallel()

	out := mustRun(t, `
classes:
  - name: Box
    fields:
      - {set: {link: [inner, v]}, to: 7}
      - {set: inner, to: {invoke: Inner}}
  - name: Inner
    fields: [{set: v, to: 0}]
main:
  - {set: b, to: {invoke: Box}}
  - {call: print, args: [{link: [b, inner, v]}]}
`)
	assert.Equal(t, lines("7"), out)
}

func TestNullableLinks(t *testing.T) {
	t.Parallel()

	src := `
classes:
  - name: C
    fields: [{set: a, to: 1}]
main:
  - {set: c, to: {invoke: C}}
  - {call: print, args: [{link: [c, b, d], nullable: [1]}]}
  - {set: {link: [c, b, d], nullable: [1]}, to: 2}
  - {call: print, args: [{link: [c, b]}]}
`
	out, err := runMain(t, src)
	assert.Equal(t, lines("null"), out)
	e := requireError(t, err, errors.ErrorPropertyNotFound)
	assert.Contains(t, e.Message(), "did you mean 'a'?")
}

func TestTernaryAndConditions(t *testing.T) {
	t.Parallel()

	out := mustRun(t, `
main:
  - {set: x, to: 3}
  - {call: print, args: [{ternary: {op: ">", left: x, right: 2}, then: "big", else: {call: except, args: ["no"]}}]}
  - {set: i, to: 0}
  - while: 1
    do:
      - {set: i, to: {op: "+", left: i, right: 1}}
      - if: {op: "<", left: i, right: 3}
        then: [continue]
      - break
  - {call: print, args: [i]}
`)
	assert.Equal(t, lines("big", "3"), out)

	_, err := runMain(t, `main: [{if: "yes", then: []}]`)
	requireError(t, err, errors.ErrorConditionNotNumeric)
}

func TestForeach(t *testing.T) {
	t.Parallel()

	out := mustRun(t, `
main:
  - foreach: i
    in: {call: range, args: [0, 10, 2]}
    do: [{call: print, args: [i]}]
  - foreach: c
    in: "ab"
    do: [{call: print, args: [c]}]
  - {set: xs, to: [1, 2]}
  - foreach: x
    in: xs
    do: [{link: [xs, {invoke: add, args: [x]}]}]
  - {call: print, args: [xs]}
`)
	assert.Equal(t, lines("0", "2", "4", "6", "8", "a", "b", "[1, 2, 1, 2]"), out)

	_, err := runMain(t, `main: [{foreach: x, in: 1, do: []}]`)
	requireError(t, err, errors.ErrorNotIterable)
}

func TestScopes(t *testing.T) {
	t.Parallel()

	out := mustRun(t, `
functions:
  - name: f
    body: [{return: {call: exists, args: ["nothing"]}}]
main:
  - {set: a, to: 1}
  - if: 1
    then:
      - {set: a, to: 2}
      - {set: b, to: 3}
  - {call: print, args: [a]}
  - {call: print, args: [{call: f}]}
`)
	assert.Equal(t, lines("2", "0"), out)

	_, err := runMain(t, `
main:
  - if: 1
    then: [{set: b, to: 3}]
  - {call: print, args: [b]}
`)
	requireError(t, err, errors.ErrorIdentifierNotFound)
}

func TestStructuralErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want *errors.Template
	}{
		{"block within block", `main: [{block: [{call: print, args: [1]}]}]`, errors.ErrorBlockWithinBlock},
		{"call on left", `
functions: [{name: f, body: [{return: 1}]}]
main: [{set: {link: [{call: f}, x]}, to: 5}]`, errors.ErrorCallOnAssignmentLeft},
		{"assign this", `
classes: [{name: C, methods: [{name: m, body: [{set: this, to: 1}]}]}]
main: [{link: [{invoke: C}, {invoke: m}]}]`, errors.ErrorIllegalAssignment},
		{"break outside loop", `
functions: [{name: f, body: [break]}]
main: [{call: f}]`, errors.ErrorJumpOutsideLoop},
		{"continue in main", `main: [continue]`, errors.ErrorJumpOutsideLoop},
		{"unnamed constructor argument", pointClass + `main: [{invoke: Point, args: [1]}]`,
			errors.ErrorUnnamedConstructorArgument},
		{"property of a primitive", `main: [{set: {link: [1, x]}, to: 2}]`, errors.ErrorNotAnInstance},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := runMain(t, tt.src)
			requireError(t, err, tt.want)
		})
	}
}

func TestIndexing(t *testing.T) {
	t.Parallel()

	out := mustRun(t, `
main:
  - {set: xs, to: [1, [2, 3]]}
  - {set: {index: xs, at: 0}, to: 10}
  - {set: {index: {index: xs, at: 1}, at: 0}, to: 20}
  - {call: print, args: [xs]}
  - {call: print, args: [{index: "abc", at: 1}]}
  - {call: print, args: [{index: {call: range, args: [0, 10, 3]}, at: 2}]}
  - {set: d, to: {dict: [{key: "a", value: 1}]}}
  - {set: {index: d, at: "b"}, to: 2}
  - {call: print, args: [{index: d, at: "a"}]}
  - {call: print, args: [{index: d, at: "zz"}]}
  - {call: print, args: [d]}
`)
	assert.Equal(t, lines(`[10, [20, 3]]`, "b", "6", "1", "null", `{"a": 1, "b": 2}`), out)

	tests := []struct {
		src  string
		want *errors.Template
	}{
		{`main: [{index: [1], at: 1}]`, errors.ErrorIndexOutOfRange},
		{`main: [{index: [1], at: "a"}]`, errors.ErrorUnexpectedType},
		{`main: [{index: 1, at: 0}]`, errors.ErrorNotIndexable},
		{`main: [{set: {index: "ab", at: 0}, to: "c"}]`, errors.ErrorNotAssignableIndex},
	}
	for _, tt := range tests {
		_, err := runMain(t, tt.src)
		requireError(t, err, tt.want)
	}
}

func TestImports(t *testing.T) {
	t.Parallel()

	p := program{
		"main.yaml": `
imports: [lib/geo]
main:
  - {set: p, to: {link: [geo, {invoke: Point}]}}
  - {call: print, args: [p]}
  - {call: print, args: [{link: [geo, {invoke: twice, args: [4]}]}]}
  - {call: print, args: [{link: [geo, Origin, x]}]}
  - {call: print, args: [{link: [geo, {invoke: missing}], nullable: [1]}]}
  - {link: [geo, {invoke: missing}]}
`,
		"lib/geo.yaml": `
functions:
  - name: twice
    params: [n]
    body: [{return: {op: "*", left: n, right: 2}}]
classes:
  - name: Point
    fields: [{set: x, to: 1}]
objects:
  - name: Origin
    fields: [{set: x, to: 0}]
`,
	}
	out, err := run(t, p, Options{})
	assert.Equal(t, lines("Point{x: 1}", "8", "0", "null"), out)
	requireError(t, err, errors.ErrorImportNotFound)
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	out := mustRun(t, pointClass+`
main:
  - {set: p, to: {invoke: Point, args: [{set: y, to: 1}]}}
  - {set: q, to: {new: p, args: [{set: y, to: 4}]}}
  - {call: print, args: [p]}
  - {call: print, args: [q]}
  - {set: r, to: {new: {call: type, args: [p]}, args: [{set: y, to: 10}]}}
  - {call: print, args: [r]}
  - {set: s, to: {invoke: Point, args: [{set: y, to: 2}, {set: x, to: {op: "+", left: {link: [this, y]}, right: 1}}]}}
  - {call: print, args: [s]}
`)
	assert.Equal(t, lines("Point{x: 2, y: 1}", "Point{x: 2, y: 4}", "Point{x: 20, y: 10}", "Point{x: 3, y: 2}"), out)

	tests := []struct {
		src  string
		want *errors.Template
	}{
		{`main: [{invoke: Point, args: [{set: z, to: 1}]}]`, errors.ErrorUnknownField},
		{`main: [{invoke: Point, args: [{set: y, to: 1}, {set: y, to: 2}]}]`, errors.ErrorFieldBoundTwice},
		{`main: [{new: 1}]`, errors.ErrorNotConstructible},
		{`main: [{new: Nothing}]`, errors.ErrorClassNotFound},
	}
	for _, tt := range tests {
		_, err := runMain(t, pointClass+tt.src)
		requireError(t, err, tt.want)
	}
}

func TestMethods(t *testing.T) {
	t.Parallel()

	out := mustRun(t, `
classes:
  - name: Account
    fields: [{set: balance, to: 0}]
    methods:
      - name: deposit
        params: [amount]
        body:
          - {set: balance, to: {op: "+", left: balance, right: amount}}
          - {return: {call: total}}
      - name: total
        body: [{return: balance}]
main:
  - {set: a, to: {invoke: Account}}
  - {call: print, args: [{link: [a, {invoke: deposit, args: [5]}]}]}
  - {call: print, args: [{link: [a, {invoke: deposit, args: [{set: amount, to: 2}]}]}]}
  - {call: print, args: [{link: [a, balance]}]}
`)
	assert.Equal(t, lines("5", "7", "7"), out)

	_, err := runMain(t, `
classes: [{name: C}]
main: [{link: [{invoke: C}, {invoke: nope}]}]`)
	requireError(t, err, errors.ErrorMethodNotFound)
}

func TestFunctionsAndDefaults(t *testing.T) {
	t.Parallel()

	const f = `
functions:
  - name: f
    params: [a, {set: b, to: {op: "+", left: a, right: 1}}]
    body: [{return: [a, b]}]
  - name: f
    params: [a, b, c]
    body: [{return: "three"}]
`
	out := mustRun(t, f+`
main:
  - {call: print, args: [{call: f, args: [5]}]}
  - {call: print, args: [{call: f, args: [5, 1]}]}
  - {call: print, args: [{call: f, args: [{set: b, to: 0}, {set: a, to: 2}]}]}
  - {call: print, args: [{call: f, args: [1, 2, 3]}]}
`)
	assert.Equal(t, lines("[5, 6]", "[5, 1]", "[2, 0]", "three"), out)

	tests := []struct {
		src  string
		want *errors.Template
	}{
		{`main: [{call: f, args: [{set: c, to: 1}]}]`, errors.ErrorUnknownParameter},
		{`main: [{call: f, args: [1, {set: a, to: 2}]}]`, errors.ErrorParameterBoundTwice},
		{`main: [{call: f, args: [{set: b, to: 2}]}]`, errors.ErrorMissingArgument},
		{`main: [{call: f, args: [1, 2, 3, 4]}]`, errors.ErrorFunctionNotFound},
	}
	for _, tt := range tests {
		_, err := runMain(t, f+tt.src)
		requireError(t, err, tt.want)
	}
}

func TestTooManyArguments(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "main.yaml", []byte(`
functions:
  - name: g
    params: [a]
    body: [{return: a}]
`), 0o644))
	prog, err := compiler.Load(context.Background(), compiler.Options{Fs: fs}, "main.yaml")
	require.NoError(t, err)
	e := New(prog, Options{Fs: fs}).(*evaluator)
	fnc, has := prog.Entry.LookupFunction("g", 1)
	require.True(t, has)

	// Only positional arguments count against the limit; named ones are reported by binding.
	args := []ast.Expression{ast.NewIntLiteral(nil, 1), ast.NewIntLiteral(nil, 2)}
	named := []*ast.Assignment{ast.NewAssignment(nil, ast.NewIdentifier(nil, "a"), ast.NewIntLiteral(nil, 3))}
	site := ast.NewCall(nil, ast.NewIdentifier(nil, "g"), args, named)
	_, err = e.invoke(NewContext(prog.Entry), site, fnc, nil, args, named)
	ee := requireError(t, err, errors.ErrorTooManyArguments)
	assert.Equal(t, "'g' takes at most 1 argument(s), but got 2", ee.Message())
}

func TestNotFoundSuggestions(t *testing.T) {
	t.Parallel()

	_, err := runMain(t, `
functions: [{name: compute, body: [{return: 1}]}]
main: [{call: compte}]`)
	e := requireError(t, err, errors.ErrorFunctionNotFound)
	assert.Equal(t, "Function 'compte' with 0 argument(s) not found; did you mean 'compute'?", e.Message())

	_, err = runMain(t, `main: [{set: value, to: 1}, {call: print, args: [valeu]}]`)
	e = requireError(t, err, errors.ErrorIdentifierNotFound)
	assert.Contains(t, e.Message(), "did you mean 'value'?")

	_, err = runMain(t, `main: [{call: print, args: [zzzzzz]}]`)
	e = requireError(t, err, errors.ErrorIdentifierNotFound)
	assert.Equal(t, "Identifier 'zzzzzz' not found", e.Message())
}

func TestFunctionReferences(t *testing.T) {
	t.Parallel()

	out := mustRun(t, pointClass+`
functions: [{name: f}]
main:
  - {call: print, args: [f]}
  - {call: print, args: [Point]}
  - {call: print, args: [{op: "==", left: {call: type, args: [{invoke: Point}]}, right: Point}]}
`)
	assert.Equal(t, lines("<function f>", "Point", "1"), out)
}
