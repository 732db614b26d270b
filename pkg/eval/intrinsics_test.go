// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/regina-lang/regina/pkg/compiler/errors"
)

// printed evaluates a single expression and returns how print shows it.
func printed(t require.TestingT, expr string) string {
	out := mustRun(t, fmt.Sprintf("main: [{call: print, args: [%v]}]", expr))
	return strings.TrimSuffix(out, "\n")
}

func TestOperators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want string
	}{
		{`{op: "+", left: 1, right: 2}`, "3"},
		{`{op: "+", left: 1, right: 2.5}`, "3.5"},
		{`{op: "+", left: "a", right: 1}`, "a1"},
		{`{op: "+", left: [1], right: [2]}`, "[1, 2]"},
		{`{op: "*", left: 2.0, right: 3}`, "6.0"},
		{`{op: "/", left: 7, right: 2}`, "3.5"},
		{`{op: "//", left: -7, right: 2}`, "-4"},
		{`{op: "//", left: 7.5, right: 2}`, "3.0"},
		{`{op: "%", left: 7, right: 3}`, "1"},
		{`{op: "==", left: 1, right: 1.0}`, "1"},
		{`{op: "!=", left: [1, 2], right: [1, 2]}`, "0"},
		{`{op: "<", left: "a", right: "b"}`, "1"},
		{`{op: ">=", left: 2, right: 2.5}`, "0"},
		{`{op: "&&", left: 0, right: {call: except, args: ["unreachable"]}}`, "0"},
		{`{op: "||", left: 2, right: {call: except, args: ["unreachable"]}}`, "1"},
		{`{op: "-", operand: 3}`, "-3"},
		{`{op: "!", operand: 0}`, "1"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, printed(t, tt.expr))
		})
	}
}

func TestOperatorErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want *errors.Template
	}{
		{`{op: "/", left: 1, right: 0}`, errors.ErrorDivisionByZero},
		{`{op: "%", left: 1.5, right: 0}`, errors.ErrorDivisionByZero},
		{`{op: "-", left: "a", right: 1}`, errors.ErrorBinaryOperatorMismatch},
		{`{op: "<", left: "a", right: 1}`, errors.ErrorBinaryOperatorMismatch},
		{`{op: "-", operand: "a"}`, errors.ErrorUnaryOperatorMismatch},
		{`{op: "&&", left: 1, right: "a"}`, errors.ErrorConditionNotNumeric},
	}
	for _, tt := range tests {
		_, err := runMain(t, fmt.Sprintf("main: [%v]", tt.expr))
		requireError(t, err, tt.want)
	}
}

func TestConversions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want string
	}{
		{`{call: str, args: [2.0]}`, "2.0"},
		{`{op: "+", left: {call: str, args: [[1, "a"]]}, right: "!"}`, `[1, "a"]!`},
		{`{call: int, args: ["42"]}`, "42"},
		{`{call: int, args: ["0x10"]}`, "16"},
		{`{call: int, args: ["x"]}`, "null"},
		{`{call: int, args: [3.9]}`, "3"},
		{`{call: double, args: ["2.5"]}`, "2.5"},
		{`{call: double, args: [2]}`, "2.0"},
		{`{call: list, args: ["ab"]}`, `["a", "b"]`},
		{`{call: list, args: [{dict: [{key: "a", value: 1}]}]}`, `[{"key": "a", "value": 1}]`},
		{`{call: list, args: [{call: range, args: [1, 4]}]}`, "[1, 2, 3]"},
		{`{call: range, args: [0, 10, 2]}`, "range(0, 10, 2)"},
		{`{call: type, args: [1]}`, "Int"},
		{`{call: type, args: [null]}`, "Null"},
		{`{call: type, args: [{dict: []}]}`, "Dictionary"},
		{`{call: floatEquals, args: [{op: "+", left: 0.1, right: 0.2}, 0.3]}`, "1"},
		{`{call: floatEquals, args: [1, 1.1]}`, "0"},
		{`{call: floatEquals, args: [1, 1.1, {set: absTh, to: 0.5}]}`, "1"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, printed(t, tt.expr))
		})
	}

	_, err := runMain(t, `main: [{call: range, args: [0, 10, 0]}]`)
	requireError(t, err, errors.ErrorStepNotPositive)
	_, err = runMain(t, `main: [{call: int, args: [[1]]}]`)
	requireError(t, err, errors.ErrorUnexpectedType)
}

func TestLibrary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want string
	}{
		{`{link: ["héllo", size]}`, "5"},
		{`{link: ["Hello", {invoke: uppercase}]}`, "HELLO"},
		{`{link: ["Hello", {invoke: lowercase}]}`, "hello"},
		{`{link: ["Hello", {invoke: substring, args: [1, 3]}]}`, "el"},
		{`{link: ["Hello", {invoke: substring, args: [3]}]}`, "lo"},
		{`{link: ["Hello", {invoke: contains, args: ["ell"]}]}`, "1"},
		{`{link: ["a b", {invoke: split}]}`, `["a", "b"]`},
		{`{link: ["a,b", {invoke: split, args: [","]}]}`, `["a", "b"]`},
		{`{link: [[3, 1, 2], {invoke: sorted}]}`, "[1, 2, 3]"},
		{`{link: [[1, 2], {invoke: joinToString}]}`, "1, 2"},
		{`{link: [[1, 2], {invoke: joinToString, args: ["-"]}]}`, "1-2"},
		{`{link: [[1, 2], {invoke: has, args: [2]}]}`, "1"},
		{`{link: [[1, 2], size]}`, "2"},
		{`{link: [{dict: [{key: "a", value: 1}]}, keys]}`, `["a"]`},
		{`{link: [{dict: [{key: "a", value: 1}]}, values]}`, "[1]"},
		{`{link: [{dict: [{key: "a", value: 1}]}, {invoke: has, args: ["b"]}]}`, "0"},
		{`{link: [-2.5, {invoke: abs}]}`, "2.5"},
		{`{link: [2.5, {invoke: floor}]}`, "2.0"},
		{`{link: [-3, {invoke: abs}]}`, "3"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, printed(t, tt.expr))
		})
	}

	out := mustRun(t, `
main:
  - {set: xs, to: [1, 2, 3]}
  - {call: print, args: [{link: [xs, {invoke: remove, args: [2]}]}]}
  - {call: print, args: [{link: [xs, {invoke: removeAt, args: [0]}]}]}
  - {set: d, to: {dict: [{key: "a", value: 1}]}}
  - {call: print, args: [{link: [d, {invoke: remove, args: ["a"]}]}]}
  - {call: print, args: [[xs, d]]}
`)
	assert.Equal(t, lines("1", "1", "1", "[[3], {}]"), out)

	_, err := runMain(t, `main: [{link: [1, {invoke: nope}]}]`)
	requireError(t, err, errors.ErrorMethodNotFound)
	_, err = runMain(t, `main: [{link: ["a", nope]}]`)
	requireError(t, err, errors.ErrorPropertyNotFound)
	_, err = runMain(t, `main: [{link: [[1, "a"], {invoke: sorted}]}]`)
	requireError(t, err, errors.ErrorBinaryOperatorMismatch)
}

func TestUserErrors(t *testing.T) {
	t.Parallel()

	_, err := runMain(t, `main: [{call: except, args: ["bad things"]}]`)
	e := requireError(t, err, errors.ErrorUserRaised)
	assert.Equal(t, "bad things", e.Message())

	out, err := runMain(t, `main: [{call: test, args: [1]}, {call: print, args: ["ok"]}, {call: test, args: [0]}]`)
	assert.Equal(t, "ok\n", out)
	requireError(t, err, errors.ErrorTestFailed)
}

func TestFiles(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	out, err := run(t, program{"main.yaml": `
main:
  - {call: write, args: ["hi", "out.txt"]}
  - {call: print, args: [{call: read, args: ["out.txt"]}]}
  - {call: print, args: [{call: exists, args: ["out.txt"]}]}
  - {call: print, args: [{call: delete, args: ["out.txt"]}]}
  - {call: print, args: [{call: delete, args: ["out.txt"]}]}
  - {call: print, args: [{call: exists, args: ["out.txt"]}]}
  - {call: write, args: ["kept", "kept.txt"]}
  - {call: read, args: ["missing.txt"]}
`}, Options{Fs: fs})
	assert.Equal(t, lines("hi", "1", "1", "0", "0"), out)
	requireError(t, err, errors.ErrorFileOperation)

	kept, err := afero.ReadFile(fs, "kept.txt")
	require.NoError(t, err)
	assert.Equal(t, "kept", string(kept))
}

func TestInput(t *testing.T) {
	t.Parallel()

	out, err := run(t, program{"main.yaml": `
main:
  - {call: print, args: [{call: input}]}
  - {call: print, args: [{call: input}]}
  - {call: print, args: [{call: input}]}
`}, Options{Stdin: strings.NewReader("first\r\nsecond")})
	require.NoError(t, err)
	assert.Equal(t, lines("first", "second", "null"), out)
}

func TestRandomIsSeeded(t *testing.T) {
	t.Parallel()

	src := `
main:
  - {call: print, args: [{call: rnd, args: [1]}]}
  - {call: print, args: [{call: rnd}]}
  - {call: seed, args: [7]}
  - {call: print, args: [{call: rnd, args: [1]}]}
  - {call: seed, args: [7]}
  - {call: print, args: [{call: rnd, args: [1]}]}
`
	first := mustRun(t, src)
	assert.Equal(t, first, mustRun(t, src))

	vals := strings.Split(strings.TrimSpace(first), "\n")
	require.Len(t, vals, 4)
	assert.Equal(t, vals[2], vals[3])
	assert.Contains(t, vals[1], ".")

	seed := int64(7)
	other, err := run(t, program{"main.yaml": src}, Options{Seed: &seed})
	require.NoError(t, err)
	assert.Equal(t, vals[2], strings.Split(other, "\n")[0])
}

func TestCopy(t *testing.T) {
	t.Parallel()

	out := mustRun(t, `
classes:
  - name: Node
    fields:
      - {set: items, to: [1]}
main:
  - {set: a, to: {invoke: Node}}
  - {set: shallow, to: {call: copy, args: [a, 0]}}
  - {set: deep, to: {call: copy, args: [a]}}
  - {link: [a, items, {invoke: add, args: [2]}]}
  - {call: print, args: [shallow]}
  - {call: print, args: [deep]}
  - {call: print, args: [{op: "==", left: a, right: shallow}]}
`)
	assert.Equal(t, lines("Node{items: [1, 2]}", "Node{items: [1]}", "0"), out)
}

// TestBindingCompleteness checks that every parameter of a call ends up bound exactly once, whatever mix of
// positional, named and defaulted arguments supplies it.
func TestBindingCompleteness(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		required := rapid.IntRange(0, 3).Draw(t, "required")
		defaulted := rapid.IntRange(0, 3).Draw(t, "defaulted")
		total := required + defaulted
		positional := rapid.IntRange(0, total).Draw(t, "positional")

		var params, body []string
		for i := 0; i < total; i++ {
			if i < required {
				params = append(params, fmt.Sprintf("p%v", i))
			} else {
				params = append(params, fmt.Sprintf("{set: p%v, to: %v}", i, 100+i))
			}
			body = append(body, fmt.Sprintf("p%v", i))
		}

		want := make([]string, total)
		var args []string
		var named []int
		for i := 0; i < total; i++ {
			switch {
			case i < positional:
				args = append(args, fmt.Sprint((i+1)*10))
				want[i] = fmt.Sprint((i + 1) * 10)
			case i < required || rapid.Bool().Draw(t, fmt.Sprintf("supply p%v", i)):
				named = append(named, i)
				want[i] = fmt.Sprint((i + 1) * 10)
			default:
				want[i] = fmt.Sprint(100 + i)
			}
		}
		for _, i := range rapid.Permutation(named).Draw(t, "named order") {
			args = append(args, fmt.Sprintf("{set: p%v, to: %v}", i, (i+1)*10))
		}

		src := fmt.Sprintf(`
functions:
  - name: f
    params: [%v]
    body: [{return: [%v]}]
main: [{call: print, args: [{call: f, args: [%v]}]}]
`, strings.Join(params, ", "), strings.Join(body, ", "), strings.Join(args, ", "))
		out, err := runMain(t, src)
		require.NoError(t, err)
		assert.Equal(t, "["+strings.Join(want, ", ")+"]\n", out)
	})
}
