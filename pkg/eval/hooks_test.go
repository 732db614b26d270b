// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regina-lang/regina/pkg/compiler/errors"
	"github.com/regina-lang/regina/pkg/compiler/symbols"
	"github.com/regina-lang/regina/pkg/diag"
	"github.com/regina-lang/regina/pkg/eval/rt"
	"github.com/regina-lang/regina/pkg/tokens"
)

// recorder is a Hooks implementation that logs every event.
type recorder struct {
	events []string
	depth  int
	limit  int // the deepest call allowed, or zero for no limit.
	done   error
}

var _ Hooks = (*recorder)(nil)

func (r *recorder) OnEnterFunction(fnc symbols.Function, args []rt.Value) (func(), error) {
	if r.limit > 0 && r.depth >= r.limit {
		return nil, fmt.Errorf("call depth exceeded in %v", fnc)
	}
	r.depth++
	r.events = append(r.events, fmt.Sprintf("enter %v%v", fnc, args))
	return func() { r.depth-- }, nil
}

func (r *recorder) OnObjectInit(tree diag.Diagable, inst *rt.Instance) {
	r.events = append(r.events, fmt.Sprintf("init %v", inst.Class))
}

func (r *recorder) OnFieldResolved(inst *rt.Instance, nm tokens.Name, v rt.Value) {
	r.events = append(r.events, fmt.Sprintf("field %v.%v=%v", inst.Class, nm, v))
}

func (r *recorder) OnDone(err error) {
	r.done = err
}

func TestHooks(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	_, err := run(t, program{"main.yaml": pointClass + `
functions:
  - name: make
    params: [y]
    body: [{return: {invoke: Point, args: [{set: y, to: y}]}}]
main: [{call: make, args: [4]}]
`}, Options{Hooks: rec})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"enter make[4]",
		"init Point",
		"field Point.x=8",
	}, rec.events)
	assert.NoError(t, rec.done)
}

func TestHooksCanAbort(t *testing.T) {
	t.Parallel()

	rec := &recorder{limit: 10}
	_, err := run(t, program{"main.yaml": `
functions:
  - name: forever
    params: [n]
    body: [{return: {call: forever, args: [{op: "+", left: n, right: 1}]}}]
main: [{call: forever, args: [0]}]
`}, Options{Hooks: rec})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "call depth exceeded in forever")
	assert.Equal(t, errors.Kind(0), errors.KindOf(err))
	assert.Equal(t, err, rec.done)
	assert.Zero(t, rec.depth)
}
