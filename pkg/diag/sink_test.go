// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package diag

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounts(t *testing.T) {
	t.Parallel()

	sink := newDefaultSink(FormatOptions{}, io.Discard)

	const numEach = 10

	for i := 0; i < numEach; i++ {
		assert.Equal(t, 0, sink.Errors(), "expected errors pre to stay at zero")
		assert.Equal(t, i, sink.Warnings(), "expected warnings pre to be at iteration count")
		sink.Warningf(&Diag{Message: "A test of the emergency warning system: %v."}, i)
		assert.Equal(t, i+1, sink.Warnings(), "expected warnings post to be at iteration count+1")
	}

	for i := 0; i < numEach; i++ {
		assert.Equal(t, i, sink.Errors(), "expected errors pre to be at iteration count")
		sink.Errorf(&Diag{Message: "A test of the emergency error system: %v."}, i)
		assert.Equal(t, i+1, sink.Errors(), "expected errors post to be at iteration count+1")
	}

	assert.Equal(t, 2*numEach, sink.Count())
	assert.False(t, sink.Success())
}

// TestEscape ensures that preformatted messages containing format-like characters aren't interpreted again.
func TestEscape(t *testing.T) {
	t.Parallel()

	sink := newDefaultSink(FormatOptions{}, io.Discard)

	s := sink.Stringify(Message("lots of %v %s %d chars"), Error)
	assert.Equal(t, "error: lots of %v %s %d chars\n", s)

	s = sink.Stringify(Message("%s"), Error, "lots of %v chars")
	assert.Equal(t, "error: lots of %v chars\n", s)
}

func TestStringifyLocation(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	sink := newDefaultSink(FormatOptions{Pwd: "/work"}, &out)

	d := &Diag{ID: 1004, Message: "Function 'f' expects 1 argument(s)"}
	sink.Errorf(d.At(&fakeDiagable{
		doc: NewDocument("/work/src/main.yaml"),
		loc: &Location{Start: Pos{Line: 7, Column: 3}},
	}))
	sink.Warningf(Message("careful"))
	assert.Equal(t,
		"src/main.yaml(7,3): error RG1004: Function 'f' expects 1 argument(s)\nwarning: careful\n", out.String())
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/main.yaml", []byte("main:\n\t- {call: f, args: [1]}\n"), 0644))

	var out bytes.Buffer
	sink := newDefaultSink(FormatOptions{Source: fs}, &out)
	d := &Diag{ID: 1004, Message: "no such function"}
	sink.Errorf(d.At(&fakeDiagable{
		doc: NewDocument("/main.yaml"),
		loc: &Location{Start: Pos{Line: 2, Column: 4}},
	}))
	assert.Equal(t,
		"/main.yaml(2,4): error RG1004: no such function\n"+
			"    \t- {call: f, args: [1]}\n"+
			"    \t  ^\n", out.String())

	// Lines past the end and unreadable files have no excerpt.
	out.Reset()
	sink.Errorf(d.At(&fakeDiagable{doc: NewDocument("/main.yaml"), loc: &Location{Start: Pos{Line: 9, Column: 1}}}))
	sink.Errorf(d.At(&fakeDiagable{doc: NewDocument("/gone.yaml"), loc: &Location{Start: Pos{Line: 1, Column: 1}}}))
	assert.Equal(t,
		"/main.yaml(9,1): error RG1004: no such function\n/gone.yaml(1,1): error RG1004: no such function\n",
		out.String())
}

type fakeDiagable struct {
	doc *Document
	loc *Location
}

func (f *fakeDiagable) Where() (*Document, *Location) { return f.doc, f.loc }
