// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestReseedIsDeterministic(t *testing.T) {
	t.Parallel()

	draw := func(r *Runtime) []int64 {
		var xs []int64
		for i := 0; i < 8; i++ {
			xs = append(xs, r.RandomInt())
		}
		return xs
	}

	seed := int64(-42)
	a := NewRuntime(Options{Seed: &seed, Fs: afero.NewMemMapFs()})
	b := NewRuntime(Options{Seed: &seed, Fs: afero.NewMemMapFs()})
	assert.Equal(t, seed, a.Seed())
	first := draw(a)
	assert.Equal(t, first, draw(b))

	a.Reseed(seed)
	assert.Equal(t, first, draw(a))

	a.Reseed(seed + 1)
	assert.NotEqual(t, first, draw(a))
	for i := 0; i < 100; i++ {
		d := a.RandomDouble()
		assert.True(t, d >= 0 && d < 1, "%v out of range", d)
	}
}
