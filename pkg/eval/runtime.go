// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	"bufio"
	encbinary "encoding/binary"
	"io"
	"os"

	"github.com/spf13/afero"
	"lukechampine.com/frand"

	"github.com/regina-lang/regina/pkg/compiler/symbols"
	"github.com/regina-lang/regina/pkg/eval/rt"
	"github.com/regina-lang/regina/pkg/workspace"
)

// Options configures the host side of an interpreter.  Zero fields take the process defaults.
type Options struct {
	Stdin  io.Reader // where `input` reads lines from.
	Stdout io.Writer // where `print` writes to.
	Fs     afero.Fs  // the file system behind `read`, `write`, `exists` and `delete`.
	Seed   *int64    // the initial random seed; nil means workspace.DefaultSeed.
	Hooks  Hooks     // optional callbacks for interesting events.
}

// Runtime is everything an embedded function may touch: standard streams, the file system, the random generator,
// the instance allocator and the singleton objects.  One is created per program run and passed by reference.
type Runtime struct {
	Stdin  *bufio.Reader
	Stdout io.Writer
	Fs     afero.Fs
	Alloc  *Allocator

	seed    int64
	rng     *frand.RNG
	objects map[*symbols.Class]*rt.Instance // singleton objects, created on first use.
}

// NewRuntime creates a runtime from opts.
func NewRuntime(opts Options) *Runtime {
	r := &Runtime{
		Stdout:  opts.Stdout,
		Fs:      opts.Fs,
		Alloc:   NewAllocator(),
		objects: make(map[*symbols.Class]*rt.Instance),
	}
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	r.Stdin = bufio.NewReader(stdin)
	if r.Stdout == nil {
		r.Stdout = os.Stdout
	}
	if r.Fs == nil {
		r.Fs = afero.NewOsFs()
	}
	seed := workspace.DefaultSeed
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	r.Reseed(seed)
	return r
}

// Seed returns the seed the random generator was last reset with.
func (r *Runtime) Seed() int64 { return r.seed }

// Reseed resets the random generator so that the same seed always yields the same sequence.
func (r *Runtime) Reseed(seed int64) {
	var key [32]byte
	encbinary.LittleEndian.PutUint64(key[:8], uint64(seed))
	r.seed = seed
	r.rng = frand.NewCustom(key[:], 1024, 12)
}

// RandomInt returns a pseudo-random 32-bit signed integer.
func (r *Runtime) RandomInt() int64 {
	return int64(int32(uint32(r.rng.Uint64n(1 << 32))))
}

// RandomDouble returns a pseudo-random number in [0, 1).
func (r *Runtime) RandomDouble() float64 {
	return float64(r.rng.Uint64n(1<<53)) / (1 << 53)
}

// Object returns the singleton instance of an object declaration, if it has been created.
func (r *Runtime) Object(class *symbols.Class) (*rt.Instance, bool) {
	inst, has := r.objects[class]
	return inst, has
}
