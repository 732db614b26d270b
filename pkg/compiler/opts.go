// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package compiler

import (
	"github.com/spf13/afero"
)

// Options contains all of the settings a user can use to control loading.
type Options struct {
	Fs afero.Fs // the file system sources are read from.
}

// DefaultOpts returns the default set of compiler options, reading from the operating system's file system.
func DefaultOpts() Options {
	return Options{
		Fs: afero.NewOsFs(),
	}
}
