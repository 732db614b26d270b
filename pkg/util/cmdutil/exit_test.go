// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package cmdutil

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	rerrors "github.com/regina-lang/regina/pkg/compiler/errors"
)

func TestDetailedError(t *testing.T) {
	t.Parallel()

	plain := errors.New("disk on fire")
	detailed := DetailedError(plain)
	assert.Contains(t, detailed, "disk on fire\n")
	assert.Contains(t, detailed, "TestDetailedError")

	wrapped := DetailedError(errors.Wrap(plain, "writing out.txt"))
	assert.Contains(t, wrapped, "writing out.txt: disk on fire")
	assert.Contains(t, wrapped, "CAUSED BY...")

	assert.Equal(t, "bare", DetailedError(bareError("bare")))
}

func TestIsLocated(t *testing.T) {
	t.Parallel()

	located := rerrors.ErrorDivisionByZero.At(nil)
	assert.True(t, isLocated(located))
	assert.True(t, isLocated(errors.Wrap(located, "evaluating main")))
	assert.True(t, isLocated(multierror.Append(nil, errors.New("plain"), located)))
	assert.False(t, isLocated(errors.New("plain")))
	assert.False(t, isLocated(multierror.Append(nil, errors.New("plain"))))
}

type bareError string

func (e bareError) Error() string { return string(e) }
