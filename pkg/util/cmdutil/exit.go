// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package cmdutil

import (
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	rerrors "github.com/regina-lang/regina/pkg/compiler/errors"
	"github.com/regina-lang/regina/pkg/diag"
)

// ExitCode is the process exit code of any failed command.
const ExitCode = 1

// DetailedError renders err along with the stack traces of its causer chain, if any were recorded.
func DetailedError(err error) string {
	var sb strings.Builder
	sb.WriteString(err.Error())
	for depth := 0; err != nil; depth++ {
		stackerr, ok := err.(interface{ StackTrace() errors.StackTrace })
		if !ok {
			break
		}
		sb.WriteString("\n")
		if depth > 0 {
			sb.WriteString("CAUSED BY...\n")
		}
		for _, f := range stackerr.StackTrace() {
			fmt.Fprintf(&sb, "%+v\n", f)
		}
		cause := errors.Cause(err)
		if cause == err {
			break
		}
		err = cause
	}
	return sb.String()
}

// RunFunc wraps an error-returning run func with standard error handling.  All commands should wrap themselves in
// this to ensure consistent exit behavior, and to avoid the default Cobra unhandled error behavior, which prints usage.
func RunFunc(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := run(cmd, args); err != nil {
			Fail(err)
		}
	}
}

// Fail reports err and exits.  Located program errors are reported with their location and ID.  Anything else is a
// host failure, whose stack trace is printed when logging to stderr and logged otherwise.
func Fail(err error) {
	switch {
	case isLocated(err):
		rerrors.Report(Diag(), err)
	case LogToStderr:
		Diag().Errorf(diag.Message(DetailedError(err)))
	default:
		glog.V(3).Infof(DetailedError(err))
		Diag().Errorf(diag.Message(err.Error()))
	}
	glog.Flush()
	os.Exit(ExitCode)
}

// isLocated returns true if err, or any error it aggregates, is a located program error.
func isLocated(err error) bool {
	if multi, ok := err.(*multierror.Error); ok {
		for _, werr := range multi.WrappedErrors() {
			if isLocated(werr) {
				return true
			}
		}
		return false
	}
	_, ok := rerrors.As(err)
	return ok
}
