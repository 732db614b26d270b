// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

// Package errors contains the numbered diagnostics that loading and evaluating a Regina program can produce.  Every
// diagnostic belongs to one Kind, and At turns it into a located Go error.
package errors

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/regina-lang/regina/pkg/diag"
)

// Kind classifies errors.
type Kind int

const (
	NotFound        Kind = iota + 1 // an identifier, class, function or property is absent where required.
	TypeMismatch                    // an operation received a value of the wrong kind.
	ArityMismatch                   // too many or too few arguments, or a parameter bound twice.
	StructuralError                 // a tree shape that cannot be interpreted.
	UserRaised                      // the program asked to fail.
	HostFailure                     // the host refused an operation, e.g. a file could not be read.
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "NotFound"
	case TypeMismatch:
		return "TypeMismatch"
	case ArityMismatch:
		return "ArityMismatch"
	case StructuralError:
		return "StructuralError"
	case UserRaised:
		return "UserRaised"
	case HostFailure:
		return "HostFailure"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Template is a numbered diagnostic whose message still has to be formatted.
type Template struct {
	ID      diag.ID
	Kind    Kind
	Message string
}

func newError(id diag.ID, kind Kind, msg string) *Template {
	return &Template{ID: id, Kind: kind, Message: msg}
}

// At formats the template with args and attaches the location of node to it.
func (t *Template) At(node diag.Diagable, args ...interface{}) *Error {
	d := (&diag.Diag{ID: t.ID, Message: fmt.Sprintf(t.Message, args...)}).At(node)
	return &Error{Kind: t.Kind, Diag: d}
}

// Error is a located diagnostic raised while loading or running a program.
type Error struct {
	Kind Kind
	Diag *diag.Diag
}

var _ error = (*Error)(nil)

func (err *Error) Error() string {
	var buffer bytes.Buffer
	if err.Diag.Doc != nil {
		buffer.WriteString(err.Diag.Doc.File)
		buffer.WriteRune(':')
	}
	if err.Diag.Loc != nil && !err.Diag.Loc.IsEmpty() {
		buffer.WriteString(err.Diag.Loc.Start.String())
		buffer.WriteRune(':')
	}
	if buffer.Len() > 0 {
		buffer.WriteRune(' ')
	}
	buffer.WriteString(err.Diag.Message)
	return buffer.String()
}

// Message returns the formatted message without any location.
func (err *Error) Message() string { return err.Diag.Message }

// As extracts the located error behind err, looking through any wrapping.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of err, or zero if it is not a located error.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return 0
}

// Report sends err to the sink, one diagnostic per aggregated error.
func Report(sink diag.Sink, err error) {
	if multi, ok := err.(*multierror.Error); ok {
		for _, werr := range multi.WrappedErrors() {
			Report(sink, werr)
		}
		return
	}
	if e, ok := As(err); ok {
		sink.Errorf(e.Diag)
		return
	}
	sink.Errorf(diag.Message(err.Error()))
}
