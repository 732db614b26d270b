// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package rt

// Unwind instructs callers how to unwind the stack.
type Unwind struct {
	kind     unwindKind // the kind of the unwind.
	returned Value      // the value returned, if any.
}

type unwindKind int

const (
	breakUnwind unwindKind = iota
	continueUnwind
	returnUnwind
)

func NewBreakUnwind() *Unwind           { return &Unwind{kind: breakUnwind} }
func NewContinueUnwind() *Unwind        { return &Unwind{kind: continueUnwind} }
func NewReturnUnwind(ret Value) *Unwind { return &Unwind{kind: returnUnwind, returned: ret} }

func (uw *Unwind) Break() bool    { return uw.kind == breakUnwind }
func (uw *Unwind) Continue() bool { return uw.kind == continueUnwind }
func (uw *Unwind) Return() bool   { return uw.kind == returnUnwind }

// Returned is the value carried by a return; a bare return carries null.
func (uw *Unwind) Returned() Value {
	if uw.returned == nil {
		return Null
	}
	return uw.returned
}

func (uw *Unwind) String() string {
	switch uw.kind {
	case breakUnwind:
		return "break"
	case continueUnwind:
		return "continue"
	default:
		return "return"
	}
}
