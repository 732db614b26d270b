// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

// Package rt contains the runtime values of the Regina evaluator: primitives, collections, class instances with
// their deferred fields, and the frames that hold local variables.
package rt

import (
	"math"
	"strconv"
	"strings"

	"github.com/regina-lang/regina/pkg/compiler/symbols"
	"github.com/regina-lang/regina/pkg/tokens"
)

// Value is a runtime value.  The set of implementations is closed.
type Value interface {
	String() string   // the printable form, as `print` and `str` show it.
	TypeName() string // the kind name used by `type` and in error messages.
	value()
}

// NullValue is the type of the null constant.
type NullValue struct{}

// Null is the only null value.
var Null Value = NullValue{}

type Int int64
type Double float64
type String string

// List is a mutable, ordered sequence.  Lists are shared by reference.
type List struct {
	Elements []Value
}

// Range is the lazy arithmetic progression start, start+step, ... that stops before End.
type Range struct {
	Start int64
	End   int64
	Step  int64
}

// ClassRef is a class used as a value, e.g. the result of `type(p)`.  Constructing it makes a new instance.
type ClassRef struct {
	Class *symbols.Class
}

// FunctionRef is a module function named without calling it.  It holds every overload of the name.
type FunctionRef struct {
	Name      tokens.Name
	Module    *symbols.Module
	Overloads symbols.Functions
}

var _ Value = Null
var _ Value = Int(0)
var _ Value = Double(0)
var _ Value = String("")
var _ Value = (*List)(nil)
var _ Value = (*Dictionary)(nil)
var _ Value = (*Range)(nil)
var _ Value = (*ClassRef)(nil)
var _ Value = (*FunctionRef)(nil)
var _ Value = (*Instance)(nil)

func (NullValue) value()    {}
func (Int) value()          {}
func (Double) value()       {}
func (String) value()       {}
func (*List) value()        {}
func (*Range) value()       {}
func (*ClassRef) value()    {}
func (*FunctionRef) value() {}
func (*Dictionary) value()  {}
func (*Instance) value()    {}

func (NullValue) TypeName() string    { return "Null" }
func (Int) TypeName() string          { return "Int" }
func (Double) TypeName() string       { return "Double" }
func (String) TypeName() string       { return "String" }
func (*List) TypeName() string        { return "List" }
func (*Range) TypeName() string       { return "Range" }
func (*ClassRef) TypeName() string    { return "Class" }
func (*FunctionRef) TypeName() string { return "Function" }
func (*Dictionary) TypeName() string  { return "Dictionary" }

func (NullValue) String() string { return "null" }
func (v Int) String() string     { return strconv.FormatInt(int64(v), 10) }
func (v String) String() string  { return string(v) }

// String prints integral doubles with a trailing ".0" so they can be told apart from ints.
func (v Double) String() string {
	f := float64(v)
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !math.IsInf(f, 0) && !math.IsNaN(f) && !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (v *List) String() string { return show(v, nil) }

func (v *Range) String() string {
	return "range(" + strconv.FormatInt(v.Start, 10) + ", " + strconv.FormatInt(v.End, 10) + ", " +
		strconv.FormatInt(v.Step, 10) + ")"
}

func (v *ClassRef) String() string    { return v.Class.String() }
func (v *FunctionRef) String() string { return "<function " + string(v.Name) + ">" }

// Quote prints v the way it appears inside a collection: strings are quoted.
func Quote(v Value) string {
	return show(v, nil)
}

// show prints v inside a collection.  seen holds the instances being printed, so that cycles print as an ellipsis.
func show(v Value, seen map[*Instance]bool) string {
	switch t := v.(type) {
	case String:
		return strconv.Quote(string(t))
	case *List:
		parts := make([]string, len(t.Elements))
		for i, elem := range t.Elements {
			parts[i] = show(elem, seen)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Dictionary:
		parts := make([]string, 0, t.Len())
		for _, key := range t.keys {
			parts = append(parts, show(key, seen)+": "+show(t.m[key], seen))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *Instance:
		if seen[t] {
			return t.Class.String() + "{...}"
		}
		if seen == nil {
			seen = make(map[*Instance]bool)
		}
		seen[t] = true
		defer delete(seen, t)
		var parts []string
		for _, nm := range t.printOrder() {
			val, _ := t.fields.TryGet(nm)
			parts = append(parts, string(nm)+": "+show(val, seen))
		}
		return t.Class.String() + "{" + strings.Join(parts, ", ") + "}"
	default:
		return v.String()
	}
}

// NewList returns a list holding elems.
func NewList(elems ...Value) *List {
	return &List{Elements: elems}
}

// Len returns the number of items a range produces, capped at math.MaxInt64.  The span is computed unsigned since
// End - Start may not fit an int64.
func (v *Range) Len() int64 {
	if v.Step <= 0 || v.End <= v.Start {
		return 0
	}
	n := (uint64(v.End)-uint64(v.Start)-1)/uint64(v.Step) + 1
	if n > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(n)
}

// Each calls f with every item of the range in order, stopping early if f returns false.
func (v *Range) Each(f func(Int) bool) {
	if v.Step <= 0 {
		return
	}
	for i := v.Start; i < v.End; i += v.Step {
		if !f(Int(i)) {
			return
		}
		// Stop before i + Step could wrap around.
		if uint64(v.End)-uint64(i) <= uint64(v.Step) {
			return
		}
	}
}

// IsNumber returns true for ints and doubles.
func IsNumber(v Value) bool {
	switch v.(type) {
	case Int, Double:
		return true
	}
	return false
}

// AsFloat widens a number to a float64.
func AsFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case Int:
		return float64(n), true
	case Double:
		return float64(n), true
	}
	return 0, false
}

// Bool converts a Go boolean to the language's 1 or 0.
func Bool(b bool) Value {
	if b {
		return Int(1)
	}
	return Int(0)
}

// Equals compares two values structurally.  Numbers compare by value across kinds; instances, dictionaries and
// class references compare by identity.
func Equals(a Value, b Value) bool {
	if fa, ok := AsFloat(a); ok {
		fb, ok := AsFloat(b)
		return ok && fa == fb
	}
	switch av := a.(type) {
	case NullValue:
		_, isnull := b.(NullValue)
		return isnull
	case String:
		bv, iss := b.(String)
		return iss && av == bv
	case *List:
		bv, isl := b.(*List)
		if !isl || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equals(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Range:
		bv, isr := b.(*Range)
		return isr && *av == *bv
	case *ClassRef:
		bv, isc := b.(*ClassRef)
		return isc && av.Class == bv.Class
	case *FunctionRef:
		bv, isf := b.(*FunctionRef)
		return isf && av.Module == bv.Module && av.Name == bv.Name
	}
	return a == b
}
