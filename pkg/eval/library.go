// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/compiler/errors"
	"github.com/regina-lang/regina/pkg/compiler/symbols"
	"github.com/regina-lang/regina/pkg/eval/rt"
	"github.com/regina-lang/regina/pkg/tokens"
)

// Property computes a read-only property of a primitive value.
type Property func(v rt.Value) rt.Value

// Library holds the properties and methods of primitive values, keyed by type name.  Methods are intrinsics whose
// receiver arrives in Args.This.
type Library struct {
	props   map[string]map[tokens.Name]Property
	methods map[string]symbols.FunctionMap
}

// NewLibrary returns the standard primitive library.
func NewLibrary() *Library {
	lib := &Library{
		props:   make(map[string]map[tokens.Name]Property),
		methods: make(map[string]symbols.FunctionMap),
	}

	str := rt.String("").TypeName()
	lib.prop(str, "size", func(v rt.Value) rt.Value { return rt.Int(runeCount(v.(rt.String))) })
	lib.method(str, NewIntrinsic("substring", []tokens.Name{"start"}, substring,
		symbols.Default{Name: "end", Value: ast.NewNullLiteral(nil)}))
	lib.method(str, NewIntrinsic("uppercase", nil, mapString(strings.ToUpper)))
	lib.method(str, NewIntrinsic("lowercase", nil, mapString(strings.ToLower)))
	lib.method(str, NewIntrinsic("contains", []tokens.Name{"x"}, stringContains))
	lib.method(str, NewIntrinsic("split", nil, split,
		symbols.Default{Name: "separator", Value: ast.NewStringLiteral(nil, " ")}))

	list := rt.NewList().TypeName()
	lib.prop(list, "size", func(v rt.Value) rt.Value { return rt.Int(len(v.(*rt.List).Elements)) })
	lib.method(list, NewIntrinsic("add", []tokens.Name{"x"}, listAdd))
	lib.method(list, NewIntrinsic("remove", []tokens.Name{"x"}, listRemove))
	lib.method(list, NewIntrinsic("removeAt", []tokens.Name{"index"}, listRemoveAt))
	lib.method(list, NewIntrinsic("has", []tokens.Name{"x"}, listHas))
	lib.method(list, NewIntrinsic("joinToString", nil, joinToString,
		symbols.Default{Name: "separator", Value: ast.NewStringLiteral(nil, ", ")}))
	lib.method(list, NewIntrinsic("sorted", nil, sorted))

	dict := rt.NewDictionary().TypeName()
	lib.prop(dict, "size", func(v rt.Value) rt.Value { return rt.Int(v.(*rt.Dictionary).Len()) })
	lib.prop(dict, "keys", func(v rt.Value) rt.Value { return rt.NewList(v.(*rt.Dictionary).Keys()...) })
	lib.prop(dict, "values", func(v rt.Value) rt.Value { return rt.NewList(v.(*rt.Dictionary).Values()...) })
	lib.method(dict, NewIntrinsic("has", []tokens.Name{"key"}, dictHas))
	lib.method(dict, NewIntrinsic("remove", []tokens.Name{"key"}, dictRemove))

	for _, num := range []string{rt.Int(0).TypeName(), rt.Double(0).TypeName()} {
		lib.method(num, NewIntrinsic("abs", nil, numeric(math.Abs)))
		lib.method(num, NewIntrinsic("round", nil, numeric(math.Round)))
		lib.method(num, NewIntrinsic("floor", nil, numeric(math.Floor)))
		lib.method(num, NewIntrinsic("ceil", nil, numeric(math.Ceil)))
	}
	return lib
}

func (lib *Library) prop(t string, nm tokens.Name, p Property) {
	if lib.props[t] == nil {
		lib.props[t] = make(map[tokens.Name]Property)
	}
	lib.props[t][nm] = p
}

func (lib *Library) method(t string, intrin *Intrinsic) {
	if lib.methods[t] == nil {
		lib.methods[t] = make(symbols.FunctionMap)
	}
	lib.methods[t][intrin.Name()] = append(lib.methods[t][intrin.Name()], intrin)
}

// Property reads the property nm of a primitive value.
func (lib *Library) Property(v rt.Value, nm tokens.Name) (rt.Value, bool) {
	p, has := lib.props[v.TypeName()][nm]
	if !has {
		return nil, false
	}
	return p(v), true
}

// Method finds the method nm of a primitive value that accepts argc arguments.
func (lib *Library) Method(v rt.Value, nm tokens.Name, argc int) (symbols.Function, bool) {
	return lib.methods[v.TypeName()][nm].Select(argc)
}

// PropertyNames lists the properties of a primitive value, for suggestions.
func (lib *Library) PropertyNames(v rt.Value) []tokens.Name {
	var names []tokens.Name
	for nm := range lib.props[v.TypeName()] {
		names = append(names, nm)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// MethodNames lists the methods of a primitive value, for suggestions.
func (lib *Library) MethodNames(v rt.Value) []tokens.Name {
	return symbols.StableFunctionMap(lib.methods[v.TypeName()])
}

// Strings

func substring(e *evaluator, args *Args) (rt.Value, error) {
	runes := []rune(string(args.This.(rt.String)))
	start, err := args.Int(0)
	if err != nil {
		return nil, err
	}
	end := int64(len(runes))
	if _, isnull := args.Values[1].(rt.NullValue); !isnull {
		if end, err = args.Int(1); err != nil {
			return nil, err
		}
	}
	if start < 0 || end > int64(len(runes)) || start > end {
		return nil, errors.ErrorIndexOutOfRange.At(args.Site, fmt.Sprintf("%v..%v", start, end), len(runes))
	}
	return rt.String(runes[start:end]), nil
}

func mapString(f func(string) string) Invoker {
	return func(e *evaluator, args *Args) (rt.Value, error) {
		return rt.String(f(string(args.This.(rt.String)))), nil
	}
}

func stringContains(e *evaluator, args *Args) (rt.Value, error) {
	sub, err := args.String(0)
	if err != nil {
		return nil, err
	}
	return rt.Bool(strings.Contains(string(args.This.(rt.String)), sub)), nil
}

func split(e *evaluator, args *Args) (rt.Value, error) {
	sep, err := args.String(0)
	if err != nil {
		return nil, err
	}
	var parts []rt.Value
	for _, part := range strings.Split(string(args.This.(rt.String)), sep) {
		parts = append(parts, rt.String(part))
	}
	return rt.NewList(parts...), nil
}

// Lists

func listAdd(e *evaluator, args *Args) (rt.Value, error) {
	l := args.This.(*rt.List)
	l.Elements = append(l.Elements, args.Values[0])
	return rt.Null, nil
}

// listRemove removes the first element equal to x and reports whether there was one.
func listRemove(e *evaluator, args *Args) (rt.Value, error) {
	l := args.This.(*rt.List)
	for i, el := range l.Elements {
		if rt.Equals(el, args.Values[0]) {
			l.Elements = append(l.Elements[:i], l.Elements[i+1:]...)
			return rt.Bool(true), nil
		}
	}
	return rt.Bool(false), nil
}

// listRemoveAt removes the element at index and returns it.
func listRemoveAt(e *evaluator, args *Args) (rt.Value, error) {
	l := args.This.(*rt.List)
	i, err := position(args.Site, args.Values[0], len(l.Elements))
	if err != nil {
		return nil, err
	}
	removed := l.Elements[i]
	l.Elements = append(l.Elements[:i], l.Elements[i+1:]...)
	return removed, nil
}

func listHas(e *evaluator, args *Args) (rt.Value, error) {
	for _, el := range args.This.(*rt.List).Elements {
		if rt.Equals(el, args.Values[0]) {
			return rt.Bool(true), nil
		}
	}
	return rt.Bool(false), nil
}

func joinToString(e *evaluator, args *Args) (rt.Value, error) {
	sep, err := args.String(0)
	if err != nil {
		return nil, err
	}
	elems := args.This.(*rt.List).Elements
	strs := make([]string, len(elems))
	for i, el := range elems {
		strs[i] = el.String()
	}
	return rt.String(strings.Join(strs, sep)), nil
}

// sorted returns a new list with the elements in ascending order.  The elements must be all numbers or all strings.
func sorted(e *evaluator, args *Args) (rt.Value, error) {
	elems := append([]rt.Value(nil), args.This.(*rt.List).Elements...)
	var cerr error
	sort.SliceStable(elems, func(i, j int) bool {
		less, err := compare(args.Site, ast.OpLt, elems[i], elems[j])
		if err != nil {
			if cerr == nil {
				cerr = err
			}
			return false
		}
		return less == rt.Int(1)
	})
	if cerr != nil {
		return nil, cerr
	}
	return rt.NewList(elems...), nil
}

// Dictionaries

func dictHas(e *evaluator, args *Args) (rt.Value, error) {
	_, has := args.This.(*rt.Dictionary).Get(args.Values[0])
	return rt.Bool(has), nil
}

// dictRemove removes a key and returns the value it had, or null.
func dictRemove(e *evaluator, args *Args) (rt.Value, error) {
	d := args.This.(*rt.Dictionary)
	v, has := d.Get(args.Values[0])
	if !has {
		return rt.Null, nil
	}
	d.Delete(args.Values[0])
	return v, nil
}

// Numbers

// numeric lifts a float function to a number method.  Integers stay integers.
func numeric(f func(float64) float64) Invoker {
	return func(e *evaluator, args *Args) (rt.Value, error) {
		switch n := args.This.(type) {
		case rt.Int:
			return rt.Int(int64(f(float64(n)))), nil
		case rt.Double:
			return rt.Double(f(float64(n))), nil
		default:
			return nil, errors.ErrorUnexpectedType.At(args.Site, "Number", n.TypeName())
		}
	}
}
