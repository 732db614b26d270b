// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/afero"
	"github.com/spf13/cast"

	"github.com/regina-lang/regina/pkg/compiler/errors"
	"github.com/regina-lang/regina/pkg/eval/rt"
)

func printValue(e *evaluator, args *Args) (rt.Value, error) {
	if _, err := fmt.Fprintln(e.rt.Stdout, args.Values[0].String()); err != nil {
		return nil, errors.ErrorFileOperation.At(args.Site, "write", "standard output", err)
	}
	return rt.Null, nil
}

func raise(e *evaluator, args *Args) (rt.Value, error) {
	return nil, errors.ErrorUserRaised.At(args.Site, args.Values[0].String())
}

// input reads one line from standard input, without its line terminator.  It returns null at the end of input.
func input(e *evaluator, args *Args) (rt.Value, error) {
	line, err := e.rt.Stdin.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, errors.ErrorInputFailed.At(args.Site, err)
	}
	if err == io.EOF && line == "" {
		return rt.Null, nil
	}
	return rt.String(strings.TrimRight(line, "\r\n")), nil
}

func writeFile(e *evaluator, args *Args) (rt.Value, error) {
	content, err := args.String(0)
	if err != nil {
		return nil, err
	}
	path, err := args.String(1)
	if err != nil {
		return nil, err
	}
	glog.V(5).Infof("Writing %v bytes to '%v'", len(content), path)
	if err := afero.WriteFile(e.rt.Fs, path, []byte(content), 0o644); err != nil {
		return nil, errors.ErrorFileOperation.At(args.Site, "write", path, err)
	}
	return rt.Null, nil
}

func readFile(e *evaluator, args *Args) (rt.Value, error) {
	path, err := args.String(0)
	if err != nil {
		return nil, err
	}
	b, err := afero.ReadFile(e.rt.Fs, path)
	if err != nil {
		return nil, errors.ErrorFileOperation.At(args.Site, "read", path, err)
	}
	return rt.String(b), nil
}

func fileExists(e *evaluator, args *Args) (rt.Value, error) {
	path, err := args.String(0)
	if err != nil {
		return nil, err
	}
	exists, err := afero.Exists(e.rt.Fs, path)
	if err != nil {
		return nil, errors.ErrorFileOperation.At(args.Site, "stat", path, err)
	}
	return rt.Bool(exists), nil
}

// deleteFile removes a file and reports whether it did.
func deleteFile(e *evaluator, args *Args) (rt.Value, error) {
	path, err := args.String(0)
	if err != nil {
		return nil, err
	}
	if err := e.rt.Fs.Remove(path); err != nil {
		glog.V(5).Infof("Could not delete '%v': %v", path, err)
		return rt.Bool(false), nil
	}
	return rt.Bool(true), nil
}

func test(e *evaluator, args *Args) (rt.Value, error) {
	if f, isnum := rt.AsFloat(args.Values[0]); !isnum || f == 0 {
		return nil, errors.ErrorTestFailed.At(args.Site)
	}
	return rt.Null, nil
}

func random(e *evaluator, args *Args) (rt.Value, error) {
	isInt, err := args.Int(0)
	if err != nil {
		return nil, err
	}
	if isInt == 0 {
		return rt.Double(e.rt.RandomDouble()), nil
	}
	return rt.Int(e.rt.RandomInt()), nil
}

func seed(e *evaluator, args *Args) (rt.Value, error) {
	s, err := args.Int(0)
	if err != nil {
		return nil, err
	}
	e.rt.Reseed(s)
	return rt.Null, nil
}

func toStr(e *evaluator, args *Args) (rt.Value, error) {
	return rt.String(args.Values[0].String()), nil
}

// toInt truncates a number, or parses a string.  A string that is not an integer yields null.
func toInt(e *evaluator, args *Args) (rt.Value, error) {
	switch v := args.Values[0].(type) {
	case rt.Int:
		return v, nil
	case rt.Double:
		return rt.Int(int64(v)), nil
	case rt.String:
		n, err := cast.ToInt64E(strings.TrimSpace(string(v)))
		if err != nil {
			return rt.Null, nil
		}
		return rt.Int(n), nil
	default:
		return nil, errors.ErrorUnexpectedType.At(args.Site, "Number or String", v.TypeName())
	}
}

// toDouble widens a number, or parses a string.  A string that is not a number yields null.
func toDouble(e *evaluator, args *Args) (rt.Value, error) {
	switch v := args.Values[0].(type) {
	case rt.Int:
		return rt.Double(v), nil
	case rt.Double:
		return v, nil
	case rt.String:
		f, err := cast.ToFloat64E(strings.TrimSpace(string(v)))
		if err != nil {
			return rt.Null, nil
		}
		return rt.Double(f), nil
	default:
		return nil, errors.ErrorUnexpectedType.At(args.Site, "Number or String", v.TypeName())
	}
}

// toList converts a collection into a new list.  A dictionary becomes a list of {"key": k, "value": v} entries, and
// a string a list of its characters.
func toList(e *evaluator, args *Args) (rt.Value, error) {
	var elems []rt.Value
	switch v := args.Values[0].(type) {
	case *rt.Dictionary:
		for _, k := range v.Keys() {
			val, _ := v.Get(k)
			entry := rt.NewDictionary()
			entry.Set(rt.String("key"), k)
			entry.Set(rt.String("value"), val)
			elems = append(elems, entry)
		}
	case rt.String:
		for _, r := range string(v) {
			elems = append(elems, rt.String(r))
		}
	case *rt.List:
		elems = append(elems, v.Elements...)
	case *rt.Range:
		v.Each(func(i rt.Int) bool {
			elems = append(elems, i)
			return true
		})
	default:
		return nil, errors.ErrorUnexpectedType.At(args.Site, "Dictionary, List, Range or String", v.TypeName())
	}
	return rt.NewList(elems...), nil
}

// floatEquals compares two numbers with both a relative and an absolute tolerance.
func floatEquals(e *evaluator, args *Args) (rt.Value, error) {
	var fs [4]float64
	for i := range fs {
		f, err := args.Number(i)
		if err != nil {
			return nil, err
		}
		fs[i] = f
	}
	first, second, epsilon, absTh := fs[0], fs[1], fs[2], fs[3]
	if first == second {
		return rt.Bool(true), nil
	}
	diff := math.Abs(first - second)
	norm := math.Min(math.Abs(first)+math.Abs(second), math.MaxFloat32)
	return rt.Bool(diff < math.Max(absTh, epsilon*norm)), nil
}

// typeOf returns the class of an instance, and the name of any other value's type.
func typeOf(e *evaluator, args *Args) (rt.Value, error) {
	switch v := args.Values[0].(type) {
	case *rt.Instance:
		return &rt.ClassRef{Class: v.Class}, nil
	case *rt.ClassRef:
		return v, nil
	default:
		return rt.String(v.TypeName()), nil
	}
}

func makeRange(e *evaluator, args *Args) (rt.Value, error) {
	var bounds [3]int64
	for i := range bounds {
		n, err := args.Int(i)
		if err != nil {
			return nil, err
		}
		bounds[i] = n
	}
	if bounds[2] < 1 {
		return nil, errors.ErrorStepNotPositive.At(args.Site)
	}
	return &rt.Range{Start: bounds[0], End: bounds[1], Step: bounds[2]}, nil
}

func copyValue(e *evaluator, args *Args) (rt.Value, error) {
	deep, err := args.Int(1)
	if err != nil {
		return nil, err
	}
	return rt.Copy(args.Values[0], deep != 0, e.rt.Alloc.Next), nil
}
