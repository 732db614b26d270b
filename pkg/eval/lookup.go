// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	"github.com/golang/glog"

	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/compiler/symbols"
	"github.com/regina-lang/regina/pkg/eval/rt"
	"github.com/regina-lang/regina/pkg/tokens"
)

// lookupIdentifier resolves a bare name.  The search order is: the frame chain, `this` and `parent`, the fields of the
// current instance (resolving a pending one on demand), and finally the objects, classes and functions of the active
// module.
func (e *evaluator) lookupIdentifier(ctx Context, nm tokens.Name) (rt.Value, bool, error) {
	// Locals come first; constructor arguments see the instance under construction as a local `this`.
	if v, has := ctx.LookupLocal(nm); has {
		return v, true, nil
	}
	if ctx.instance != nil {
		switch nm {
		case tokens.ThisVariable:
			return ctx.instance, true, nil
		case tokens.ParentVariable:
			return parentOf(ctx.instance), true, nil
		}
		if v, has, err := e.getField(ctx.instance, nm); err != nil || has {
			return v, has, err
		}
	}
	return e.lookupMember(ctx.module, nm)
}

// parentOf returns the owner of inst, or null.
func parentOf(inst *rt.Instance) rt.Value {
	if inst.Parent == nil {
		return rt.Null
	}
	return inst.Parent
}

// lookupMember resolves a name declared by module: a singleton object, a class, or a function.
func (e *evaluator) lookupMember(module *symbols.Module, nm tokens.Name) (rt.Value, bool, error) {
	if obj, has := module.LookupObject(nm); has {
		inst, err := e.object(obj)
		return inst, err == nil, err
	}
	if class, has := module.LookupClass(nm); has {
		return &rt.ClassRef{Class: class}, true, nil
	}
	if fncs := module.Functions[nm]; len(fncs) > 0 {
		return &rt.FunctionRef{Name: nm, Module: module, Overloads: fncs}, true, nil
	}
	return nil, false, nil
}

// resolveFunction finds the function a call names: the active module's functions, then the embedded ones, then the
// methods of the current instance.  this is the instance the function must be invoked on, if any.
func (e *evaluator) resolveFunction(ctx Context, node *ast.Call) (symbols.Function, *rt.Instance, bool) {
	nm, argc := node.Name.Ident, node.Argc()
	if fnc, has := ctx.module.LookupFunction(nm, argc); has {
		return fnc, nil, true
	}
	if fnc, has := e.global.LookupFunction(nm, argc); has {
		return fnc, nil, true
	}
	if ctx.instance != nil {
		if fnc, has := ctx.instance.Class.LookupMethod(nm, argc); has {
			return fnc, ctx.instance, true
		}
	}
	return nil, nil, false
}

// object returns the singleton instance of an object declaration, creating and resolving it on first use.
func (e *evaluator) object(class *symbols.Class) (*rt.Instance, error) {
	if inst, has := e.rt.Object(class); has {
		return inst, nil
	}
	glog.V(5).Infof("Initializing object '%v'", class)
	inst := e.rt.Alloc.New(class.Tree(), class)
	// Record the object before resolving it, so that its own fields can refer to it.
	e.rt.objects[class] = inst
	if err := e.initialize(NewContext(class.Parent), class.Tree(), inst); err != nil {
		return nil, err
	}
	return inst, nil
}

// visibleNames lists every name an identifier could have meant in ctx, for suggestions.
func (e *evaluator) visibleNames(ctx Context) []tokens.Name {
	names := ctx.frame.Names()
	if ctx.instance != nil {
		names = append(names, tokens.ThisVariable, tokens.ParentVariable)
		names = append(names, fieldNames(ctx.instance)...)
	}
	names = append(names, ctx.module.MemberNames()...)
	return names
}

// functionNames lists every function a call could have meant in ctx, for suggestions.
func (e *evaluator) functionNames(ctx Context) []tokens.Name {
	names := symbols.StableFunctionMap(ctx.module.Functions)
	names = append(names, symbols.StableFunctionMap(e.global.Functions)...)
	if ctx.instance != nil {
		names = append(names, symbols.StableFunctionMap(ctx.instance.Class.Methods)...)
	}
	return names
}

// fieldNames lists the fields of an instance, resolved or pending.
func fieldNames(inst *rt.Instance) []tokens.Name {
	names := append([]tokens.Name(nil), inst.Class.Names...)
	for _, nm := range inst.Fields() {
		if !inst.Class.HasField(nm) {
			names = append(names, nm)
		}
	}
	return names
}
