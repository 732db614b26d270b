// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package binder

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/golang/glog"

	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/compiler/errors"
	"github.com/regina-lang/regina/pkg/compiler/symbols"
	"github.com/regina-lang/regina/pkg/tokens"
)

func (b *binder) bindModuleDeclarations(file *ast.File) *symbols.Module {
	glog.V(3).Infof("Binding module '%v' decls", file.Path)

	module := symbols.NewModuleSym(file)
	b.modules[file.Path] = module

	for _, fnc := range file.Functions {
		b.bindFunctionDeclaration(module.Functions, symbols.NewUserFunctionSym(fnc, module, nil))
	}

	// Classes and objects share one namespace within a file.
	for _, node := range file.Classes {
		if class := b.bindClassDeclaration(node, module); class != nil {
			module.Classes[class.Name()] = class
		}
	}
	for _, node := range file.Objects {
		if obj := b.bindClassDeclaration(node, module); obj != nil {
			module.Objects[obj.Name()] = obj
		}
	}

	return module
}

// bindFunctionDeclaration adds fnc to an overload set, unless a call could not tell it apart from an existing one.
func (b *binder) bindFunctionDeclaration(fm symbols.FunctionMap, fnc *symbols.UserFunction) {
	b.checkParameters(fnc)
	if _, clash := fm[fnc.Name()].Overlaps(fnc); clash {
		b.errorf(errors.ErrorDuplicateFunction, fnc.Node.Name, fnc, fnc.MaxArity())
		return
	}
	glog.V(7).Infof("Declared function '%v' taking [%v, %v] argument(s)", fnc, fnc.MinArity(), fnc.MaxArity())
	fm[fnc.Name()] = append(fm[fnc.Name()], fnc)
}

// checkParameters ensures that no parameter name is declared twice.
func (b *binder) checkParameters(fnc *symbols.UserFunction) {
	seen := mapset.NewThreadUnsafeSet[tokens.Name]()
	for i := 0; i < fnc.MaxArity(); i++ {
		nm := symbols.ParamName(fnc, i)
		if !seen.Add(nm) {
			b.errorf(errors.ErrorDuplicateParameter, fnc.Node, nm, fnc)
		}
	}
}

func (b *binder) bindClassDeclaration(node *ast.Class, module *symbols.Module) *symbols.Class {
	nm := node.Name.Ident
	if module.Declares(nm) {
		b.errorf(errors.ErrorDuplicateClass, node.Name, nm)
		return nil
	}
	glog.V(5).Infof("Binding module '%v' class '%v'", module, nm)

	class := symbols.NewClassSym(node, module)
	for _, field := range node.Fields {
		class.Inits = append(class.Inits, field)
		switch left := field.Left.(type) {
		case *ast.Identifier:
			if class.HasField(left.Ident) {
				b.errorf(errors.ErrorDuplicateField, field, left.Ident, nm)
				continue
			}
			class.Fields[left.Ident] = field
			class.Names = append(class.Names, left.Ident)
		case *ast.Link:
			class.Links = append(class.Links, field)
		default:
			b.errorf(errors.ErrorIllegalField, field, nm)
		}
	}
	for _, method := range node.Methods {
		b.bindFunctionDeclaration(class.Methods, symbols.NewUserFunctionSym(method, module, class))
	}
	return class
}
