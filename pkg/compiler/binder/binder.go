// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

// Package binder turns decoded files into bound modules.  It declares every function, class and object, links
// import aliases to the modules they name, and decides whether each ambiguous invocation is a call or a
// constructor.  Problems are gathered rather than reported one at a time, so that a single load shows them all.
package binder

import (
	"github.com/golang/glog"
	"github.com/hashicorp/go-multierror"

	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/compiler/errors"
	"github.com/regina-lang/regina/pkg/compiler/symbols"
	"github.com/regina-lang/regina/pkg/util/contract"
)

// Package is the input to the binder: a set of decoded files plus the resolution of their imports.
type Package struct {
	Files   []*ast.File            // every file of the program, entry first.
	Imports map[*ast.Import]string // the path of the file each import names; absent if it could not be found.
}

// Bind declares the members of every file and links their imports, returning the modules keyed by path.  All
// problems found are returned together as a multierror.
func Bind(pkg *Package) (map[string]*symbols.Module, error) {
	contract.Require(pkg != nil, "pkg")

	b := &binder{pkg: pkg, modules: make(map[string]*symbols.Module)}

	// Declare everything first, so that imports can be linked regardless of file order.
	for _, file := range pkg.Files {
		b.bindModuleDeclarations(file)
	}
	for _, file := range pkg.Files {
		b.bindModuleImports(b.modules[file.Path])
	}

	// Finally, settle every invocation now that all class names are known.
	for _, file := range pkg.Files {
		b.disambiguate(b.modules[file.Path])
	}

	if err := b.errs.ErrorOrNil(); err != nil {
		glog.V(3).Infof("Binding failed with %v error(s)", len(b.errs.Errors))
		return nil, err
	}
	return b.modules, nil
}

type binder struct {
	pkg     *Package                   // the files being bound.
	modules map[string]*symbols.Module // the modules bound so far, keyed by path.
	errs    *multierror.Error          // every problem found so far.
}

func (b *binder) errorf(tmpl *errors.Template, node ast.Node, args ...interface{}) {
	err := tmpl.At(node, args...)
	glog.V(5).Infof("Binder error: %v", err)
	b.errs = multierror.Append(b.errs, err)
}

// bindModuleImports links every import alias of module to the module it names.
func (b *binder) bindModuleImports(module *symbols.Module) {
	for _, imp := range module.Node.Imports {
		alias := imp.Alias.Ident
		if _, has := module.Imports[alias]; has {
			b.errorf(errors.ErrorDuplicateAlias, imp.Alias, alias)
			continue
		}
		path, has := b.pkg.Imports[imp]
		if !has {
			b.errorf(errors.ErrorUnknownImport, imp, imp.Path)
			continue
		}
		target, has := b.modules[path]
		contract.Assertf(has, "Import '%v' resolved to '%v', which was never loaded", imp.Path, path)
		glog.V(5).Infof("Module '%v' imports '%v' as '%v'", module, target, alias)
		module.Imports[alias] = target
	}
}
