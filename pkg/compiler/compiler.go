// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

// Package compiler loads a Regina program: it decodes the entry file and everything it transitively imports, and
// binds the result into modules ready for evaluation.
package compiler

import (
	"context"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/golang/glog"
	"github.com/opentracing/opentracing-go"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/compiler/binder"
	"github.com/regina-lang/regina/pkg/compiler/errors"
	"github.com/regina-lang/regina/pkg/compiler/symbols"
	"github.com/regina-lang/regina/pkg/diag"
	"github.com/regina-lang/regina/pkg/encoding"
	"github.com/regina-lang/regina/pkg/workspace"
)

// Program is a loaded and bound program.
type Program struct {
	Entry   *symbols.Module            // the module whose main block runs first.
	Modules map[string]*symbols.Module // every loaded module, keyed by path.
}

// Load reads the entry file at path and every file it transitively imports.  Files are decoded a wave at a time:
// each wave holds the not-yet-seen imports of the previous one, and its files are decoded concurrently.
func Load(ctx context.Context, opts Options, path string) (*Program, error) {
	glog.Infof("Loading program '%v'", path)
	span, ctx := opentracing.StartSpanFromContext(ctx, "load")
	defer span.Finish()
	span.SetTag("entry", path)

	if exists, _ := afero.Exists(opts.Fs, path); !exists {
		return nil, errors.ErrorFileNotFound.At(nil, path)
	}

	l := &loader{
		fs:      opts.Fs,
		seen:    mapset.NewThreadUnsafeSet[string](path),
		imports: make(map[*ast.Import]string),
	}
	wave := []string{path}
	for len(wave) > 0 {
		files, err := l.decodeWave(ctx, wave)
		if err != nil {
			return nil, err
		}
		wave = l.resolveImports(files)
	}
	span.SetTag("files", len(l.files))

	modules, err := binder.Bind(&binder.Package{Files: l.files, Imports: l.imports})
	if err != nil {
		return nil, err
	}
	glog.V(3).Infof("Loaded %v module(s) for '%v'", len(modules), path)
	return &Program{Entry: modules[path], Modules: modules}, nil
}

type loader struct {
	fs      afero.Fs
	seen    mapset.Set[string]      // every path queued so far.
	files   []*ast.File             // decoded files, in load order.
	imports map[*ast.Import]string // resolved import paths.
	sources map[string]*ast.Import // for each queued path but the entry, the import that first named it.
}

// decodeWave reads and decodes every path concurrently.  The results keep the order of paths.
func (l *loader) decodeWave(ctx context.Context, paths []string) ([]*ast.File, error) {
	files := make([]*ast.File, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			glog.V(5).Infof("Decoding '%v'", path)
			doc, err := diag.ReadDocument(l.fs, path)
			if err != nil {
				return errors.ErrorCouldNotReadFile.At(l.source(path), path, err)
			}
			defer doc.Forget()
			files[i], err = encoding.Decode(doc)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	l.files = append(l.files, files...)
	return files, nil
}

// source returns the import that caused path to be loaded, to locate errors; nil for the entry file.
func (l *loader) source(path string) diag.Diagable {
	if imp, has := l.sources[path]; has {
		return imp
	}
	return nil
}

// resolveImports records where each import of files points and returns the paths that still need loading.  Imports
// that cannot be found are left unresolved for the binder to report.
func (l *loader) resolveImports(files []*ast.File) []string {
	var next []string
	for _, file := range files {
		for _, imp := range file.Imports {
			path, found := workspace.ResolveImport(l.fs, file.Path, imp.Path)
			if !found {
				glog.V(5).Infof("Import '%v' of '%v' could not be found", imp.Path, file.Path)
				continue
			}
			l.imports[imp] = path
			if l.seen.Add(path) {
				if l.sources == nil {
					l.sources = make(map[string]*ast.Import)
				}
				l.sources[path] = imp
				next = append(next, path)
			}
		}
	}
	sort.Strings(next)
	return next
}
