// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package workspace

import (
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/regina-lang/regina/pkg/encoding"
)

const ProjectFile = "Regina" // the base name of a project manifest.
const DefaultMain = "main"   // the base name of the entry file when the manifest names none.

// Entry is a resolved program to run: the entry file and, if one was found, the project that names it.
type Entry struct {
	Path    string   // the entry source file.
	Project *Project // the project manifest, or nil for a bare file.
	Root    string   // the project directory, or the entry file's directory.
}

// DetectEntry works out what to run for path.  A source file runs as is.  A directory must contain a project manifest
// or a main file; the manifest's `main` wins when present.
func DetectEntry(fs afero.Fs, path string) (*Entry, error) {
	isdir, err := afero.IsDir(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not stat '%v'", path)
	}
	if !isdir {
		return &Entry{Path: path, Root: filepath.Dir(path)}, nil
	}

	entry := &Entry{Root: path}
	if manifest, has := findFile(fs, filepath.Join(path, ProjectFile)); has {
		glog.V(5).Infof("Found project manifest '%v'", manifest)
		if entry.Project, err = LoadProject(fs, manifest); err != nil {
			return nil, err
		}
		if entry.Project.Main != "" {
			entry.Path = filepath.Join(path, entry.Project.Main)
			return entry, nil
		}
	}

	main, has := findFile(fs, filepath.Join(path, DefaultMain))
	if !has {
		return nil, errors.Errorf("'%v' has neither a project manifest naming its entry nor a %v file", path, DefaultMain)
	}
	entry.Path = main
	return entry, nil
}

// findFile probes base with each source extension in preference order.
func findFile(fs afero.Fs, base string) (string, bool) {
	for _, ext := range encoding.Exts {
		if exists, _ := afero.Exists(fs, base+ext); exists {
			return base + ext, true
		}
	}
	return "", false
}

// ResolveImport finds the file an import path names, relative to the importing file.  The extension may be omitted.
func ResolveImport(fs afero.Fs, from string, path string) (string, bool) {
	target := path
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(from), path)
	}
	if encoding.IsExt(filepath.Ext(target)) {
		if exists, _ := afero.Exists(fs, target); exists {
			return target, true
		}
		return "", false
	}
	return findFile(fs, target)
}
