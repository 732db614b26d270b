// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package ast

// File is a single source file: its imports, declarations, and top-level statements.
type File struct {
	NodeValue
	Path      string      `json:"path"`
	Imports   []*Import   `json:"imports,omitempty"`
	Functions []*Function `json:"functions,omitempty"`
	Classes   []*Class    `json:"classes,omitempty"`
	Objects   []*Class    `json:"objects,omitempty"`
	Main      *Block      `json:"main,omitempty"`
}

var _ Node = (*File)(nil)

const FileKind NodeKind = "File"

// Import makes another file's declarations reachable through Alias.
type Import struct {
	NodeValue
	Path  string      `json:"path"`
	Alias *Identifier `json:"alias"`
}

var _ Node = (*Import)(nil)

const ImportKind NodeKind = "Import"

// Function is a function or method declaration.  Params are required, Defaults are optional and follow them.
type Function struct {
	NodeValue
	Name     *Identifier   `json:"name"`
	Params   []*Identifier `json:"params,omitempty"`
	Defaults []*Assignment `json:"defaults,omitempty"`
	Body     *Block        `json:"body"`
}

var _ Node = (*Function)(nil)

const FunctionKind NodeKind = "Function"

// Class declares a class or, when Object is set, a singleton object.  Fields are declared in order by their
// initializers, which may refer to one another.
type Class struct {
	NodeValue
	Name    *Identifier   `json:"name"`
	Fields  []*Assignment `json:"fields,omitempty"`
	Methods []*Function   `json:"methods,omitempty"`
	Object  bool          `json:"object,omitempty"`
}

var _ Node = (*Class)(nil)

const ClassKind NodeKind = "Class"
