// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package errors

// Loader and binder errors are in the [500,600) range.
var (
	ErrorFileNotFound       = newError(500, NotFound, "Source file '%v' could not be found")
	ErrorCouldNotReadFile   = newError(501, HostFailure, "An IO error occurred while reading '%v': %v")
	ErrorIllegalSyntax      = newError(502, StructuralError, "Malformed syntax tree: %v")
	ErrorUnknownImport      = newError(503, NotFound, "Import '%v' could not be resolved")
	ErrorDuplicateFunction  = newError(504, StructuralError, "Function '%v' with %v parameter(s) is already declared")
	ErrorDuplicateClass     = newError(505, StructuralError, "'%v' is already declared in this file")
	ErrorDuplicateAlias     = newError(506, StructuralError, "Import alias '%v' is already in use")
	ErrorDuplicateField     = newError(507, StructuralError, "Field '%v' of '%v' is declared more than once")
	ErrorDuplicateParameter = newError(508, StructuralError, "Parameter '%v' of '%v' is declared more than once")
	ErrorIllegalField       = newError(509, StructuralError, "Field declarations of '%v' must assign a name")
	ErrorNoEntryPoint       = newError(510, NotFound, "No entry file was given and the project names none")
)
