// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package errors

// Eval errors are in the [1000,2000) range.
var (
	ErrorIdentifierNotFound = newError(1000, NotFound, "Identifier '%v' not found%v")
	ErrorFunctionNotFound   = newError(1001, NotFound, "Function '%v' with %v argument(s) not found%v")
	ErrorClassNotFound      = newError(1002, NotFound, "Class '%v' not found%v")
	ErrorPropertyNotFound   = newError(1003, NotFound, "Property '%v' not found on %v%v")
	ErrorMethodNotFound     = newError(1004, NotFound, "Method '%v' with %v argument(s) not found on %v%v")
	ErrorImportNotFound     = newError(1005, NotFound, "'%v' not found in imported file '%v'%v")

	ErrorTooManyArguments    = newError(1010, ArityMismatch, "'%v' takes at most %v argument(s), but got %v")
	ErrorUnknownParameter    = newError(1011, ArityMismatch, "'%v' has no parameter named '%v'")
	ErrorParameterBoundTwice = newError(1012, ArityMismatch, "Parameter '%v' of '%v' is bound more than once")
	ErrorMissingArgument     = newError(1013, ArityMismatch, "Parameter '%v' of '%v' was not supplied")
	ErrorUnknownField        = newError(1014, ArityMismatch, "Class '%v' has no field '%v'")
	ErrorFieldBoundTwice     = newError(1015, ArityMismatch, "Field '%v' of '%v' is supplied more than once")

	ErrorUnnamedConstructorArgument = newError(1020, StructuralError,
		"Constructor arguments of '%v' must be named")
	ErrorBlockWithinBlock = newError(1021, StructuralError,
		"Block within a block. Maybe `if`, `else`, or `while` was omitted?")
	ErrorCallOnAssignmentLeft = newError(1022, StructuralError, "Call is prohibited on the left of the assignment")
	ErrorIllegalAssignment    = newError(1023, StructuralError, "%v cannot be assigned to")
	ErrorJumpOutsideLoop      = newError(1024, StructuralError, "'%v' is used outside of a loop")
	ErrorUnexpectedNode       = newError(1025, StructuralError, "Unexpected %v here")
	ErrorUnboundInvocation    = newError(1026, StructuralError, "Invocation of '%v' was never bound")
	ErrorPropertyCannotBeSet  = newError(1027, StructuralError, "Property '%v' of %v cannot be assigned to")

	ErrorUnexpectedType         = newError(1030, TypeMismatch, "Expected %v, but got %v")
	ErrorBinaryOperatorMismatch = newError(1031, TypeMismatch, "Operator '%v' is not defined for %v and %v")
	ErrorUnaryOperatorMismatch  = newError(1032, TypeMismatch, "Operator '%v' is not defined for %v")
	ErrorNotIterable            = newError(1033, TypeMismatch, "%v cannot be iterated")
	ErrorNotAnInstance          = newError(1034, TypeMismatch, "Only instances accept property assignment, not %v")
	ErrorIndexOutOfRange        = newError(1035, TypeMismatch, "Index %v is out of range for a length of %v")
	ErrorNotIndexable           = newError(1036, TypeMismatch, "%v cannot be subscripted")
	ErrorNotConstructible       = newError(1037, TypeMismatch, "%v cannot be constructed")
	ErrorDivisionByZero         = newError(1038, TypeMismatch, "Division by zero")
	ErrorStepNotPositive        = newError(1039, TypeMismatch, "Step must be positive")
	ErrorNotAssignableIndex     = newError(1040, TypeMismatch, "%v does not support subscript assignment")
	ErrorConditionNotNumeric    = newError(1041, TypeMismatch, "Condition must be a number, but got %v")

	ErrorUserRaised = newError(1050, UserRaised, "%v")
	ErrorTestFailed = newError(1051, UserRaised, "Test failed")

	ErrorFileOperation = newError(1060, HostFailure, "Could not %v '%v': %v")
	ErrorInputFailed   = newError(1061, HostFailure, "Could not read input: %v")
)
