// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package tokens

// Special variable names.
const (
	ThisVariable   Name = "this"   // the instance whose fields or methods are being evaluated.
	ParentVariable Name = "parent" // the instance that owns the current one, if any.
)

// Special method names.
const (
	BeforeHook Name = "before" // runs right after constructor arguments are installed.
	AfterHook  Name = "after"  // runs once, when the last pending field of an instance resolves.
)
