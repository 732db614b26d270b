// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package tokens

import (
	"regexp"
)

// Name is an identifier.  It conforms to the regex [A-Za-z_][A-Za-z0-9_]*.
type Name string

func (nm Name) String() string { return string(nm) }

var nameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsName checks whether a string is a legal Name.
func IsName(s string) bool {
	return s != "" && nameRegexp.MatchString(s)
}

// AsName converts a given string to a Name, asserting its validity.
func AsName(s string) Name {
	if !IsName(s) {
		panic("illegal name: " + s)
	}
	return Name(s)
}
