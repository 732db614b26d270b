// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package colors

import (
	"github.com/reconquest/loreley"

	"github.com/regina-lang/regina/pkg/util/contract"
)

const colorLeft = "<{%"
const colorRight = "%}>"

func init() {
	// Change the Loreley delimiters from { and }, to avoid collisions with braces in printed dictionaries.
	loreley.DelimLeft = colorLeft
	loreley.DelimRight = colorRight
}

// Command wraps a loreley command in the package's delimiters.
func Command(s string) string {
	return colorLeft + s + colorRight
}

// ColorizeText replaces embedded color commands with terminal escapes.
func ColorizeText(s string) string {
	c, err := loreley.CompileAndExecuteToString(s, nil, nil)
	contract.Assertf(err == nil, "Expected no errors during string colorization; str=%v, err=%v", s, err)
	return c
}

// The colors diagnostics use: red and yellow categories, cyan locations and white messages.
var (
	Red          = Command("fg 1")
	Cyan         = Command("fg 6")
	White        = Command("fg 7")
	BrightYellow = Command("fg 11")
	Reset        = Command("reset")
)
