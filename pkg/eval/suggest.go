// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package eval

import (
	"fmt"
	"sort"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/regina-lang/regina/pkg/tokens"
)

// suggest returns a "did you mean" hint naming the candidate closest to nm, or the empty string if none is close
// enough.  Ties go to the alphabetically first candidate, so that messages are deterministic.
func suggest(nm tokens.Name, candidates []tokens.Name) string {
	sorted := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != nm {
			sorted = append(sorted, string(c))
		}
	}
	sort.Strings(sorted)

	limit := len(nm) / 3
	if limit < 2 {
		limit = 2
	}
	match, closest := "", limit+1
	for _, c := range sorted {
		d := levenshtein.DistanceForStrings([]rune(string(nm)), []rune(c), levenshtein.DefaultOptionsWithSub)
		if d < closest {
			match, closest = c, d
		}
	}
	if match == "" {
		return ""
	}
	return fmt.Sprintf("; did you mean '%v'?", match)
}
