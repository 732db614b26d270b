// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package symbols

import (
	"sort"

	"github.com/regina-lang/regina/pkg/tokens"
)

func StableFunctionMap(fm FunctionMap) []tokens.Name {
	sorted := make(names, 0, len(fm))
	for nm := range fm {
		sorted = append(sorted, nm)
	}
	sort.Sort(sorted)
	return sorted
}

func StableClassMap(cm map[tokens.Name]*Class) []tokens.Name {
	sorted := make(names, 0, len(cm))
	for nm := range cm {
		sorted = append(sorted, nm)
	}
	sort.Sort(sorted)
	return sorted
}

func StableModuleMap(mm map[tokens.Name]*Module) []tokens.Name {
	sorted := make(names, 0, len(mm))
	for nm := range mm {
		sorted = append(sorted, nm)
	}
	sort.Sort(sorted)
	return sorted
}

type names []tokens.Name

func (s names) Len() int {
	return len(s)
}

func (s names) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

func (s names) Less(i, j int) bool {
	return s[i] < s[j]
}
