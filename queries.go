package wff

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Vars returns the set of distinct variable keys appearing anywhere in f.
// The set is derived on each call; callers own the result.
func (f Formula) Vars() mapset.Set[string] {
	vars := mapset.NewSet[string]()
	f.Visit(func(sub Formula, isPost bool) (bool, error) {
		if !isPost {
			if key, ok := sub.Key(); ok {
				vars.Add(key)
			}
		}
		return true, nil
	})
	return vars
}

// Operations returns the set of distinct operation signatures appearing
// anywhere in f. Variable leaves contribute nothing; ground constants
// contribute their length-1 signatures.
func (f Formula) Operations() mapset.Set[Signature] {
	ops := mapset.NewSet[Signature]()
	f.Visit(func(sub Formula, isPost bool) (bool, error) {
		if !isPost {
			if sig, ok := sub.Operation(); ok {
				ops.Add(sig)
			}
		}
		return true, nil
	})
	return ops
}

// SortedVars returns the variable keys of f in lexicographic order, the
// canonical column order used by Table.
func (f Formula) SortedVars() []string {
	keys := f.Vars().ToSlice()
	slices.Sort(keys)
	return keys
}
