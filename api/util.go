package api

import "cmp"

// OrderedCompare is the Comparator for builtin ordered types.
func OrderedCompare[K cmp.Ordered](a, b K) int {
	return cmp.Compare(a, b)
}
