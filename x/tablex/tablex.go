// Package tablex indexes fixed lookup tables without panicking.
package tablex

import "golang.org/x/exp/constraints"

// At returns tab[i], or def when i is outside the table.
func At[T any, I constraints.Integer](tab []T, i I, def T) T {
	if i < 0 || uint64(i) >= uint64(len(tab)) {
		return def
	}
	return tab[i]
}

// In reports 0 <= i < n.
func In[I constraints.Integer](i I, n int) bool {
	return i >= 0 && uint64(i) < uint64(n)
}
