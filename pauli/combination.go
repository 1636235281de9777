package pauli

import (
	"sort"

	"github.com/alfooscxx/many-body-dynamics/symscalar"
)

// Scaled pairs a string with a scalar coefficient.
type Scaled struct {
	P    String
	Coef symscalar.Scalar
}

// Combination is a sum of Pauli strings with scalar coefficients, keyed by
// the string. Invariant after Normalize: no entry has a zero coefficient.
type Combination map[String]symscalar.Scalar

// Add accumulates coef onto the entry for p, creating it if absent. The
// entry may transiently hold zero; Normalize prunes it.
func (c Combination) Add(p String, coef symscalar.Scalar) {
	if prev, ok := c[p]; ok {
		c[p] = prev.Add(coef)
		return
	}
	c[p] = coef
}

// TryInsert adds (p, coef) only if p is not already present, and reports
// whether the insertion happened. First writer wins.
func (c Combination) TryInsert(p String, coef symscalar.Scalar) bool {
	if _, ok := c[p]; ok {
		return false
	}
	c[p] = coef
	return true
}

// Normalize removes entries whose coefficient is exactly zero. Like-term
// merging is inherent to the map representation, so normalization is
// idempotent by construction.
func (c Combination) Normalize() {
	for p, coef := range c {
		if coef.IsZero() {
			delete(c, p)
		}
	}
}

// Sites returns the union of the support masks of all entries.
func (c Combination) Sites() Mask {
	var m Mask
	for p := range c {
		m |= p.Sites()
	}
	return m
}

// SortedStrings lists the keys in canonical (v, w)-lexicographic order.
func (c Combination) SortedStrings() []String {
	out := make([]String, 0, len(c))
	for p := range c {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Clone returns a shallow copy (scalars are immutable, so sharing is safe).
func (c Combination) Clone() Combination {
	out := make(Combination, len(c))
	for p, coef := range c {
		out[p] = coef
	}
	return out
}

// Equal reports whether c and o hold the same strings with equal
// coefficients.
func (c Combination) Equal(o Combination) bool {
	if len(c) != len(o) {
		return false
	}
	for p, coef := range c {
		other, ok := o[p]
		if !ok || !coef.Equal(other) {
			return false
		}
	}
	return true
}
