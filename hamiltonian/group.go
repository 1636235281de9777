package hamiltonian

import (
	"github.com/tuneinsight/lattigo/v4/utils"

	"github.com/alfooscxx/many-body-dynamics/pauli"
)

// Group is one mutually-commuting subset of Hamiltonian base terms, together
// with the translation-periodicity descriptor computed by doColoring. The
// lattice is invariant under translation by blockSize; within one period a
// base string of support length L produces L distinct shift classes indexed
// by color ∈ [0, periodLength).
type Group struct {
	base pauli.Combination

	// coloring data
	startingPoint int
	blockSize     int
	periodLength  int
}

// Base returns the group's base strings.
func (g *Group) Base() pauli.Combination { return g.base }

// PeriodLength returns the number of color classes of the group.
func (g *Group) PeriodLength() int { return g.periodLength }

// BlockSize returns the translation period of the group's site pattern.
func (g *Group) BlockSize() int { return g.blockSize }

// StartingPoint returns the smallest occupied site among the base strings.
func (g *Group) StartingPoint() int { return g.startingPoint }

// doColoring derives startingPoint, blockSize and periodLength from the set
// of occupied sites across all base strings. blockSize is the gcd of the
// consecutive gaps (1 for a single site); periodLength is the number of
// blocks spanned by the occupied window.
func (g *Group) doColoring() {
	g.startingPoint = 0
	g.blockSize = 1
	g.periodLength = 1
	sites := g.base.Sites().Bits()
	if len(sites) == 0 {
		return
	}
	start, max := sites[0], sites[0]
	block := 0
	for i, s := range sites {
		start = utils.MinInt(start, s)
		max = utils.MaxInt(max, s)
		if i > 0 {
			block = gcd(block, s-sites[i-1])
		}
	}
	if block == 0 {
		block = 1
	}
	g.startingPoint = start
	g.blockSize = block
	g.periodLength = (max-start)/block + 1
}

// colorRule maps a translation offset to its color class. Non-negative and
// negative shifts are folded so that translated copies of a base string
// overlapping a common site always land in distinct classes.
func (g *Group) colorRule(shift int) int {
	if shift >= 0 {
		return (shift / g.blockSize) % g.periodLength
	}
	s := -shift - 1
	return g.periodLength - 1 - (s/g.blockSize)%g.periodLength
}

// Filter returns the translated base strings whose support, shifted to
// intersect the given site, falls into the given color class.
func (g *Group) Filter(color, site int) pauli.Combination {
	out := make(pauli.Combination)
	for base, coef := range g.base {
		for _, stringSite := range base.Sites().Bits() {
			shift := site - stringSite
			if g.colorRule(shift) == color {
				out.TryInsert(base.Translate(shift), coef)
			}
		}
	}
	return out
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
