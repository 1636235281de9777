package hamiltonian

// Package hamiltonian partitions a Pauli-string combination into mutually
// commuting groups by greedy Welsh–Powell coloring of the anti-commutation
// graph, then refines each group with a translation-periodicity descriptor
// so that conflicting terms can be generated lazily at a given lattice site.

import (
	"sort"

	"github.com/alfooscxx/many-body-dynamics/pauli"
)

// Hamiltonian owns the ordered sequence of commuting groups of base terms.
type Hamiltonian struct {
	groups []Group
}

// New partitions sum into groups. Vertices are indexed in the canonical
// (v, w)-lexicographic order of the strings; the Welsh–Powell heuristic
// processes them by decreasing anti-commutation degree, ties broken by
// vertex index, and assigns each the smallest color unused among its
// already-colored neighbours. The heuristic does not minimize the chromatic
// number in general but is deterministic and close to optimal on the sparse
// graphs produced by lattice Hamiltonians.
func New(sum pauli.Combination) *Hamiltonian {
	strings := sum.SortedStrings()
	n := len(strings)
	if n == 0 {
		return &Hamiltonian{}
	}

	adjacency := make([][]bool, n)
	degrees := make([]int, n)
	for i := range adjacency {
		adjacency[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !strings[i].CommutesWith(strings[j]) {
				adjacency[i][j] = true
				adjacency[j][i] = true
				degrees[i]++
				degrees[j]++
			}
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if degrees[order[a]] != degrees[order[b]] {
			return degrees[order[a]] > degrees[order[b]]
		}
		return order[a] < order[b]
	})

	colors := make([]int, n)
	for i := range colors {
		colors[i] = -1
	}
	chi := 0
	for _, vertex := range order {
		used := make([]bool, n)
		for neighbour := 0; neighbour < n; neighbour++ {
			if adjacency[vertex][neighbour] && colors[neighbour] >= 0 {
				used[colors[neighbour]] = true
			}
		}
		c := 0
		for used[c] {
			c++
		}
		colors[vertex] = c
		if c > chi {
			chi = c
		}
	}

	groups := make([]Group, chi+1)
	for i := range groups {
		groups[i].base = make(pauli.Combination)
	}
	for i, s := range strings {
		groups[colors[i]].base.TryInsert(s, sum[s])
	}
	for i := range groups {
		groups[i].doColoring()
	}
	return &Hamiltonian{groups: groups}
}

// Groups returns the group sequence, ordered by color.
func (h *Hamiltonian) Groups() []Group { return h.groups }
