package cluster

import "math"

// pairKey is an unordered pair of cluster identifiers, stored low-high so
// only one triangle of the matrix exists.
type pairKey struct {
	lo, hi int
}

func makePairKey(i, j int) pairKey {
	if i < j {
		return pairKey{lo: i, hi: j}
	}
	return pairKey{lo: j, hi: i}
}

// DistanceMatrix holds pairwise distances between active clusters during one
// agglomeration run. It is symmetric by construction: Get(i, j) and Get(j, i)
// read the same entry. Identifiers of merged clusters stay resolvable until
// Remove is called, so linkage updates can read distances through both former
// children before dropping them.
type DistanceMatrix struct {
	entries map[pairKey]float64
}

// NewDistanceMatrix creates an empty distance matrix.
func NewDistanceMatrix() *DistanceMatrix {
	return &DistanceMatrix{entries: make(map[pairKey]float64)}
}

// Set records the distance between clusters i and j (i != j).
func (m *DistanceMatrix) Set(i, j int, d float64) {
	m.entries[makePairKey(i, j)] = d
}

// Get returns the recorded distance between clusters i and j, or +Inf when
// no entry exists.
func (m *DistanceMatrix) Get(i, j int) float64 {
	if d, ok := m.entries[makePairKey(i, j)]; ok {
		return d
	}
	return math.Inf(1)
}

// Remove drops the entry for the pair {i, j} if present.
func (m *DistanceMatrix) Remove(i, j int) {
	delete(m.entries, makePairKey(i, j))
}

// Len returns the number of stored pairs.
func (m *DistanceMatrix) Len() int {
	return len(m.entries)
}
