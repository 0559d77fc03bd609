package cluster

import (
	"fmt"
	"math"

	"heatlab/domain/core"
)

// Linkage selects how the distance between two clusters is derived from the
// distances of their members.
type Linkage string

const (
	// LinkageSingle takes the minimum of the two child distances.
	LinkageSingle Linkage = "single"
	// LinkageComplete takes the maximum of the two child distances.
	LinkageComplete Linkage = "complete"
	// LinkageAverage is UPGMA: the child distances averaged, weighted by
	// the number of leaves under each child.
	LinkageAverage Linkage = "average"
)

// ParseLinkage maps a wire string onto a Linkage, defaulting to average when
// empty.
func ParseLinkage(s string) (Linkage, error) {
	switch Linkage(s) {
	case LinkageSingle, LinkageComplete, LinkageAverage:
		return Linkage(s), nil
	case "":
		return LinkageAverage, nil
	default:
		return "", fmt.Errorf("%w: %q", core.ErrUnknownLinkage, s)
	}
}

// Cluster builds a binary merge tree over the rows of m by classic
// nearest-neighbor agglomeration: O(n^3) time, O(n^2) space, which is fine
// for the matrix sizes a heatmap can usefully display.
//
// An empty matrix yields (nil, nil); a single row yields one leaf at height
// 0. Rows of unequal length are a caller error. Rows whose distance to
// everything is +Inf (for example all-missing rows) still merge
// deterministically; +Inf only loses against finite distances.
//
// Nearest-pair selection is deterministic: active cluster identifiers are
// scanned in ascending order and the first strictly-minimal pair wins.
// Identifiers 0..n-1 are the input rows, n.. are merges in creation order,
// so repeated calls over the same input produce the same tree. The member
// with the smaller identifier becomes the left child.
func Cluster(m Matrix, linkage Linkage) (*Node, error) {
	switch linkage {
	case LinkageSingle, LinkageComplete, LinkageAverage:
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownLinkage, linkage)
	}

	n := len(m)
	if n == 0 {
		return nil, nil
	}
	for _, row := range m[1:] {
		if len(row) != len(m[0]) {
			return nil, core.ErrRaggedMatrix
		}
	}
	if n == 1 {
		return NewLeaf(0), nil
	}

	// Node arena: identifiers index directly into it, leaves first, then
	// one slot per merge.
	nodes := make([]*Node, n, 2*n-1)
	active := make([]int, n)
	for i := range m {
		nodes[i] = NewLeaf(i)
		active[i] = i
	}

	dm := NewDistanceMatrix()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dm.Set(i, j, Distance(m[i], m[j]))
		}
	}

	for len(active) > 1 {
		// First strictly-minimal pair in ascending identifier order.
		bi, bj := -1, -1
		best := math.Inf(1)
		for x := 0; x < len(active); x++ {
			for y := x + 1; y < len(active); y++ {
				d := dm.Get(active[x], active[y])
				if bi < 0 || d < best {
					bi, bj = active[x], active[y]
					best = d
				}
			}
		}

		left, right := nodes[bi], nodes[bj]
		merged := NewInternal(left, right, best)
		id := len(nodes)
		nodes = append(nodes, merged)

		// New distances must be derived while both child entries are
		// still reachable.
		nl := float64(len(left.Leaves))
		nr := float64(len(right.Leaves))
		for _, k := range active {
			if k == bi || k == bj {
				continue
			}
			dl := dm.Get(bi, k)
			dr := dm.Get(bj, k)
			var d float64
			switch linkage {
			case LinkageSingle:
				d = math.Min(dl, dr)
			case LinkageComplete:
				d = math.Max(dl, dr)
			case LinkageAverage:
				d = (dl*nl + dr*nr) / (nl + nr)
			}
			dm.Set(id, k, d)
		}

		next := active[:0]
		for _, k := range active {
			dm.Remove(bi, k)
			dm.Remove(bj, k)
			if k != bi && k != bj {
				next = append(next, k)
			}
		}
		// id is the largest identifier so far, so appending keeps the
		// active list in ascending order.
		active = append(next, id)
	}

	return nodes[active[0]], nil
}
