// Package cluster implements the agglomerative clustering core used to order
// heatmap axes and build dendrograms: NaN-tolerant Euclidean distances, a
// symmetric distance matrix, the merge loop with selectable linkage, and the
// tree operations (leaf ordering, mirror flips) the renderer consumes.
package cluster

// Node is one node of a dendrogram. A leaf wraps a single original item
// index at height 0; an internal node owns exactly two children plus the
// linkage distance at which they were joined. Leaves always lists the
// subsumed original indices in left-then-right order as of creation.
//
// Trees are treated as immutable once built: FlipTree and FlipRoot return
// new nodes instead of mutating, so a renderer can keep the previous tree
// for undo.
type Node struct {
	Index  int     // original item index for leaves, -1 for internal nodes
	Height float64 // linkage distance of the merge, 0 for leaves
	Left   *Node
	Right  *Node
	Leaves []int
}

// NewLeaf creates a leaf node for one original item index.
func NewLeaf(index int) *Node {
	return &Node{Index: index, Leaves: []int{index}}
}

// NewInternal creates an internal node joining left and right at the given
// height. The leaf list is the concatenation of left's leaves then right's.
func NewInternal(left, right *Node, height float64) *Node {
	leaves := make([]int, 0, len(left.Leaves)+len(right.Leaves))
	leaves = append(leaves, left.Leaves...)
	leaves = append(leaves, right.Leaves...)
	return &Node{
		Index:  -1,
		Height: height,
		Left:   left,
		Right:  right,
		Leaves: leaves,
	}
}

// IsLeaf reports whether the node wraps a single original item.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// LeafOrder returns the depth-first left-to-right sequence of original leaf
// indices. The slice is built fresh on every call; callers may keep or
// mutate it freely.
func (n *Node) LeafOrder() []int {
	if n == nil {
		return nil
	}
	order := make([]int, 0, len(n.Leaves))
	n.appendLeaves(&order)
	return order
}

func (n *Node) appendLeaves(order *[]int) {
	if n.IsLeaf() {
		*order = append(*order, n.Index)
		return
	}
	n.Left.appendLeaves(order)
	n.Right.appendLeaves(order)
}

// CountNodes returns the number of leaves and internal nodes in the tree.
func (n *Node) CountNodes() (leaves, internal int) {
	if n == nil {
		return 0, 0
	}
	if n.IsLeaf() {
		return 1, 0
	}
	ll, li := n.Left.CountNodes()
	rl, ri := n.Right.CountNodes()
	return ll + rl, li + ri + 1
}

// FlipTree returns the mirror image of t: every internal node's children are
// swapped, recursively. The input tree is left untouched.
func FlipTree(t *Node) *Node {
	if t == nil {
		return nil
	}
	if t.IsLeaf() {
		return NewLeaf(t.Index)
	}
	return NewInternal(FlipTree(t.Right), FlipTree(t.Left), t.Height)
}

// FlipRoot returns a new tree with only the root's two children swapped.
// The subtrees themselves are shared structurally with the input.
func FlipRoot(t *Node) *Node {
	if t == nil || t.IsLeaf() {
		return t
	}
	return NewInternal(t.Right, t.Left, t.Height)
}
