package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture: ((0,1),(2,(3,4))) with distinct heights.
func buildFixtureTree() *Node {
	left := NewInternal(NewLeaf(0), NewLeaf(1), 1.0)
	inner := NewInternal(NewLeaf(3), NewLeaf(4), 2.0)
	right := NewInternal(NewLeaf(2), inner, 3.0)
	return NewInternal(left, right, 4.0)
}

func TestLeafOrder(t *testing.T) {
	tree := buildFixtureTree()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, tree.LeafOrder())
	assert.Equal(t, tree.Leaves, tree.LeafOrder())
}

func TestLeafOrderFreshSlice(t *testing.T) {
	tree := buildFixtureTree()
	first := tree.LeafOrder()
	first[0] = 99
	assert.Equal(t, []int{0, 1, 2, 3, 4}, tree.LeafOrder())
}

func TestLeafOrderNilTree(t *testing.T) {
	var tree *Node
	assert.Nil(t, tree.LeafOrder())
}

func TestFlipTreeMirrorsEveryLevel(t *testing.T) {
	tree := buildFixtureTree()
	flipped := FlipTree(tree)

	// Same leaf set, locally reversed at every level.
	assert.Equal(t, []int{4, 3, 2, 1, 0}, flipped.LeafOrder())
	assert.ElementsMatch(t, tree.LeafOrder(), flipped.LeafOrder())

	// Heights travel with their nodes.
	assert.Equal(t, tree.Height, flipped.Height)
	assert.Equal(t, tree.Left.Height, flipped.Right.Height)

	// The input tree is untouched.
	assert.Equal(t, []int{0, 1, 2, 3, 4}, tree.LeafOrder())
}

func TestFlipRootSwapsOnlyTopBlocks(t *testing.T) {
	tree := buildFixtureTree()
	flipped := FlipRoot(tree)

	// Top-level blocks swap; each block keeps its internal order.
	assert.Equal(t, []int{2, 3, 4, 0, 1}, flipped.LeafOrder())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, tree.LeafOrder())

	// Subtrees are shared, not copied.
	assert.Same(t, tree.Left, flipped.Right)
	assert.Same(t, tree.Right, flipped.Left)
}

func TestFlipRootOnLeaf(t *testing.T) {
	leaf := NewLeaf(7)
	assert.Same(t, leaf, FlipRoot(leaf))
}

func TestFlipTreeTwiceIsIdentity(t *testing.T) {
	tree := buildFixtureTree()
	back := FlipTree(FlipTree(tree))
	assert.Equal(t, tree.LeafOrder(), back.LeafOrder())
}

func TestNewInternalLeavesLeftThenRight(t *testing.T) {
	n := NewInternal(NewLeaf(5), NewLeaf(2), 1.5)
	assert.Equal(t, []int{5, 2}, n.Leaves)
	require.False(t, n.IsLeaf())
	assert.Equal(t, -1, n.Index)
}
