package cluster

import (
	"encoding/json"
	"math"

	"heatlab/domain/core"
)

// Height carries a merge height through JSON. Trees built from incomparable
// rows legitimately have +Inf heights, which encoding/json rejects for plain
// float64, so +Inf is written as the string "inf".
type Height float64

// MarshalJSON implements json.Marshaler.
func (h Height) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(h), 1) {
		return []byte(`"inf"`), nil
	}
	return json.Marshal(float64(h))
}

// UnmarshalJSON implements json.Unmarshaler.
func (h *Height) UnmarshalJSON(data []byte) error {
	if string(data) == `"inf"` {
		*h = Height(math.Inf(1))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*h = Height(f)
	return nil
}

// EncodedNode is the wire and caching form of a dendrogram node. It carries
// everything needed to reconstruct traversal order exactly: kind, height,
// leaf-index list and child structure.
type EncodedNode struct {
	Kind   string       `json:"kind"` // "leaf" or "internal"
	Index  int          `json:"index,omitempty"`
	Height Height       `json:"height"`
	Leaves []int        `json:"leaves"`
	Left   *EncodedNode `json:"left,omitempty"`
	Right  *EncodedNode `json:"right,omitempty"`
}

const (
	kindLeaf     = "leaf"
	kindInternal = "internal"
)

// EncodeNode converts a tree into its serializable form. A nil tree encodes
// to nil.
func EncodeNode(n *Node) *EncodedNode {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		return &EncodedNode{
			Kind:   kindLeaf,
			Index:  n.Index,
			Leaves: []int{n.Index},
		}
	}
	return &EncodedNode{
		Kind:   kindInternal,
		Height: Height(n.Height),
		Leaves: append([]int(nil), n.Leaves...),
		Left:   EncodeNode(n.Left),
		Right:  EncodeNode(n.Right),
	}
}

// Decode rebuilds the live tree from its serialized form. Leaf lists are
// reconstructed from the child structure rather than trusted, so a decoded
// tree always satisfies the left-then-right invariant.
func (e *EncodedNode) Decode() (*Node, error) {
	if e == nil {
		return nil, nil
	}
	switch e.Kind {
	case kindLeaf:
		return NewLeaf(e.Index), nil
	case kindInternal:
		if e.Left == nil || e.Right == nil {
			return nil, core.NewInvalidInputError("internal dendrogram node is missing a child")
		}
		left, err := e.Left.Decode()
		if err != nil {
			return nil, err
		}
		right, err := e.Right.Decode()
		if err != nil {
			return nil, err
		}
		return NewInternal(left, right, float64(e.Height)), nil
	default:
		return nil, core.NewInvalidInputError("unknown dendrogram node kind " + e.Kind)
	}
}
