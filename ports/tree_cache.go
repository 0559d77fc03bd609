package ports

import (
	"context"

	"heatlab/domain/cluster"
	"heatlab/domain/core"
)

// TreeCache stores clustered dendrograms keyed by an input fingerprint, so
// repeated renders of the same matrix skip the O(n^3) merge loop. Get
// returns (nil, nil) on a miss.
type TreeCache interface {
	Get(ctx context.Context, key core.Hash) (*cluster.Node, error)
	Put(ctx context.Context, key core.Hash, tree *cluster.Node) error
}
