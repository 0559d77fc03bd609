package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"heatlab/domain/cluster"
	"heatlab/domain/core"
)

// TreeCacheRepository persists serialized dendrograms keyed by matrix
// fingerprint, implementing ports.TreeCache.
type TreeCacheRepository struct {
	db *sqlx.DB
}

// Connect opens a Postgres connection pool for the cache.
func Connect(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}

// NewTreeCacheRepository creates a new tree cache repository
func NewTreeCacheRepository(db *sqlx.DB) *TreeCacheRepository {
	return &TreeCacheRepository{db: db}
}

// EnsureSchema creates the cache table when it does not exist yet.
func (r *TreeCacheRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS cluster_tree_cache (
			cache_key  TEXT PRIMARY KEY,
			tree       JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create cluster_tree_cache table: %w", err)
	}
	return nil
}

// Get loads a cached dendrogram. A missing key is a cache miss, not an
// error: it returns (nil, nil).
func (r *TreeCacheRepository) Get(ctx context.Context, key core.Hash) (*cluster.Node, error) {
	query := `SELECT tree FROM cluster_tree_cache WHERE cache_key = $1`

	var payload []byte
	err := r.db.QueryRowContext(ctx, query, key.String()).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cached tree: %w", err)
	}

	var encoded cluster.EncodedNode
	if err := json.Unmarshal(payload, &encoded); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached tree: %w", err)
	}
	return encoded.Decode()
}

// Put stores a dendrogram under the given key, replacing any previous entry.
func (r *TreeCacheRepository) Put(ctx context.Context, key core.Hash, tree *cluster.Node) error {
	payload, err := json.Marshal(cluster.EncodeNode(tree))
	if err != nil {
		return fmt.Errorf("failed to marshal tree: %w", err)
	}

	query := `
		INSERT INTO cluster_tree_cache (cache_key, tree)
		VALUES ($1, $2)
		ON CONFLICT (cache_key) DO UPDATE SET
			tree = EXCLUDED.tree,
			created_at = now()`

	if _, err := r.db.ExecContext(ctx, query, key.String(), payload); err != nil {
		return fmt.Errorf("failed to store cached tree: %w", err)
	}
	return nil
}
