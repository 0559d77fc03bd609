package app

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"heatlab/domain/cluster"
	"heatlab/domain/core"
	"heatlab/domain/stats"
	"heatlab/internal"
	"heatlab/ports"
)

// AnalysisService composes the clustering and statistics cores for the HTTP
// boundary: it fans row/column clustering out concurrently, consults the
// optional tree cache, and bundles group comparisons with their post-hoc
// annotations.
type AnalysisService struct {
	cache ports.TreeCache // nil disables caching
	log   *internal.Logger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(cache ports.TreeCache, logger *internal.Logger) *AnalysisService {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &AnalysisService{cache: cache, log: logger}
}

// AxisClustering is one clustered axis: the dendrogram plus the leaf order
// the renderer uses to linearize that axis.
type AxisClustering struct {
	Tree  *cluster.Node
	Order []int
}

// MatrixClustering is the full result of clustering a heatmap matrix.
// Columns is nil unless column clustering was requested.
type MatrixClustering struct {
	JobID   core.JobID
	Linkage cluster.Linkage
	Rows    *AxisClustering
	Columns *AxisClustering
}

// ClusterMatrix clusters the rows of m, and its columns too when
// clusterColumns is set. Row and column trees are independent, so they are
// computed concurrently. Results are cached per matrix fingerprint when a
// cache is configured.
func (s *AnalysisService) ClusterMatrix(ctx context.Context, m cluster.Matrix, linkage cluster.Linkage, clusterColumns bool) (*MatrixClustering, error) {
	result := &MatrixClustering{JobID: core.NewID(), Linkage: linkage}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tree, err := s.clusterWithCache(ctx, m, linkage, "rows")
		if err != nil {
			return err
		}
		result.Rows = &AxisClustering{Tree: tree, Order: tree.LeafOrder()}
		return nil
	})
	if clusterColumns {
		cols := Transpose(m)
		g.Go(func() error {
			tree, err := s.clusterWithCache(ctx, cols, linkage, "columns")
			if err != nil {
				return err
			}
			result.Columns = &AxisClustering{Tree: tree, Order: tree.LeafOrder()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Debug("clustered matrix job=%s rows=%d linkage=%s columns=%v",
		result.JobID, len(m), linkage, clusterColumns)
	return result, nil
}

func (s *AnalysisService) clusterWithCache(ctx context.Context, m cluster.Matrix, linkage cluster.Linkage, axis string) (*cluster.Node, error) {
	var key core.Hash
	if s.cache != nil {
		key = core.MatrixFingerprint(m, string(linkage)+":"+axis)
		tree, err := s.cache.Get(ctx, key)
		if err != nil {
			// The cache is an optimization; a broken cache must never
			// fail an analysis.
			s.log.Warn("tree cache lookup failed: %v", err)
		} else if tree != nil {
			s.log.Debug("tree cache hit for %s axis", axis)
			return tree, nil
		}
	}

	tree, err := cluster.Cluster(m, linkage)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && tree != nil {
		if err := s.cache.Put(ctx, key, tree); err != nil {
			s.log.Warn("tree cache store failed: %v", err)
		}
	}
	return tree, nil
}

// Transpose flips a matrix so columns can be clustered with the same row
// machinery. Ragged input is tolerated here; cluster.Cluster rejects it
// with a proper error downstream.
func Transpose(m cluster.Matrix) cluster.Matrix {
	width := 0
	for _, row := range m {
		if len(row) > width {
			width = len(row)
		}
	}
	out := make(cluster.Matrix, width)
	for j := range out {
		col := make(cluster.Vector, len(m))
		for i, row := range m {
			if j < len(row) {
				col[i] = row[j]
			} else {
				col[i] = math.NaN()
			}
		}
		out[j] = col
	}
	return out
}

// GroupComparison bundles the omnibus test over k groups with the pairwise
// post-hoc breakdown the renderer draws as significance brackets.
type GroupComparison struct {
	Omnibus      stats.TestResult      `json:"omnibus"`
	PostHoc      []stats.PostHocResult `json:"post_hoc,omitempty"`
	Significance string                `json:"significance"`
	Formatted    string                `json:"formatted"`
}

// CompareGroups picks the omnibus test for the group count and assumption
// (parametric: t-test/ANOVA, otherwise Mann-Whitney/Kruskal-Wallis) and adds
// Bonferroni post-hoc comparisons when more than two groups are present.
func (s *AnalysisService) CompareGroups(groups []stats.Sample, labels []string, parametric bool) (*GroupComparison, error) {
	var omnibus stats.TestResult
	var err error

	switch {
	case len(groups) < 2:
		omnibus = stats.TestResult{PValue: 1}
	case len(groups) == 2 && parametric:
		omnibus, err = stats.TTest(groups[0], groups[1], false)
		if err != nil {
			return nil, err
		}
	case len(groups) == 2:
		omnibus = stats.MannWhitneyU(groups[0], groups[1])
	case parametric:
		omnibus = stats.OneWayANOVA(groups)
	default:
		omnibus = stats.KruskalWallis(groups)
	}

	comparison := &GroupComparison{
		Omnibus:      omnibus,
		Significance: stats.SignificanceLevel(omnibus.PValue),
		Formatted:    stats.FormatPValue(omnibus.PValue),
	}
	if len(groups) > 2 {
		comparison.PostHoc = stats.BonferroniPostHoc(groups, labels)
	}
	return comparison, nil
}
