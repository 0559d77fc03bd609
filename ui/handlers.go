package ui

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"heatlab/domain/cluster"
	"heatlab/domain/stats"
)

// clusterRequest carries a heatmap matrix. Missing cells arrive as JSON
// null, which is why the matrix is pointers rather than plain floats.
type clusterRequest struct {
	Matrix         [][]*float64 `json:"matrix" binding:"required"`
	Linkage        string       `json:"linkage"`
	ClusterColumns bool         `json:"cluster_columns"`
}

type axisResponse struct {
	Tree  *cluster.EncodedNode `json:"tree"`
	Order []int                `json:"order"`
}

func (s *Server) handleCluster(c *gin.Context) {
	var req clusterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	linkage, err := cluster.ParseLinkage(req.Linkage)
	if err != nil {
		s.respondError(c, err)
		return
	}

	result, err := s.service.ClusterMatrix(c.Request.Context(), toMatrix(req.Matrix), linkage, req.ClusterColumns)
	if err != nil {
		s.respondError(c, err)
		return
	}

	resp := gin.H{
		"job_id":  result.JobID,
		"linkage": result.Linkage,
		"rows": axisResponse{
			Tree:  cluster.EncodeNode(result.Rows.Tree),
			Order: result.Rows.Order,
		},
	}
	if result.Columns != nil {
		resp["columns"] = axisResponse{
			Tree:  cluster.EncodeNode(result.Columns.Tree),
			Order: result.Columns.Order,
		}
	}
	c.JSON(http.StatusOK, resp)
}

type flipRequest struct {
	Tree     *cluster.EncodedNode `json:"tree" binding:"required"`
	RootOnly bool                 `json:"root_only"`
}

func (s *Server) handleFlip(c *gin.Context) {
	var req flipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tree, err := req.Tree.Decode()
	if err != nil {
		s.respondError(c, err)
		return
	}

	var flipped *cluster.Node
	if req.RootOnly {
		flipped = cluster.FlipRoot(tree)
	} else {
		flipped = cluster.FlipTree(tree)
	}

	c.JSON(http.StatusOK, axisResponse{
		Tree:  cluster.EncodeNode(flipped),
		Order: flipped.LeafOrder(),
	})
}

type sampleRequest struct {
	Values []float64 `json:"values" binding:"required"`
}

func (s *Server) handleDescriptive(c *gin.Context) {
	var req sampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"n":         len(req.Values),
		"mean":      stats.Mean(req.Values),
		"median":    stats.Median(req.Values),
		"quartiles": stats.Quartile(req.Values),
		"std":       stats.Std(req.Values, true),
		"sem":       stats.SEM(req.Values),
	})
}

type twoSampleRequest struct {
	Group1 []float64 `json:"group1"`
	Group2 []float64 `json:"group2"`
	Paired bool      `json:"paired"`
}

func (s *Server) handleTTest(c *gin.Context) {
	var req twoSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := stats.TTest(req.Group1, req.Group2, req.Paired)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleMannWhitney(c *gin.Context) {
	var req twoSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats.MannWhitneyU(req.Group1, req.Group2))
}

func (s *Server) handleWilcoxon(c *gin.Context) {
	var req twoSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := stats.WilcoxonSignedRank(req.Group1, req.Group2)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type groupsRequest struct {
	Groups     [][]float64 `json:"groups" binding:"required"`
	Labels     []string    `json:"labels"`
	Parametric *bool       `json:"parametric"`
}

func (s *Server) handleANOVA(c *gin.Context) {
	var req groupsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats.OneWayANOVA(req.Groups))
}

func (s *Server) handleKruskal(c *gin.Context) {
	var req groupsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats.KruskalWallis(req.Groups))
}

func (s *Server) handlePostHoc(c *gin.Context) {
	var req groupsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"comparisons": stats.BonferroniPostHoc(req.Groups, req.Labels),
	})
}

func (s *Server) handleCompare(c *gin.Context) {
	var req groupsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parametric := true
	if req.Parametric != nil {
		parametric = *req.Parametric
	}

	comparison, err := s.service.CompareGroups(req.Groups, req.Labels, parametric)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comparison)
}

func (s *Server) handleDataset(c *gin.Context) {
	if s.dataset == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no matrix file configured"})
		return
	}

	// NaN cells go back out as JSON null, mirroring what clients send in.
	matrix := make([][]*float64, len(s.dataset.Values))
	for i, row := range s.dataset.Values {
		out := make([]*float64, len(row))
		for j := range row {
			if !math.IsNaN(row[j]) {
				v := row[j]
				out[j] = &v
			}
		}
		matrix[i] = out
	}

	c.JSON(http.StatusOK, gin.H{
		"row_labels":    s.dataset.RowLabels,
		"column_labels": s.dataset.ColumnLabels,
		"matrix":        matrix,
	})
}

// toMatrix converts a nullable wire matrix into the NaN-sentinel form the
// clustering core uses.
func toMatrix(in [][]*float64) cluster.Matrix {
	m := make(cluster.Matrix, len(in))
	for i, row := range in {
		vector := make(cluster.Vector, len(row))
		for j, v := range row {
			if v == nil {
				vector[j] = math.NaN()
			} else {
				vector[j] = *v
			}
		}
		m[i] = vector
	}
	return m
}
