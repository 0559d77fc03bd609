package ui

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatlab/adapters/excel"
	"heatlab/app"
	"heatlab/domain/cluster"
	"heatlab/internal"
)

func newTestServer(dataset *excel.MatrixData) *Server {
	gin.SetMode(gin.TestMode)
	service := app.NewAnalysisService(nil, internal.NewLogger(internal.LogLevelError))
	return NewServer(service, dataset, internal.NewLogger(internal.LogLevelError))
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	w := doJSON(t, newTestServer(nil), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClusterEndpoint(t *testing.T) {
	body := map[string]interface{}{
		"matrix": [][]interface{}{
			{1.0, 2.0},
			{1.1, 2.1},
			{9.0, nil}, // missing cell arrives as null
		},
		"linkage":         "average",
		"cluster_columns": true,
	}
	w := doJSON(t, newTestServer(nil), http.MethodPost, "/api/cluster", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		JobID string `json:"job_id"`
		Rows  struct {
			Order []int `json:"order"`
		} `json:"rows"`
		Columns struct {
			Order []int `json:"order"`
		} `json:"columns"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.JobID)
	assert.Len(t, resp.Rows.Order, 3)
	assert.Len(t, resp.Columns.Order, 2)
}

func TestClusterEndpointRaggedMatrix(t *testing.T) {
	body := map[string]interface{}{
		"matrix": [][]interface{}{{1.0, 2.0}, {1.0}},
	}
	w := doJSON(t, newTestServer(nil), http.MethodPost, "/api/cluster", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClusterEndpointUnknownLinkage(t *testing.T) {
	body := map[string]interface{}{
		"matrix":  [][]interface{}{{1.0}, {2.0}},
		"linkage": "ward",
	}
	w := doJSON(t, newTestServer(nil), http.MethodPost, "/api/cluster", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlipEndpoint(t *testing.T) {
	tree, err := cluster.Cluster(cluster.Matrix{{0}, {1}, {10}}, cluster.LinkageSingle)
	require.NoError(t, err)
	original := tree.LeafOrder()

	body := map[string]interface{}{
		"tree": cluster.EncodeNode(tree),
	}
	w := doJSON(t, newTestServer(nil), http.MethodPost, "/api/cluster/flip", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Order []int `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.ElementsMatch(t, original, resp.Order)
	assert.NotEqual(t, original, resp.Order)
}

func TestTTestEndpointMismatch(t *testing.T) {
	body := map[string]interface{}{
		"group1": []float64{1, 2, 3},
		"group2": []float64{1, 2},
		"paired": true,
	}
	w := doJSON(t, newTestServer(nil), http.MethodPost, "/api/stats/ttest", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTTestEndpoint(t *testing.T) {
	body := map[string]interface{}{
		"group1": []float64{1, 2, 3},
		"group2": []float64{10, 11, 12},
	}
	w := doJSON(t, newTestServer(nil), http.MethodPost, "/api/stats/ttest", body)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Name   string  `json:"name"`
		PValue float64 `json:"p_value"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "t", res.Name)
	assert.Less(t, res.PValue, 0.05)
}

func TestPostHocEndpointPairCount(t *testing.T) {
	body := map[string]interface{}{
		"groups": [][]float64{{1, 2}, {3, 4}, {5, 6}},
		"labels": []string{"a", "b", "c"},
	}
	w := doJSON(t, newTestServer(nil), http.MethodPost, "/api/stats/posthoc", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Comparisons []struct {
			CorrectedP float64 `json:"corrected_p"`
			RawP       float64 `json:"raw_p"`
		} `json:"comparisons"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Comparisons, 3)
	for _, cmp := range resp.Comparisons {
		assert.GreaterOrEqual(t, cmp.CorrectedP, cmp.RawP)
		assert.LessOrEqual(t, cmp.CorrectedP, 1.0)
	}
}

func TestCompareEndpoint(t *testing.T) {
	body := map[string]interface{}{
		"groups": [][]float64{{1, 2, 3}, {4, 5, 6}, {9, 10, 11}},
	}
	w := doJSON(t, newTestServer(nil), http.MethodPost, "/api/compare", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Omnibus struct {
			Name string `json:"name"`
		} `json:"omnibus"`
		PostHoc []json.RawMessage `json:"post_hoc"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "F", resp.Omnibus.Name)
	assert.Len(t, resp.PostHoc, 3)
}

func TestMethodsEndpoint(t *testing.T) {
	w := doJSON(t, newTestServer(nil), http.MethodGet, "/api/methods", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Kruskal-Wallis")
}

func TestDatasetEndpoint(t *testing.T) {
	w := doJSON(t, newTestServer(nil), http.MethodGet, "/api/dataset", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	dataset := &excel.MatrixData{
		RowLabels:    []string{"gene1"},
		ColumnLabels: []string{"s1", "s2"},
		Values:       cluster.Matrix{{1.5, 2.5}},
	}
	w = doJSON(t, newTestServer(dataset), http.MethodGet, "/api/dataset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gene1")
}
