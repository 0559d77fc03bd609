package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"heatlab/adapters/excel"
	"heatlab/app"
	"heatlab/domain/core"
	"heatlab/internal"
)

// Server is the JSON boundary between the analytics core and the browser
// renderer. Every route is a synchronous pure call into the service layer;
// no state survives a request.
type Server struct {
	router  *gin.Engine
	service *app.AnalysisService
	dataset *excel.MatrixData // optional, preloaded at startup
	log     *internal.Logger
}

// NewServer creates a new API server instance
func NewServer(service *app.AnalysisService, dataset *excel.MatrixData, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	s := &Server{
		router:  gin.Default(),
		service: service,
		dataset: dataset,
		log:     logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	{
		api.POST("/cluster", s.handleCluster)
		api.POST("/cluster/flip", s.handleFlip)
		api.POST("/compare", s.handleCompare)
		api.GET("/methods", s.handleMethods)
		api.GET("/dataset", s.handleDataset)

		st := api.Group("/stats")
		{
			st.POST("/descriptive", s.handleDescriptive)
			st.POST("/ttest", s.handleTTest)
			st.POST("/mannwhitney", s.handleMannWhitney)
			st.POST("/wilcoxon", s.handleWilcoxon)
			st.POST("/anova", s.handleANOVA)
			st.POST("/kruskal", s.handleKruskal)
			st.POST("/posthoc", s.handlePostHoc)
		}
	}
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the server on the given address.
func (s *Server) Run(addr string) error {
	s.log.Info("heatlab API listening on %s", addr)
	return s.router.Run(addr)
}

// respondError maps domain errors onto HTTP statuses: caller errors are 400,
// everything else is an opaque 500.
func (s *Server) respondError(c *gin.Context, err error) {
	if core.IsInvalidInput(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.log.Error("request failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
