package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"heatlab/adapters/excel"
	"heatlab/adapters/postgres"
	"heatlab/app"
	"heatlab/internal"
	"heatlab/internal/config"
	"heatlab/ports"
	"heatlab/ui"
)

func main() {
	// .env is optional; environment variables win either way.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.Server.GinMode)
	logger := internal.NewDefaultLogger()

	var cache ports.TreeCache
	if cfg.Database.URL != "" {
		db, err := postgres.Connect(cfg.Database.URL)
		if err != nil {
			log.Fatalf("failed to connect to tree cache database: %v", err)
		}
		repo := postgres.NewTreeCacheRepository(db)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("failed to prepare tree cache schema: %v", err)
		}
		cache = repo
		logger.Info("tree cache enabled")
	}

	var dataset *excel.MatrixData
	if cfg.Data.File != "" {
		dataset, err = excel.NewMatrixReader(cfg.Data.File).Read()
		if err != nil {
			log.Fatalf("failed to read matrix file %s: %v", cfg.Data.File, err)
		}
		logger.Info("loaded matrix file %s (%d rows x %d columns)",
			cfg.Data.File, len(dataset.RowLabels), len(dataset.ColumnLabels))
	}

	service := app.NewAnalysisService(cache, logger)
	server := ui.NewServer(service, dataset, logger)
	if err := server.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
