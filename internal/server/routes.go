package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"genderdecoder/internal/coder"
	"genderdecoder/internal/config"
	"genderdecoder/internal/db"
	"genderdecoder/internal/handlers"
	"genderdecoder/internal/handlers/api"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(database *db.DB, c *coder.Coder, yamlCfg *config.YAMLConfig) {
	s.registerRoutes(database, database, c, yamlCfg)
}

func (s *Server) registerRoutes(store api.JobAdStore, pinger handlers.Pinger, c *coder.Coder, yamlCfg *config.YAMLConfig) {
	// Initialize handlers
	adHandler := handlers.NewAdHandler(store, c, s.Cfg, yamlCfg)
	probeHandler := handlers.NewProbeHandler(pinger)
	apiAnalyse := api.NewAnalyseHandler(c, yamlCfg)
	apiAds := api.NewAdHandler(store, c, yamlCfg)

	// Ops
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Frontend routes
	s.App.Get("/", adHandler.Index)
	s.App.Post("/ads", adHandler.Create)
	s.App.Get("/results/:id", adHandler.Show)
	s.App.Get("/about", adHandler.About)
	s.App.Get("/lexicons", adHandler.Lexicons)

	// JSON API
	v1 := s.App.Group("/api/v1")
	v1.Post("/analyse", apiAnalyse.Analyse)
	v1.Get("/lexicons", apiAnalyse.Lexicons)
	v1.Post("/ads", apiAds.Create)
	v1.Get("/ads", apiAds.List)
	v1.Get("/ads/:id", apiAds.Get)
}
