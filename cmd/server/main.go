package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"genderdecoder/internal/coder"
	"genderdecoder/internal/config"
	"genderdecoder/internal/db"
	"genderdecoder/internal/jobs"
	"genderdecoder/internal/logger"
	"genderdecoder/internal/metrics"
	"genderdecoder/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "genderdecoder",
	})
	log := logger.Named("main")

	// Load optional YAML config
	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load YAML config")
	}

	// Build the coder once; a bad word list is fatal
	c, err := coder.Load(coder.Sources{
		MasculineFile:  cfg.MasculineWordsFile,
		FeminineFile:   cfg.FeminineWordsFile,
		ExtraMasculine: yamlCfg.ExtraMasculine(),
		ExtraFeminine:  yamlCfg.ExtraFeminine(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	log.Info().
		Int("masculine_words", c.Masculine().Len()).
		Int("feminine_words", c.Feminine().Len()).
		Str("lexicon_version", c.Version()).
		Msg("word lists loaded")

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Msg("migrations completed successfully")

	metrics.Init(database)

	srv := server.New(cfg)
	srv.RegisterRoutes(database, c, yamlCfg)

	// Re-score ads analysed with older word lists
	var rescorer *jobs.Rescorer
	if cfg.RescoreEnabled() {
		rescorer = jobs.NewRescorer(database, c, cfg.RescoreSchedule)
		if err := rescorer.Start(ctx); err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.RescoreSchedule).Msg("failed to start rescorer")
		}
	} else {
		log.Info().Msg("rescorer disabled")
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Error().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	cancel()
	if rescorer != nil {
		rescorer.Stop()
	}
	if err := srv.Shutdown(); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited")
}
