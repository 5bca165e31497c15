package main

import (
	"log"

	"theater-booking/cmd"
	"theater-booking/internal/data/repository"
	"theater-booking/internal/wire"
	"theater-booking/pkg/cache"
	"theater-booking/pkg/database"
	"theater-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Apply schema migrations before opening the pool
	if err := database.RunMigrations(config.Database); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Connect to Redis. The availability cache is optional; boot without
	// it when Redis is down.
	cacheClient, err := cache.InitRedis(config.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, running without availability cache", zap.Error(err))
		cacheClient = nil
	} else {
		defer cacheClient.Close()
		logger.Info("Redis connected successfully")
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(db, repos, cacheClient, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
