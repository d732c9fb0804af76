// main.go
package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"movie-reservation/cmd"
	"movie-reservation/internal/data/catalog"
	"movie-reservation/internal/wire"
	"movie-reservation/pkg/database"
	"movie-reservation/pkg/utils"
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
		zap.String("catalog_source", config.Catalog.Source),
		zap.Bool("debug", config.App.Debug),
	)

	ctx := context.Background()

	// Pick the catalog source
	var source catalog.Source
	switch config.Catalog.Source {
	case "postgres":
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		source = catalog.NewPostgresSource(db, logger)
	default:
		source = catalog.NewCSVSource(config.Catalog.Path, logger)
	}

	// A load failure is reported once and never retried: the session
	// continues against whatever subset made it in, possibly nothing.
	records, err := source.Load(ctx)
	if err != nil {
		logger.Warn("Failed to load catalog", zap.Error(err))
		fmt.Printf("Error loading movies: %v\n", err)
	}

	cat := catalog.New(records)
	logger.Info("Catalog ready", zap.Int("records", cat.Len()))

	// Wire all dependencies
	app := wire.Wiring(cat, config, logger)

	// Run the booking session
	cmd.RunConsole(app.Reservation)
}
