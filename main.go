// main.go
package main

import (
	"context"
	"log"

	"github.com/Shwetaank/movies-booking-app/cmd"
	"github.com/Shwetaank/movies-booking-app/internal/data/repository"
	"github.com/Shwetaank/movies-booking-app/internal/inventory"
	"github.com/Shwetaank/movies-booking-app/internal/wire"
	"github.com/Shwetaank/movies-booking-app/pkg/database"
	"github.com/Shwetaank/movies-booking-app/pkg/utils"

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

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize repositories
	repos := repository.NewRepository(db, logger)

	// Seed the seat guard with committed claims so it matches the
	// store after a restart
	guard := inventory.NewGuard(logger)
	assignments, err := repos.Booking.FindSeatAssignments(context.Background())
	if err != nil {
		logger.Fatal("Failed to load seat assignments", zap.Error(err))
	}
	for _, a := range assignments {
		guard.Warm(a.Slot, a.Seat, a.BookingID)
	}

	logger.Info("Seat guard warmed", zap.Int("claims", len(assignments)))

	// Wire all dependencies
	app := wire.Wiring(repos, guard, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
