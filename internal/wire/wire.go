package wire

import (
	"net/http"

	"github.com/Shwetaank/movies-booking-app/internal/adaptor"
	"github.com/Shwetaank/movies-booking-app/internal/data/repository"
	"github.com/Shwetaank/movies-booking-app/internal/inventory"
	"github.com/Shwetaank/movies-booking-app/internal/usecase"
	"github.com/Shwetaank/movies-booking-app/pkg/middleware"
	"github.com/Shwetaank/movies-booking-app/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, guard *inventory.Guard, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, guard, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireBooking(r, handler.Booking)
	wireMovie(r, handler.Movie, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
