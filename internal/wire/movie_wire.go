package wire

import (
	"github.com/Shwetaank/movies-booking-app/internal/adaptor"
	"github.com/Shwetaank/movies-booking-app/pkg/middleware"
	"github.com/Shwetaank/movies-booking-app/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /movie - List movies (public, anyone can view)
	r.Get("/movie", movieHandler.GetMovies)

	// GET /movie/{id} - Movie details (public)
	r.Get("/movie/{id}", movieHandler.GetMovieByID)

	// ==================== ADMIN ROUTES ====================
	// Catalog maintenance, gated by the admin token
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminToken(config.Admin.TokenHash, log))

		r.Post("/movie", movieHandler.CreateMovie)
		r.Patch("/movie/{id}", movieHandler.UpdateMovie)
		r.Delete("/movie/{id}", movieHandler.DeleteMovie)
	})
}
