package adaptor

import (
	"github.com/Shwetaank/movies-booking-app/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Booking *BookingHandler
	Movie   *MovieHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking: NewBookingHandler(service.Booking, log),
		Movie:   NewMovieHandler(service.Movie, log),
	}
}
