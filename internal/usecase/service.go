package usecase

import (
	"github.com/Shwetaank/movies-booking-app/internal/data/repository"
	"github.com/Shwetaank/movies-booking-app/internal/inventory"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
	Movie   MovieService
}

func NewService(repo *repository.Repository, guard *inventory.Guard, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo, guard, log),
		Movie:   NewMovieService(repo, log),
	}
}
