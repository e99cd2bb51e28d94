package repository

import (
	"github.com/Shwetaank/movies-booking-app/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Booking BookingRepository
	Movie   MovieRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking: NewBookingRepository(db, log),
		Movie:   NewMovieRepository(db, log),
	}
}
