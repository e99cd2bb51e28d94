package response

import (
	"time"

	"github.com/Shwetaank/movies-booking-app/internal/data/entity"
)

type BookingResponse struct {
	ID        string    `json:"id"`
	Movie     string    `json:"movie"`
	Slot      string    `json:"slot"`
	Seats     []string  `json:"seats"`
	CreatedAt time.Time `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:        booking.ID.String(),
		Movie:     booking.Movie,
		Slot:      booking.Slot,
		Seats:     booking.Seats,
		CreatedAt: booking.CreatedAt,
	}
}
