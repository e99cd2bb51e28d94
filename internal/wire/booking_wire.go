package wire

import (
	"github.com/Shwetaank/movies-booking-app/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /booking - Create new booking
	r.Post("/booking", bookingHandler.CreateBooking)

	// GET /booking/last - Most recent booking
	r.Get("/booking/last", bookingHandler.GetLastBooking)
}
