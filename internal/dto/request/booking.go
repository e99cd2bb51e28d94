package request

import "strings"

type CreateBookingRequest struct {
	Movie string   `json:"movie" validate:"required"`
	Slot  string   `json:"slot" validate:"required"`
	Seats []string `json:"seats" validate:"required,min=1,unique,dive,required"`
}

// Normalize trims surrounding whitespace so "A1 " and "A1" claim the
// same seat. Runs before validation.
func (r *CreateBookingRequest) Normalize() {
	r.Movie = strings.TrimSpace(r.Movie)
	r.Slot = strings.TrimSpace(r.Slot)
	for i, seat := range r.Seats {
		r.Seats[i] = strings.TrimSpace(seat)
	}
}
