package repository

import (
	"errors"
)

// ErrSeatTaken is returned when the composite unique index on
// (slot, seat) rejects a write. The inventory guard normally catches
// conflicts first; the index is the durable backstop.
var ErrSeatTaken = errors.New("seat already taken for slot")
