package entity

// Booking is immutable once written. The movie field is an opaque
// reference into the catalog and is not verified on creation.
type Booking struct {
	BaseSimple
	Movie string   `db:"movie"`
	Slot  string   `db:"slot"`
	Seats []string `db:"-"` // one booking_seats row per seat
}
