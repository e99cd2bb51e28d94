package inventory

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConflictError reports the subset of requested seats already held for
// the slot. Callers pick a different seat selection and retry.
type ConflictError struct {
	Slot  string
	Seats []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("seats already booked for slot %s: %s", e.Slot, strings.Join(e.Seats, ", "))
}

// Guard owns the per-slot seat arena. Every (slot, seat) pair is a
// uniquely claimable resource; a multi-seat reservation claims all of
// its pairs as one indivisible operation or none of them.
//
// Slots lock independently, so reservations on different showtimes
// never block each other.
type Guard struct {
	mu    sync.Mutex
	slots map[string]*slotSeats
	log   *zap.Logger
}

type slotSeats struct {
	mu    sync.Mutex
	seats map[string]uuid.UUID // seat -> holding booking
}

func NewGuard(log *zap.Logger) *Guard {
	return &Guard{
		slots: make(map[string]*slotSeats),
		log:   log.With(zap.String("component", "seat_guard")),
	}
}

func (g *Guard) slot(slot string) *slotSeats {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.slots[slot]
	if !ok {
		s = &slotSeats{seats: make(map[string]uuid.UUID)}
		g.slots[slot] = s
	}
	return s
}

// Reserve atomically claims the requested seats for the slot on behalf
// of bookingID. Returns a *ConflictError listing every seat already
// held; in that case nothing is claimed.
func (g *Guard) Reserve(slot string, seats []string, bookingID uuid.UUID) error {
	s := g.slot(slot)

	s.mu.Lock()
	defer s.mu.Unlock()

	var conflicts []string
	for _, seat := range seats {
		if _, held := s.seats[seat]; held {
			conflicts = append(conflicts, seat)
		}
	}

	if len(conflicts) > 0 {
		sort.Strings(conflicts)
		return &ConflictError{Slot: slot, Seats: conflicts}
	}

	for _, seat := range seats {
		s.seats[seat] = bookingID
	}

	g.log.Debug("Seats reserved",
		zap.String("slot", slot),
		zap.Strings("seats", seats),
		zap.String("booking_id", bookingID.String()),
	)

	return nil
}

// Release returns previously granted seats to the pool. Used as the
// compensating action when the durable write fails after a grant.
func (g *Guard) Release(slot string, seats []string) error {
	s := g.slot(slot)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, seat := range seats {
		delete(s.seats, seat)
	}

	g.log.Debug("Seats released",
		zap.String("slot", slot),
		zap.Strings("seats", seats),
	)

	return nil
}

// Warm seeds the arena with an already committed claim. Called at boot
// so the guard matches the store after a restart.
func (g *Guard) Warm(slot, seat string, bookingID uuid.UUID) {
	s := g.slot(slot)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seats[seat] = bookingID
}

// Holder reports which booking holds a seat, if any.
func (g *Guard) Holder(slot, seat string) (uuid.UUID, bool) {
	s := g.slot(slot)

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.seats[seat]
	return id, ok
}
