package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Shwetaank/movies-booking-app/internal/data/entity"
	"github.com/Shwetaank/movies-booking-app/internal/data/repository"
	"github.com/Shwetaank/movies-booking-app/internal/dto/request"
	"github.com/Shwetaank/movies-booking-app/internal/dto/response"
	"github.com/Shwetaank/movies-booking-app/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNoBooking means the store is empty; GetLastBooking maps it to 404.
var ErrNoBooking = errors.New("no booking found")

// releaseRetries bounds the compensating release after a failed write.
const releaseRetries = 3

// SeatReserver is the guard contract the service orchestrates against.
// All seat-inventory mutation goes through Reserve/Release; nothing
// else may claim seats.
type SeatReserver interface {
	Reserve(slot string, seats []string, bookingID uuid.UUID) error
	Release(slot string, seats []string) error
}

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetLastBooking(ctx context.Context) (*response.BookingResponse, error)
}

type bookingService struct {
	repo  *repository.Repository
	guard SeatReserver
	log   *zap.Logger
}

func NewBookingService(repo *repository.Repository, guard SeatReserver, log *zap.Logger) BookingService {
	return &bookingService{
		repo:  repo,
		guard: guard,
		log:   log.With(zap.String("service", "booking")),
	}
}

// CreateBooking runs validate -> reserve -> persist. A validation
// failure never reaches the guard; a seat conflict never reaches the
// store; a store failure after a grant releases the grant so the seats
// are claimable again.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	req.Normalize()

	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Movie: req.Movie,
		Slot:  req.Slot,
		Seats: req.Seats,
	}

	// Atomic all-or-nothing claim. A conflicting concurrent request
	// sees the claim immediately, before the write below is durable.
	if err := s.guard.Reserve(booking.Slot, booking.Seats, booking.ID); err != nil {
		s.log.Info("Booking rejected - seats held",
			zap.String("slot", booking.Slot),
			zap.Strings("seats", booking.Seats),
		)
		return nil, err
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.releaseGrant(booking)

		if errors.Is(err, repository.ErrSeatTaken) {
			// Unique index caught a claim the guard missed. The two
			// only drift if something wrote around the guard.
			s.log.Error("Seat index conflict despite guard grant",
				zap.Error(err),
				zap.String("slot", booking.Slot),
				zap.Strings("seats", booking.Seats),
			)
			return nil, err
		}

		s.log.Error("Failed to persist booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("slot", booking.Slot),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("movie", booking.Movie),
		zap.String("slot", booking.Slot),
		zap.Strings("seats", booking.Seats),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetLastBooking(ctx context.Context) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindLatest(ctx)
	if err != nil {
		s.log.Error("Failed to get last booking", zap.Error(err))
		return nil, fmt.Errorf("get last booking: %w", err)
	}

	if booking == nil {
		return nil, ErrNoBooking
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// releaseGrant returns seats granted for a booking that never became
// durable. Retries a bounded number of times; if the release cannot
// complete, the seats stay held (provisionally unavailable) and the
// error log flags them for operator reconciliation.
func (s *bookingService) releaseGrant(booking *entity.Booking) {
	var err error
	for attempt := 1; attempt <= releaseRetries; attempt++ {
		if err = s.guard.Release(booking.Slot, booking.Seats); err == nil {
			return
		}
		s.log.Warn("Seat release failed",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.String("slot", booking.Slot),
		)
	}

	s.log.Error("Seats stranded after failed booking - operator reconciliation required",
		zap.Error(err),
		zap.String("booking_id", booking.ID.String()),
		zap.String("slot", booking.Slot),
		zap.Strings("seats", booking.Seats),
	)
}
