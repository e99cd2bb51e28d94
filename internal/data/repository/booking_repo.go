package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shwetaank/movies-booking-app/internal/data/entity"
	"github.com/Shwetaank/movies-booking-app/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// SeatAssignment is one committed (slot, seat) claim, used to warm the
// inventory guard at boot.
type SeatAssignment struct {
	Slot      string
	Seat      string
	BookingID uuid.UUID
}

type BookingRepository interface {
	// Create persists the booking row and its seat rows in one
	// transaction. Returns ErrSeatTaken if the (slot, seat) unique
	// index rejects any seat.
	Create(ctx context.Context, booking *entity.Booking) error

	// FindLatest returns the booking with the greatest created_at,
	// ties broken by insertion order. Returns nil when the store is
	// empty.
	FindLatest(ctx context.Context) (*entity.Booking, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// FindSeatAssignments lists every committed (slot, seat) pair.
	FindSeatAssignments(ctx context.Context) ([]SeatAssignment, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO bookings (id, movie, slot, created_at)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := tx.Exec(ctx, query,
		booking.ID,
		booking.Movie,
		booking.Slot,
		booking.CreatedAt,
	); err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("slot", booking.Slot),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	seatQuery := `
		INSERT INTO booking_seats (booking_id, slot, seat)
		VALUES ($1, $2, $3)
	`

	for _, seat := range booking.Seats {
		if _, err := tx.Exec(ctx, seatQuery, booking.ID, booking.Slot, seat); err != nil {
			if isUniqueViolation(err) {
				r.log.Warn("Seat index rejected booking seat",
					zap.String("slot", booking.Slot),
					zap.String("seat", seat),
				)
				return fmt.Errorf("claim seat %s for slot %s: %w", seat, booking.Slot, ErrSeatTaken)
			}
			r.log.Error("Failed to create booking seat",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
				zap.String("seat", seat),
			)
			return fmt.Errorf("create booking seat %s: %w", seat, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking transaction",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("commit booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindLatest(ctx context.Context) (*entity.Booking, error) {
	query := `
		SELECT id, movie, slot, created_at
		FROM bookings
		ORDER BY created_at DESC, seq DESC
		LIMIT 1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query).Scan(
		&booking.ID,
		&booking.Movie,
		&booking.Slot,
		&booking.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find latest booking", zap.Error(err))
		return nil, fmt.Errorf("find latest booking: %w", err)
	}

	seats, err := r.findSeats(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	booking.Seats = seats

	return &booking, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, movie, slot, created_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.Movie,
		&booking.Slot,
		&booking.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	seats, err := r.findSeats(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	booking.Seats = seats

	return &booking, nil
}

func (r *bookingRepository) FindSeatAssignments(ctx context.Context) ([]SeatAssignment, error) {
	query := `
		SELECT slot, seat, booking_id
		FROM booking_seats
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find seat assignments", zap.Error(err))
		return nil, fmt.Errorf("find seat assignments: %w", err)
	}
	defer rows.Close()

	var assignments []SeatAssignment
	for rows.Next() {
		var a SeatAssignment
		if err := rows.Scan(&a.Slot, &a.Seat, &a.BookingID); err != nil {
			r.log.Error("Failed to scan seat assignment row", zap.Error(err))
			return nil, fmt.Errorf("scan seat assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

func (r *bookingRepository) findSeats(ctx context.Context, bookingID uuid.UUID) ([]string, error) {
	query := `
		SELECT seat
		FROM booking_seats
		WHERE booking_id = $1
		ORDER BY seat
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find booking seats",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find seats for booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var seats []string
	for rows.Next() {
		var seat string
		if err := rows.Scan(&seat); err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, seat)
	}

	return seats, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
