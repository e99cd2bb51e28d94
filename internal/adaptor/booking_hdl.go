package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Shwetaank/movies-booking-app/internal/data/repository"
	"github.com/Shwetaank/movies-booking-app/internal/dto/request"
	"github.com/Shwetaank/movies-booking-app/internal/inventory"
	"github.com/Shwetaank/movies-booking-app/internal/usecase"
	"github.com/Shwetaank/movies-booking-app/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /booking
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, []utils.ValidationError{
			{Field: "body", Message: "Invalid request body"},
		})
		return
	}

	// Validate request before anything touches the guard or store
	req.Normalize()
	if validationErrors := utils.ValidateStruct(&req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, validationErrors)
		return
	}

	if _, err := h.service.CreateBooking(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking saved successfully")
}

// GetLastBooking handles GET /booking/last
func (h *BookingHandler) GetLastBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.GetLastBooking(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get last booking")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// handleServiceError maps booking outcomes to status codes. Conflicts
// and empty-store lookups are expected outcomes, not failures.
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var conflict *inventory.ConflictError

	switch {
	case errors.As(err, &conflict):
		utils.ResponseConflict(w, "Seats already booked", conflict.Seats)

	case errors.Is(err, repository.ErrSeatTaken):
		utils.ResponseConflict(w, "Seats already booked", nil)

	case errors.Is(err, usecase.ErrNoBooking):
		utils.ResponseNotFound(w, "No booking found")

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
