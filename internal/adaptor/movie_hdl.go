package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Shwetaank/movies-booking-app/internal/dto/request"
	"github.com/Shwetaank/movies-booking-app/internal/usecase"
	"github.com/Shwetaank/movies-booking-app/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movie (public)
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	}

	// Parse query parameters
	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	movies, err := h.service.GetMovies(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetMovieByID handles GET /movie/{id} (public)
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// CreateMovie handles POST /movie (admin token)
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, []utils.ValidationError{
			{Field: "body", Message: "Invalid request body"},
		})
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(&req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, validationErrors)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	utils.ResponseJSON(w, http.StatusCreated, movie)
}

// UpdateMovie handles PATCH /movie/{id} (admin token)
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	var req request.MovieUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, []utils.ValidationError{
			{Field: "body", Message: "Invalid request body"},
		})
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(&req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, validationErrors)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), movieID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// DeleteMovie handles DELETE /movie/{id} (admin token)
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	if err := h.service.DeleteMovie(r.Context(), movieID); err != nil {
		h.handleServiceError(w, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, map[string]string{"message": "Movie deleted successfully"})
}

// handleServiceError maps movie service errors to status codes
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"), strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, []utils.ValidationError{
			{Field: "request", Message: errMsg},
		})

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
