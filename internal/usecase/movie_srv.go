package usecase

import (
	"context"
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

type MovieService interface {
	// Public endpoints
	GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)

	// Admin endpoints (admin-token gated)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	movies, err := s.repo.Movie.FindAll(ctx, offset, limit)
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	total, err := s.repo.Movie.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count movies", zap.Error(err))
		return nil, fmt.Errorf("count movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	return response.NewPaginatedResponse(movieResponses, req.Page, req.PerPage, total), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s not found", movieID)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	releaseDate, err := time.Parse("2006-01-02", req.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("invalid release date %s: %w", req.ReleaseDate, err)
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:             req.Title,
		Genre:             req.Genre,
		ReleaseDate:       releaseDate,
		DurationInMinutes: req.DurationInMinutes,
		Description:       req.Description,
		Director:          req.Director,
		Cast:              req.Cast,
		PosterURL:         req.PosterURL,
		Featured:          req.Featured,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s not found", movieID)
	}

	// Apply partial update
	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Genre != nil {
		movie.Genre = req.Genre
	}
	if req.ReleaseDate != nil {
		releaseDate, err := time.Parse("2006-01-02", *req.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("invalid release date %s: %w", *req.ReleaseDate, err)
		}
		movie.ReleaseDate = releaseDate
	}
	if req.DurationInMinutes != nil {
		movie.DurationInMinutes = *req.DurationInMinutes
	}
	if req.Description != nil {
		movie.Description = req.Description
	}
	if req.Director != nil {
		movie.Director = req.Director
	}
	if req.Cast != nil {
		movie.Cast = req.Cast
	}
	if req.PosterURL != nil {
		movie.PosterURL = req.PosterURL
	}
	if req.Featured != nil {
		movie.Featured = *req.Featured
	}
	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return fmt.Errorf("delete movie %s: %w", movieID, err)
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return nil
}
