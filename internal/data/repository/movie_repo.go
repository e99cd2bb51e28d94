package repository

import (
	"context"
	"fmt"

	"github.com/Shwetaank/movies-booking-app/internal/data/entity"
	"github.com/Shwetaank/movies-booking-app/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.Movie, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `id, title, genre, release_date, duration_in_minutes,
	       description, director, movie_cast, poster_url, featured,
	       created_at, updated_at`

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, title, genre, release_date, duration_in_minutes,
		                    description, director, movie_cast, poster_url, featured,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Genre,
		movie.ReleaseDate,
		movie.DurationInMinutes,
		movie.Description,
		movie.Director,
		movie.Cast,
		movie.PosterURL,
		movie.Featured,
		movie.CreatedAt,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %s: %w", movie.Title, err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE id = $1
	`

	row := r.db.QueryRow(ctx, query, id)
	movie, err := scanMovie(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id.String(), err)
	}

	return movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		ORDER BY release_date DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find movies",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, movie)
	}

	return movies, nil
}

func (r *movieRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM movies`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("count movies: %w", err)
	}

	return count, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, genre = $3, release_date = $4, duration_in_minutes = $5,
		    description = $6, director = $7, movie_cast = $8, poster_url = $9,
		    featured = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Genre,
		movie.ReleaseDate,
		movie.DurationInMinutes,
		movie.Description,
		movie.Director,
		movie.Cast,
		movie.PosterURL,
		movie.Featured,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("update movie %s: %w", movie.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s not found", movie.ID.String())
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("delete movie %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s not found", id.String())
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id.String()))
	return nil
}

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&movie.ReleaseDate,
		&movie.DurationInMinutes,
		&movie.Description,
		&movie.Director,
		&movie.Cast,
		&movie.PosterURL,
		&movie.Featured,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}
