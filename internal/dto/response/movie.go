package response

import (
	"time"

	"github.com/Shwetaank/movies-booking-app/internal/data/entity"
)

type MovieResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Genre             []string  `json:"genre"`
	ReleaseDate       string    `json:"release_date"`
	DurationInMinutes int       `json:"duration_in_minutes"`
	Description       *string   `json:"description,omitempty"`
	Director          *string   `json:"director,omitempty"`
	Cast              []string  `json:"cast"`
	PosterURL         *string   `json:"poster_url,omitempty"`
	Featured          bool      `json:"featured"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:                movie.ID.String(),
		Title:             movie.Title,
		Genre:             movie.Genre,
		ReleaseDate:       movie.ReleaseDate.Format("2006-01-02"),
		DurationInMinutes: movie.DurationInMinutes,
		Description:       movie.Description,
		Director:          movie.Director,
		Cast:              movie.Cast,
		PosterURL:         movie.PosterURL,
		Featured:          movie.Featured,
		CreatedAt:         movie.CreatedAt,
		UpdatedAt:         movie.UpdatedAt,
	}
}
