package entity

import (
	"time"
)

type Movie struct {
	Base
	Title             string    `db:"title"`
	Genre             []string  `db:"genre"`
	ReleaseDate       time.Time `db:"release_date"`
	DurationInMinutes int       `db:"duration_in_minutes"`
	Description       *string   `db:"description"`
	Director          *string   `db:"director"`
	Cast              []string  `db:"movie_cast"`
	PosterURL         *string   `db:"poster_url"`
	Featured          bool      `db:"featured"`
}
