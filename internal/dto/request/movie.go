package request

type MovieRequest struct {
	Title             string   `json:"title" validate:"required,min=1,max=200"`
	Genre             []string `json:"genre,omitempty" validate:"omitempty,unique,dive,required"`
	ReleaseDate       string   `json:"release_date" validate:"required,datetime=2006-01-02"`
	DurationInMinutes int      `json:"duration_in_minutes" validate:"required,min=1,max=999"`
	Description       *string  `json:"description,omitempty"`
	Director          *string  `json:"director,omitempty"`
	Cast              []string `json:"cast,omitempty" validate:"omitempty,dive,required"`
	PosterURL         *string  `json:"poster_url,omitempty"`
	Featured          bool     `json:"featured"`
}

type MovieUpdateRequest struct {
	Title             *string  `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Genre             []string `json:"genre,omitempty" validate:"omitempty,unique,dive,required"`
	ReleaseDate       *string  `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DurationInMinutes *int     `json:"duration_in_minutes,omitempty" validate:"omitempty,min=1,max=999"`
	Description       *string  `json:"description,omitempty"`
	Director          *string  `json:"director,omitempty"`
	Cast              []string `json:"cast,omitempty" validate:"omitempty,dive,required"`
	PosterURL         *string  `json:"poster_url,omitempty"`
	Featured          *bool    `json:"featured,omitempty"`
}
