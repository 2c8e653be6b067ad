package model

import "cinetix/shared/model"

const (
	TableName  = "movies"
	EntityName = "movie"

	FieldID              = "id"
	FieldTitle           = "title"
	FieldDescription     = "description"
	FieldGenre           = "genre"
	FieldDurationMinutes = "duration_minutes"
	FieldPrice           = "price"
	FieldPosterURL       = "poster_url"
)

type Movie struct {
	ID              string  `db:"id"`
	Title           string  `db:"title"`
	Description     string  `db:"description"`
	Genre           string  `db:"genre"`
	DurationMinutes int     `db:"duration_minutes"`
	Price           float64 `db:"price"`
	PosterURL       string  `db:"poster_url"`
	model.Metadata
}
