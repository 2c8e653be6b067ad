package dto

import (
	"mime/multipart"

	"cinetix/internal/domains/movie/model"
	"cinetix/shared"
	gDto "cinetix/shared/dto"
	gModel "cinetix/shared/model"
	"cinetix/shared/timezone"

	"github.com/google/uuid"
)

type CreateMovieRequest struct {
	Title           string  `json:"title"            validate:"required,notblank,max=200"`
	Description     string  `json:"description"      validate:"omitempty,max=2000"`
	Genre           string  `json:"genre"            validate:"required,notblank,max=100"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0"`
	Price           float64 `json:"price"            validate:"required,gt=0"`
}

func (c *CreateMovieRequest) ToModel(user string) model.Movie {
	return model.Movie{
		ID:              uuid.NewString(),
		Title:           c.Title,
		Description:     c.Description,
		Genre:           c.Genre,
		DurationMinutes: c.DurationMinutes,
		Price:           c.Price,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateMovieRequest struct {
	Title           string   `db:"title"            json:"title"            validate:"omitempty,notblank,max=200"`
	Description     string   `db:"description"      json:"description"      validate:"omitempty,max=2000"`
	Genre           string   `db:"genre"            json:"genre"            validate:"omitempty,notblank,max=100"`
	DurationMinutes *int     `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,gt=0"`
	Price           *float64 `db:"price"            json:"price"            validate:"omitempty,gt=0"`
}

type UpdatePosterRequest struct {
	PosterURL string `db:"poster_url" json:"poster_url" validate:"required"`
}

type UploadPosterRequest struct {
	Poster     *multipart.FileHeader `json:"poster" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	PosterFile multipart.File        `json:"-"`
}

type MovieResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Genre           string  `json:"genre"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	PosterURL       string  `json:"poster_url"`
	gDto.Metadata
}

func (r *MovieResponse) FromModel(model model.Movie) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Genre = model.Genre
	r.DurationMinutes = model.DurationMinutes
	r.Price = model.Price
	r.PosterURL = model.PosterURL
	r.Metadata.FromModel(model.Metadata)
}

type GetMoviesResponse struct {
	Movies    []MovieResponse `json:"movies"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetMoviesResponse) FromModels(models []model.Movie, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Movies = make([]MovieResponse, len(models))
	for i, mod := range models {
		r.Movies[i].FromModel(mod)
	}
}
