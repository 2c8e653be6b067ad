package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"cinetix/infras/otel"
	"cinetix/infras/postgres"
	"cinetix/internal/domains/movie/model"
	gDto "cinetix/shared/dto"
	gRepo "cinetix/shared/repository"
)

type Movie interface {
	Insert(ctx context.Context, model model.Movie) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Movie, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Movie, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Movie]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Movie {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Movie](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
