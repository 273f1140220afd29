package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"medistay/infras/otel"
	"medistay/infras/postgres"
	"medistay/internal/domains/file/model"
	gDto "medistay/shared/dto"
	gRepo "medistay/shared/repository"
)

type File interface {
	Insert(ctx context.Context, model model.File) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.File, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.File, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.File]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) File {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.File](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
