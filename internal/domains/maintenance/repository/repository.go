package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"drivio/infras/otel"
	"drivio/infras/postgres"
	"drivio/internal/domains/maintenance/model"
	gDto "drivio/shared/dto"
	gRepo "drivio/shared/repository"
)

type Maintenance interface {
	Insert(ctx context.Context, model model.Record) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Record, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Record, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Record]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Maintenance {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Record](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
