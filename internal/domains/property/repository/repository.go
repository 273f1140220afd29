package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"medistay/infras/otel"
	"medistay/infras/postgres"
	"medistay/internal/domains/property/model"
	"medistay/shared/constant"
	gDto "medistay/shared/dto"
	"medistay/shared/logger"
	gRepo "medistay/shared/repository"
)

type Property interface {
	Insert(ctx context.Context, model model.Property) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Property, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Property, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	ReplaceTags(ctx context.Context, propertyID string, rows []model.PropertyTag) error
	ReplacePhotos(ctx context.Context, propertyID string, rows []model.PropertyPhoto) error
	GetTagIDs(ctx context.Context, propertyID string) ([]string, error)
	GetPhotoFileIDs(ctx context.Context, propertyID string) ([]string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Property]
	tagRepo   gRepo.Repository[model.PropertyTag]
	photoRepo gRepo.Repository[model.PropertyPhoto]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Property {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Property](model.EntityName, model.TableName, model.FieldID, db, otel),
		tagRepo:    gRepo.NewRepository[model.PropertyTag](model.EntityName+"_tag", model.TagTableName, model.FieldPropertyID, db, otel),
		photoRepo:  gRepo.NewRepository[model.PropertyPhoto](model.EntityName+"_photo", model.PhotoTableName, model.FieldPropertyID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) ReplaceTags(ctx context.Context, propertyID string, rows []model.PropertyTag) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".property.ReplaceTags")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (property tags): %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	filter := filterByPropertyID(propertyID, model.TagTableName)

	if err = repo.tagRepo.DeleteTx(ctx, tx, filter); err != nil {
		return err
	}

	if len(rows) > 0 {
		if err = repo.tagRepo.InsertBulkTx(ctx, tx, rows); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (property tags): %w", err)
	}

	return nil
}

func (repo *repositoryImpl) ReplacePhotos(ctx context.Context, propertyID string, rows []model.PropertyPhoto) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".property.ReplacePhotos")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (property photos): %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	filter := filterByPropertyID(propertyID, model.PhotoTableName)

	if err = repo.photoRepo.DeleteTx(ctx, tx, filter); err != nil {
		return err
	}

	if len(rows) > 0 {
		if err = repo.photoRepo.InsertBulkTx(ctx, tx, rows); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (property photos): %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetTagIDs(ctx context.Context, propertyID string) (ids []string, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".property.GetTagIDs")
	defer scope.End()
	defer scope.TraceIfError(err)

	ids = []string{}

	query := fmt.Sprintf("SELECT tag_id FROM %s WHERE property_id = $1", model.TagTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &ids, query, propertyID); err != nil {
		logger.ErrorWithStack(err)

		return ids, fmt.Errorf("failed to get property tags: %w", err)
	}

	return ids, nil
}

func (repo *repositoryImpl) GetPhotoFileIDs(ctx context.Context, propertyID string) (ids []string, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".property.GetPhotoFileIDs")
	defer scope.End()
	defer scope.TraceIfError(err)

	ids = []string{}

	query := fmt.Sprintf("SELECT file_id FROM %s WHERE property_id = $1 ORDER BY sort", model.PhotoTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &ids, query, propertyID); err != nil {
		logger.ErrorWithStack(err)

		return ids, fmt.Errorf("failed to get property photos: %w", err)
	}

	return ids, nil
}

func filterByPropertyID(propertyID, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPropertyID,
				Value:    propertyID,
				Operator: gDto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
