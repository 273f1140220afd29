package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"medistay/infras/otel"
	"medistay/infras/postgres"
	"medistay/internal/domains/room/model"
	"medistay/shared/constant"
	gDto "medistay/shared/dto"
	"medistay/shared/logger"
	gRepo "medistay/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	ReplaceExtraTags(ctx context.Context, roomID string, rows []model.RoomExtraTag) error
	ReplaceServiceTags(ctx context.Context, roomID string, rows []model.RoomServiceTag) error
	ReplacePhotos(ctx context.Context, roomID string, rows []model.RoomPhoto) error
	GetExtraTagIDs(ctx context.Context, roomID string) ([]string, error)
	GetServiceTagIDs(ctx context.Context, roomID string) ([]string, error)
	GetPhotoFileIDs(ctx context.Context, roomID string) ([]string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	extraTagRepo   gRepo.Repository[model.RoomExtraTag]
	serviceTagRepo gRepo.Repository[model.RoomServiceTag]
	photoRepo      gRepo.Repository[model.RoomPhoto]
	db             *postgres.Connection
	otel           otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository:     gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		extraTagRepo:   gRepo.NewRepository[model.RoomExtraTag](model.EntityName+"_extra_tag", model.ExtraTagTableName, model.FieldRoomID, db, otel),
		serviceTagRepo: gRepo.NewRepository[model.RoomServiceTag](model.EntityName+"_service_tag", model.ServiceTagTableName, model.FieldRoomID, db, otel),
		photoRepo:      gRepo.NewRepository[model.RoomPhoto](model.EntityName+"_photo", model.PhotoTableName, model.FieldRoomID, db, otel),
		db:             db,
		otel:           otel,
	}
}

func (repo *repositoryImpl) ReplaceExtraTags(ctx context.Context, roomID string, rows []model.RoomExtraTag) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ReplaceExtraTags")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (room extra tags): %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err = repo.extraTagRepo.DeleteTx(ctx, tx, filterByRoomID(roomID, model.ExtraTagTableName)); err != nil {
		return err
	}

	if len(rows) > 0 {
		if err = repo.extraTagRepo.InsertBulkTx(ctx, tx, rows); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (room extra tags): %w", err)
	}

	return nil
}

func (repo *repositoryImpl) ReplaceServiceTags(ctx context.Context, roomID string, rows []model.RoomServiceTag) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ReplaceServiceTags")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (room service tags): %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err = repo.serviceTagRepo.DeleteTx(ctx, tx, filterByRoomID(roomID, model.ServiceTagTableName)); err != nil {
		return err
	}

	if len(rows) > 0 {
		if err = repo.serviceTagRepo.InsertBulkTx(ctx, tx, rows); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (room service tags): %w", err)
	}

	return nil
}

func (repo *repositoryImpl) ReplacePhotos(ctx context.Context, roomID string, rows []model.RoomPhoto) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ReplacePhotos")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (room photos): %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err = repo.photoRepo.DeleteTx(ctx, tx, filterByRoomID(roomID, model.PhotoTableName)); err != nil {
		return err
	}

	if len(rows) > 0 {
		if err = repo.photoRepo.InsertBulkTx(ctx, tx, rows); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (room photos): %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetExtraTagIDs(ctx context.Context, roomID string) ([]string, error) {
	return repo.selectIDs(ctx, "GetExtraTagIDs", fmt.Sprintf("SELECT tag_id FROM %s WHERE room_id = $1", model.ExtraTagTableName), roomID)
}

func (repo *repositoryImpl) GetServiceTagIDs(ctx context.Context, roomID string) ([]string, error) {
	return repo.selectIDs(ctx, "GetServiceTagIDs", fmt.Sprintf("SELECT tag_id FROM %s WHERE room_id = $1", model.ServiceTagTableName), roomID)
}

func (repo *repositoryImpl) GetPhotoFileIDs(ctx context.Context, roomID string) ([]string, error) {
	return repo.selectIDs(ctx, "GetPhotoFileIDs", fmt.Sprintf("SELECT file_id FROM %s WHERE room_id = $1 ORDER BY sort", model.PhotoTableName), roomID)
}

func (repo *repositoryImpl) selectIDs(ctx context.Context, name, query, roomID string) (ids []string, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room."+name)
	defer scope.End()
	defer scope.TraceIfError(err)

	ids = []string{}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &ids, query, roomID); err != nil {
		logger.ErrorWithStack(err)

		return ids, fmt.Errorf("failed to get room relations: %w", err)
	}

	return ids, nil
}

func filterByRoomID(roomID, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
