package service

import (
	"context"
	"fmt"

	"medistay/config"
	"medistay/infras/otel"
	"medistay/infras/s3"
	"medistay/internal/domains/file/model"
	"medistay/internal/domains/file/model/dto"
	"medistay/internal/domains/file/repository"
	"medistay/shared"
	"medistay/shared/cache"
	"medistay/shared/constant"
	gDto "medistay/shared/dto"
	"medistay/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFile    = "file:get"
	cacheGetAllFile = "file:gets"
	cacheCountFile  = "file:count"
)

type File interface {
	Upload(ctx context.Context, req dto.UploadFileRequest) (dto.FileResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFilesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.FileResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.File
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.File, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) File {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

// Upload stores the binary in object storage first and rolls the object back
// when the database insert fails, so no orphan rows point at missing objects.
func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadFileRequest) (res dto.FileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.MissingCredential // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.FileReader, req.File, req.File.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	file := dto.NewFile(url, req.File.Filename, user)

	if err = s.repo.Insert(ctx, file); err != nil {
		objectName := s.s3.GetObjectNameFromURL(bucketName, url)
		if deleteErr := s.s3.DeleteFile(ctx, bucketName, model.EntityName, objectName); deleteErr != nil {
			log.Error().Err(deleteErr).Str("objectName", objectName).Msg("failed to roll back uploaded object")
		}

		return res, failure.Translate(err) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllFile)
		shared.InvalidateCaches(c, s.cache, cacheCountFile)
	}()

	res.FromModel(file)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFilesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFile, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for files")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count files")

		return res, fmt.Errorf("failed to count files: %w", err)
	}

	files, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get files")

		return res, fmt.Errorf("failed to get files: %w", err)
	}

	res.FromModels(files, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save files to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountFile, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count files")

		return total, fmt.Errorf("failed to count files: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save file count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetFile, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for file")

		return res, nil
	}

	file, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get file")

		return res, fmt.Errorf("failed to get file: %w", err)
	}

	if file.ID == constant.Empty {
		return res, failure.NotFound("file not found") // nolint:wrapcheck
	}

	res.FromModel(file)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save file to cache")
		}
	}()

	return res, nil
}

// Delete removes the row first, then cleans the stored object up
// asynchronously. A failed object delete is logged, never surfaced.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	file, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get file for deletion")

		return fmt.Errorf("failed to get file: %w", err)
	}

	if file.ID == constant.Empty {
		return failure.NotFound("file not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete file")

		return fmt.Errorf("failed to delete file: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetFile, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete file cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllFile)
		shared.InvalidateCaches(c, s.cache, cacheCountFile)

		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, file.URL)
		if objectName == constant.Empty {
			log.Warn().Str("url", file.URL).Msg("failed to extract object name from URL")

			return
		}

		if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete file from S3")
		}
	}()

	return nil
}
