package repository

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=../mocks/store_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"medistay/config"
	"medistay/infras/otel"
	"medistay/internal/domains/wizard/model"
	"medistay/shared"
	"medistay/shared/cache"
	"medistay/shared/constant"
	"medistay/shared/failure"

	"github.com/rs/zerolog/log"
)

const draftKeyPrefix = "wizard"

// Store keeps wizard drafts in Redis under versioned keys, so drafts written
// against an older step schema expire out instead of being misread.
type Store interface {
	Save(ctx context.Context, draft model.Draft) error
	Get(ctx context.Context, id string) (model.Draft, error)
	Delete(ctx context.Context, id string) error
}

type storeImpl struct {
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func NewStore(cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Store {
	return &storeImpl{
		cache: cache,
		cfg:   cfg,
		otel:  otel,
	}
}

func draftKey(id string) string {
	return shared.BuildCacheKey(draftKeyPrefix, model.SchemaVersion, "draft", id)
}

func (s *storeImpl) Save(ctx context.Context, draft model.Draft) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".wizard.Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Save(ctx, draftKey(draft.ID), draft, s.cfg.Wizard.DraftTTLSeconds); err != nil {
		log.Error().Err(err).Str("draftID", draft.ID).Msg("failed to save wizard draft")

		return fmt.Errorf("failed to save wizard draft: %w", err)
	}

	return nil
}

func (s *storeImpl) Get(ctx context.Context, id string) (draft model.Draft, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".wizard.Get")
	defer scope.End()

	err = s.cache.Get(ctx, draftKey(id), &draft)
	if err != nil {
		if errors.Is(err, cache.Nil) {
			return draft, failure.NotFound("draft not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Str("draftID", id).Msg("failed to get wizard draft")

		return draft, fmt.Errorf("failed to get wizard draft: %w", err)
	}

	return draft, nil
}

func (s *storeImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".wizard.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Delete(ctx, draftKey(id)); err != nil {
		log.Error().Err(err).Str("draftID", id).Msg("failed to delete wizard draft")

		return fmt.Errorf("failed to delete wizard draft: %w", err)
	}

	return nil
}
