package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"medistay/config"
	"medistay/infras/otel/mocks"
	roomMocks "medistay/internal/domains/room/mocks"
	"medistay/internal/domains/room/model"
	"medistay/internal/domains/room/model/dto"
	"medistay/internal/domains/room/service"
	cacheMocks "medistay/shared/cache/mocks"
	"medistay/shared/constant"
	"medistay/shared/failure"
)

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	t.Run("missing credential fails before any repository call", func(t *testing.T) {
		_, err := svc.Create(context.Background(), dto.CreateRoomRequest{
			PropertyID: "3d6a41a2-51a5-4a3e-9a63-3f8a3b2a76a1",
			Name:       "Suite",
		})

		assert.ErrorIs(t, err, failure.MissingCredential)
	})

	t.Run("successful creation with relations", func(t *testing.T) {
		var inserted model.Room

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod model.Room) error {
				inserted = mod

				return nil
			})

		mockRepo.EXPECT().
			ReplaceExtraTags(gomock.Any(), gomock.Any(), gomock.Len(1)).
			Return(nil)

		mockRepo.EXPECT().
			ReplacePhotos(gomock.Any(), gomock.Any(), gomock.Len(2)).
			Return(nil)

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "owner-1")
		id, err := svc.Create(ctx, dto.CreateRoomRequest{
			PropertyID:    "3d6a41a2-51a5-4a3e-9a63-3f8a3b2a76a1",
			Name:          "Suite",
			PricePerNight: "",
			ExtraTags:     []string{"", "tag1", "  "},
			Photos:        []string{"f1", "f2"},
		})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, inserted.ID, id)
		assert.Equal(t, "0", inserted.PricePerNight)
		assert.Equal(t, "0", inserted.CleaningFee)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "owner-1")
		_, err := svc.Create(ctx, dto.CreateRoomRequest{
			PropertyID: "3d6a41a2-51a5-4a3e-9a63-3f8a3b2a76a1",
			Name:       "Suite",
		})

		assert.Error(t, err)
	})
}

func TestRoomService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Room{}, nil)

	_, err := svc.Get(context.Background(), "missing")

	assert.Error(t, err)
}
