package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"medistay/config"
	otelMocks "medistay/infras/otel/mocks"
	s3Mocks "medistay/infras/s3/mocks"
	fileMocks "medistay/internal/domains/file/mocks"
	"medistay/internal/domains/file/model"
	"medistay/internal/domains/file/model/dto"
	"medistay/internal/domains/file/service"
	cacheMocks "medistay/shared/cache/mocks"
	"medistay/shared/constant"
	"medistay/shared/failure"
)

type fileFixture struct {
	repo  *fileMocks.MockFile
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.File
}

func newFileFixture(t *testing.T) *fileFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "medistay-media"

	f := &fileFixture{
		repo:  fileMocks.NewMockFile(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	f.svc = service.New(f.repo, cfg, f.cache, otelMocks.NewOtel(), f.s3)

	return f
}

func uploadRequest() dto.UploadFileRequest {
	return dto.UploadFileRequest{
		File: &multipart.FileHeader{Filename: "xray.png"},
	}
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
}

func TestFileService_Upload(t *testing.T) {
	t.Run("missing credential is rejected before any storage call", func(t *testing.T) {
		f := newFileFixture(t)

		_, err := f.svc.Upload(context.Background(), uploadRequest())

		assert.ErrorIs(t, err, failure.MissingCredential)
	})

	t.Run("successful upload registers the file", func(t *testing.T) {
		f := newFileFixture(t)

		f.s3.EXPECT().
			UploadFile(gomock.Any(), "medistay-media", model.EntityName, gomock.Any(), gomock.Any(), "xray.png").
			Return("https://cdn.example.com/medistay-media/file/xray.png", nil)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		f.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.Upload(userContext(), uploadRequest())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "xray.png", res.FilenameDownload)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "https://cdn.example.com/medistay-media/file/xray.png", res.URL)
	})

	t.Run("failed insert rolls the uploaded object back", func(t *testing.T) {
		f := newFileFixture(t)

		f.s3.EXPECT().
			UploadFile(gomock.Any(), "medistay-media", model.EntityName, gomock.Any(), gomock.Any(), "xray.png").
			Return("https://cdn.example.com/medistay-media/file/xray.png", nil)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		f.s3.EXPECT().
			GetObjectNameFromURL("medistay-media", "https://cdn.example.com/medistay-media/file/xray.png").
			Return("xray.png")

		f.s3.EXPECT().
			DeleteFile(gomock.Any(), "medistay-media", model.EntityName, "xray.png").
			Return(nil)

		_, err := f.svc.Upload(userContext(), uploadRequest())

		assert.Error(t, err)
	})

	t.Run("storage failure surfaces without touching the database", func(t *testing.T) {
		f := newFileFixture(t)

		f.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("bucket unavailable"))

		_, err := f.svc.Upload(userContext(), uploadRequest())

		assert.Error(t, err)
	})
}

func TestFileService_Delete(t *testing.T) {
	stored := model.File{
		ID:               "file-1",
		FilenameDownload: "xray.png",
		URL:              "https://cdn.example.com/medistay-media/file/xray.png",
	}

	t.Run("deletes the row and cleans the object up", func(t *testing.T) {
		f := newFileFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stored, nil)

		f.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		f.s3.EXPECT().
			GetObjectNameFromURL(gomock.Any(), stored.URL).
			Return("xray.png").
			AnyTimes()

		f.s3.EXPECT().
			DeleteFile(gomock.Any(), gomock.Any(), model.EntityName, "xray.png").
			Return(nil).
			AnyTimes()

		err := f.svc.Delete(context.Background(), "file-1")

		time.Sleep(20 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFileFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.File{}, nil)

		err := f.svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
	})
}

func TestFileService_Get(t *testing.T) {
	f := newFileFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.File{ID: "file-1", FilenameDownload: "xray.png"}, nil)

	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := f.svc.Get(context.Background(), "file-1")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, "file-1", res.ID)
}
