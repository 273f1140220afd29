package dto

import (
	"mime/multipart"

	"medistay/internal/domains/file/model"
	"medistay/shared"
	gDto "medistay/shared/dto"
	gModel "medistay/shared/model"
	"medistay/shared/timezone"

	"github.com/google/uuid"
)

type UploadFileRequest struct {
	File       *multipart.FileHeader `json:"file" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	FileReader multipart.File        `json:"-"`
}

func NewFile(url, filename, user string) model.File {
	return model.File{
		ID:               uuid.NewString(),
		FilenameDownload: filename,
		URL:              url,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type FileResponse struct {
	ID               string `json:"id"`
	FilenameDownload string `json:"filename_download"`
	URL              string `json:"url"`
	gDto.Metadata
}

func (r *FileResponse) FromModel(mod model.File) {
	r.ID = mod.ID
	r.FilenameDownload = mod.FilenameDownload
	r.URL = mod.URL
	r.Metadata.FromModel(mod.Metadata)
}

type GetFilesResponse struct {
	Files     []FileResponse `json:"files"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetFilesResponse) FromModels(models []model.File, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Files = make([]FileResponse, len(models))
	for i, mod := range models {
		r.Files[i].FromModel(mod)
	}
}
