package model

import "medistay/shared/model"

const (
	TableName  = "files"
	EntityName = "file"

	FieldID               = "id"
	FieldFilenameDownload = "filename_download"
	FieldURL              = "url"
)

// File is a stored object reference. The binary lives in object storage; only
// the public URL and the original filename are persisted.
type File struct {
	ID               string `db:"id"`
	FilenameDownload string `db:"filename_download"`
	URL              string `db:"url"`
	model.Metadata
}
