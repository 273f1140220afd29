package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"medistay/internal/domains/property/model/dto"
)

func TestBuildTagRows(t *testing.T) {
	rows := dto.BuildTagRows("prop-1", []string{"", "tag1", "  ", "tag2"})

	assert.Len(t, rows, 2)
	assert.Equal(t, "tag1", rows[0].TagID)
	assert.Equal(t, "tag2", rows[1].TagID)

	for _, row := range rows {
		assert.Equal(t, "prop-1", row.PropertyID)
	}
}

func TestBuildPhotoRows(t *testing.T) {
	rows := dto.BuildPhotoRows("prop-1", []string{"file-a", "", "file-b"})

	assert.Len(t, rows, 2)
	assert.Equal(t, 0, rows[0].Sort)
	assert.Equal(t, 1, rows[1].Sort)
	assert.Equal(t, "file-a", rows[0].FileID)
	assert.Equal(t, "file-b", rows[1].FileID)
}

func TestCreatePropertyRequestToModel(t *testing.T) {
	active := false
	req := dto.CreatePropertyRequest{
		Name:    "Casa de Recuperación",
		City:    "Lima",
		Country: "Peru",
		Active:  &active,
	}

	mod := req.ToModel("owner-1")

	assert.NotEmpty(t, mod.ID)
	assert.Equal(t, "owner-1", mod.OwnerID)
	assert.Equal(t, "owner-1", mod.CreatedBy)
	assert.False(t, mod.Active)
}
