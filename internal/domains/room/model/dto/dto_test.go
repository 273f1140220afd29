package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"medistay/internal/domains/room/model/dto"
	"medistay/shared/validator"
)

func TestCreateRoomRequest_PriceValidation(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		wantErr bool
	}{
		{"integer amount passes", "200", false},
		{"decimal amount passes", "120.50", false},
		{"blank passes and normalizes later", "", false},
		{"negative amount rejected", "-5", true},
		{"non-numeric amount rejected", "doscientos", true},
		{"exponent rejected", "1e3", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateRoomRequest{
				PropertyID:    "3d6a41a2-51a5-4a3e-9a63-3f8a3b2a76a1",
				Name:          "Suite",
				PricePerNight: tt.price,
				CleaningFee:   "35",
			}

			err := validator.ValidateStruct(&req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateRoomRequestToModel_PriceNormalization(t *testing.T) {
	tests := []struct {
		name         string
		price        string
		cleaning     string
		wantPrice    string
		wantCleaning string
	}{
		{"blank prices become zero", "", "", "0", "0"},
		{"whitespace prices become zero", "   ", " ", "0", "0"},
		{"values are trimmed", " 120.50 ", "35", "120.50", "35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateRoomRequest{
				PropertyID:    "3d6a41a2-51a5-4a3e-9a63-3f8a3b2a76a1",
				Name:          "Suite",
				PricePerNight: tt.price,
				CleaningFee:   tt.cleaning,
			}

			mod := req.ToModel("user-1")

			assert.Equal(t, tt.wantPrice, mod.PricePerNight)
			assert.Equal(t, tt.wantCleaning, mod.CleaningFee)
		})
	}
}

func TestBuildExtraTagRows_FiltersBlanks(t *testing.T) {
	rows := dto.BuildExtraTagRows("room-1", []string{"", "tag1", "  "})

	assert.Len(t, rows, 1)
	assert.Equal(t, "room-1", rows[0].RoomID)
	assert.Equal(t, "tag1", rows[0].TagID)
}

func TestBuildServiceTagRows_FiltersBlanks(t *testing.T) {
	rows := dto.BuildServiceTagRows("room-1", []string{"svc1", "", "svc2"})

	assert.Len(t, rows, 2)
	assert.Equal(t, "svc1", rows[0].TagID)
	assert.Equal(t, "svc2", rows[1].TagID)
}

func TestBuildPhotoRows_OrdersAndFilters(t *testing.T) {
	rows := dto.BuildPhotoRows("room-1", []string{"f1", " ", "f2", "f3"})

	assert.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, i, row.Sort)
	}
}

func TestCreateRoomRequestToModel_Defaults(t *testing.T) {
	req := dto.CreateRoomRequest{
		PropertyID: "3d6a41a2-51a5-4a3e-9a63-3f8a3b2a76a1",
		Name:       "Habitación doble",
	}

	mod := req.ToModel("user-1")

	assert.True(t, mod.Active)
	assert.Equal(t, 1, mod.MaxGuests)
	assert.Equal(t, req.PropertyID, mod.PropertyID)
}
