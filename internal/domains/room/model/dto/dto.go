package dto

import (
	"strings"

	"medistay/internal/domains/room/model"
	"medistay/shared"
	gDto "medistay/shared/dto"
	gModel "medistay/shared/model"
	"medistay/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	PropertyID    string   `json:"property_id"     validate:"required,uuid4"`
	Name          string   `json:"name"            validate:"required,max=200"`
	Description   string   `json:"description"     validate:"omitempty,max=5000"`
	PricePerNight string   `json:"price_per_night" validate:"omitempty,amount,max=20"`
	CleaningFee   string   `json:"cleaning_fee"    validate:"omitempty,amount,max=20"`
	MaxGuests     int      `json:"max_guests"      validate:"omitempty,min=1,max=20"`
	ExtraTags     []string `json:"extra_tags"      validate:"omitempty,dive,max=100"`
	ServiceTags   []string `json:"service_tags"    validate:"omitempty,dive,max=100"`
	Photos        []string `json:"photos"          validate:"omitempty,dive,max=100"`
	Active        *bool    `json:"active"          validate:"omitempty"`
}

// ToModel shapes the request into the canonical record. Price fields are
// trimmed and blank values become "0" before any SQL sees them.
func (c *CreateRoomRequest) ToModel(user string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	maxGuests := c.MaxGuests
	if maxGuests == 0 {
		maxGuests = 1
	}

	return model.Room{
		ID:            uuid.NewString(),
		PropertyID:    c.PropertyID,
		Name:          c.Name,
		Description:   c.Description,
		PricePerNight: shared.NormalizeAmount(c.PricePerNight),
		CleaningFee:   shared.NormalizeAmount(c.CleaningFee),
		MaxGuests:     maxGuests,
		Active:        active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// BuildExtraTagRows turns raw amenity tag ids into join rows, dropping blanks.
func BuildExtraTagRows(roomID string, tagIDs []string) []model.RoomExtraTag {
	rows := []model.RoomExtraTag{}

	for _, tagID := range tagIDs {
		trimmed := strings.TrimSpace(tagID)
		if trimmed == "" {
			continue
		}

		rows = append(rows, model.RoomExtraTag{RoomID: roomID, TagID: trimmed})
	}

	return rows
}

// BuildServiceTagRows turns raw service tag ids into join rows, dropping blanks.
func BuildServiceTagRows(roomID string, tagIDs []string) []model.RoomServiceTag {
	rows := []model.RoomServiceTag{}

	for _, tagID := range tagIDs {
		trimmed := strings.TrimSpace(tagID)
		if trimmed == "" {
			continue
		}

		rows = append(rows, model.RoomServiceTag{RoomID: roomID, TagID: trimmed})
	}

	return rows
}

// BuildPhotoRows turns uploaded file ids into ordered join rows, dropping blanks.
func BuildPhotoRows(roomID string, fileIDs []string) []model.RoomPhoto {
	rows := []model.RoomPhoto{}

	for _, fileID := range fileIDs {
		trimmed := strings.TrimSpace(fileID)
		if trimmed == "" {
			continue
		}

		rows = append(rows, model.RoomPhoto{
			RoomID: roomID,
			FileID: trimmed,
			Sort:   len(rows),
		})
	}

	return rows
}

type UpdateRoomRequest struct {
	Name          string `db:"name"            json:"name"            validate:"omitempty,max=200"`
	Description   string `db:"description"     json:"description"     validate:"omitempty,max=5000"`
	PricePerNight string `db:"price_per_night" json:"price_per_night" validate:"omitempty,amount,max=20"`
	CleaningFee   string `db:"cleaning_fee"    json:"cleaning_fee"    validate:"omitempty,amount,max=20"`
	MaxGuests     *int   `db:"max_guests"      json:"max_guests"      validate:"omitempty,min=1,max=20"`
	Active        *bool  `db:"active"          json:"active"          validate:"omitempty"`

	ExtraTags   []string `json:"extra_tags"   validate:"omitempty,dive,max=100"`
	ServiceTags []string `json:"service_tags" validate:"omitempty,dive,max=100"`
	Photos      []string `json:"photos"       validate:"omitempty,dive,max=100"`
}

type RoomResponse struct {
	ID            string   `json:"id"`
	PropertyID    string   `json:"property_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PricePerNight string   `json:"price_per_night"`
	CleaningFee   string   `json:"cleaning_fee"`
	MaxGuests     int      `json:"max_guests"`
	Active        bool     `json:"active"`
	ExtraTags     []string `json:"extra_tags"`
	ServiceTags   []string `json:"service_tags"`
	Photos        []string `json:"photos"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(mod model.Room) {
	r.ID = mod.ID
	r.PropertyID = mod.PropertyID
	r.Name = mod.Name
	r.Description = mod.Description
	r.PricePerNight = mod.PricePerNight
	r.CleaningFee = mod.CleaningFee
	r.MaxGuests = mod.MaxGuests
	r.Active = mod.Active
	r.ExtraTags = []string{}
	r.ServiceTags = []string{}
	r.Photos = []string{}
	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
