package dto

import (
	"strings"

	"medistay/internal/domains/property/model"
	"medistay/shared"
	gDto "medistay/shared/dto"
	gModel "medistay/shared/model"
	"medistay/shared/timezone"

	"github.com/google/uuid"
)

type CreatePropertyRequest struct {
	Name        string   `json:"name"        validate:"required,max=200"`
	Description string   `json:"description" validate:"omitempty,max=5000"`
	Address     string   `json:"address"     validate:"omitempty,max=500"`
	City        string   `json:"city"        validate:"required,max=100"`
	State       string   `json:"state"       validate:"omitempty,max=100"`
	Country     string   `json:"country"     validate:"required,max=100"`
	Tags        []string `json:"tags"        validate:"omitempty,dive,max=100"`
	Photos      []string `json:"photos"      validate:"omitempty,dive,max=100"`
	Active      *bool    `json:"active"      validate:"omitempty"`
}

func (c *CreatePropertyRequest) ToModel(user string) model.Property {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Property{
		ID:          uuid.NewString(),
		OwnerID:     user,
		Name:        c.Name,
		Description: c.Description,
		Address:     c.Address,
		City:        c.City,
		State:       c.State,
		Country:     c.Country,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// BuildTagRows turns raw tag ids into join rows, dropping blanks so a
// half-filled form never produces empty relations.
func BuildTagRows(propertyID string, tagIDs []string) []model.PropertyTag {
	rows := []model.PropertyTag{}

	for _, tagID := range tagIDs {
		trimmed := strings.TrimSpace(tagID)
		if trimmed == "" {
			continue
		}

		rows = append(rows, model.PropertyTag{
			PropertyID: propertyID,
			TagID:      trimmed,
		})
	}

	return rows
}

// BuildPhotoRows turns uploaded file ids into ordered join rows, dropping blanks.
func BuildPhotoRows(propertyID string, fileIDs []string) []model.PropertyPhoto {
	rows := []model.PropertyPhoto{}

	for _, fileID := range fileIDs {
		trimmed := strings.TrimSpace(fileID)
		if trimmed == "" {
			continue
		}

		rows = append(rows, model.PropertyPhoto{
			PropertyID: propertyID,
			FileID:     trimmed,
			Sort:       len(rows),
		})
	}

	return rows
}

type UpdatePropertyRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=200"`
	Description string `db:"description" json:"description" validate:"omitempty,max=5000"`
	Address     string `db:"address"     json:"address"     validate:"omitempty,max=500"`
	City        string `db:"city"        json:"city"        validate:"omitempty,max=100"`
	State       string `db:"state"       json:"state"       validate:"omitempty,max=100"`
	Country     string `db:"country"     json:"country"     validate:"omitempty,max=100"`
	Active      *bool  `db:"active"      json:"active"      validate:"omitempty"`

	Tags   []string `json:"tags"   validate:"omitempty,dive,max=100"`
	Photos []string `json:"photos" validate:"omitempty,dive,max=100"`
}

type PropertyResponse struct {
	ID          string   `json:"id"`
	OwnerID     string   `json:"owner_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Country     string   `json:"country"`
	Active      bool     `json:"active"`
	Tags        []string `json:"tags"`
	Photos      []string `json:"photos"`
	gDto.Metadata
}

func (r *PropertyResponse) FromModel(mod model.Property, tagIDs, fileIDs []string) {
	r.ID = mod.ID
	r.OwnerID = mod.OwnerID
	r.Name = mod.Name
	r.Description = mod.Description
	r.Address = mod.Address
	r.City = mod.City
	r.State = mod.State
	r.Country = mod.Country
	r.Active = mod.Active
	r.Tags = tagIDs
	r.Photos = fileIDs
	r.Metadata.FromModel(mod.Metadata)
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetPropertiesResponse) FromModels(models []model.Property, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Properties = make([]PropertyResponse, len(models))
	for i, mod := range models {
		r.Properties[i].FromModel(mod, []string{}, []string{})
	}
}
