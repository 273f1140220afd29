package dto

import (
	"medistay/internal/domains/tag/model"
	"medistay/shared"
	gDto "medistay/shared/dto"
	gModel "medistay/shared/model"
	"medistay/shared/timezone"

	"github.com/google/uuid"
)

type CreateTagRequest struct {
	Label             string `json:"label"               validate:"required,max=100"`
	Icon              string `json:"icon"                validate:"omitempty,max=50"`
	Kind              string `json:"kind"                validate:"required,oneof=extra service"`
	AppliesToProperty bool   `json:"applies_to_property"`
	AppliesToService  bool   `json:"applies_to_service"`
	Active            *bool  `json:"active"              validate:"omitempty"`
}

func (c *CreateTagRequest) ToModel(user string) model.Tag {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Tag{
		ID:                uuid.NewString(),
		Label:             c.Label,
		Icon:              c.Icon,
		Kind:              c.Kind,
		AppliesToProperty: c.AppliesToProperty,
		AppliesToService:  c.AppliesToService,
		Active:            active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTagRequest struct {
	Label             string `db:"label"               json:"label"               validate:"omitempty,max=100"`
	Icon              string `db:"icon"                json:"icon"                validate:"omitempty,max=50"`
	AppliesToProperty *bool  `db:"applies_to_property" json:"applies_to_property" validate:"omitempty"`
	AppliesToService  *bool  `db:"applies_to_service"  json:"applies_to_service"  validate:"omitempty"`
	Active            *bool  `db:"active"              json:"active"              validate:"omitempty"`
}

type TagResponse struct {
	ID                string `json:"id"`
	Label             string `json:"label"`
	Icon              string `json:"icon"`
	Kind              string `json:"kind"`
	AppliesToProperty bool   `json:"applies_to_property"`
	AppliesToService  bool   `json:"applies_to_service"`
	Active            bool   `json:"active"`
	gDto.Metadata
}

func (r *TagResponse) FromModel(mod model.Tag) {
	r.ID = mod.ID
	r.Label = mod.Label
	r.Icon = model.ResolveIcon(mod.Icon)
	r.Kind = mod.Kind
	r.AppliesToProperty = mod.AppliesToProperty
	r.AppliesToService = mod.AppliesToService
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetTagsResponse struct {
	Tags      []TagResponse `json:"tags"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetTagsResponse) FromModels(models []model.Tag, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tags = make([]TagResponse, len(models))
	for i, mod := range models {
		r.Tags[i].FromModel(mod)
	}
}
