package model

import "medistay/shared/model"

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID      = "id"
	FieldName    = "name"
	FieldCity    = "city"
	FieldState   = "state"
	FieldCountry = "country"
	FieldOwnerID = "owner_id"
	FieldActive  = "active"
)

const (
	TagTableName   = "property_tags"
	PhotoTableName = "property_photos"

	FieldPropertyID = "property_id"
)

type Property struct {
	ID          string `db:"id"`
	OwnerID     string `db:"owner_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Address     string `db:"address"`
	City        string `db:"city"`
	State       string `db:"state"`
	Country     string `db:"country"`
	Active      bool   `db:"active"`
	model.Metadata
}

// PropertyTag links a property to one catalog tag.
type PropertyTag struct {
	PropertyID string `db:"property_id"`
	TagID      string `db:"tag_id"`
}

// PropertyPhoto links a property to one uploaded file, ordered by Sort.
type PropertyPhoto struct {
	PropertyID string `db:"property_id"`
	FileID     string `db:"file_id"`
	Sort       int    `db:"sort"`
}
