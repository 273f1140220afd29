package model

import "medistay/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldPropertyID    = "property_id"
	FieldName          = "name"
	FieldPricePerNight = "price_per_night"
	FieldCleaningFee   = "cleaning_fee"
	FieldMaxGuests     = "max_guests"
	FieldActive        = "active"
)

const (
	ExtraTagTableName   = "room_extra_tags"
	ServiceTagTableName = "room_service_tags"
	PhotoTableName      = "room_photos"

	FieldRoomID = "room_id"
)

// Room is the canonical record. Pricing is flat: a per-night rate plus a
// one-off cleaning fee, both stored as NUMERIC and carried as strings.
type Room struct {
	ID            string `db:"id"`
	PropertyID    string `db:"property_id"`
	Name          string `db:"name"`
	Description   string `db:"description"`
	PricePerNight string `db:"price_per_night"`
	CleaningFee   string `db:"cleaning_fee"`
	MaxGuests     int    `db:"max_guests"`
	Active        bool   `db:"active"`
	model.Metadata
}

// RoomExtraTag links a room to one amenity tag.
type RoomExtraTag struct {
	RoomID string `db:"room_id"`
	TagID  string `db:"tag_id"`
}

// RoomServiceTag links a room to one service tag.
type RoomServiceTag struct {
	RoomID string `db:"room_id"`
	TagID  string `db:"tag_id"`
}

// RoomPhoto links a room to one uploaded file, ordered by Sort.
type RoomPhoto struct {
	RoomID string `db:"room_id"`
	FileID string `db:"file_id"`
	Sort   int    `db:"sort"`
}
