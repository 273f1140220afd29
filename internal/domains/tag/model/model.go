package model

import "medistay/shared/model"

const (
	TableName  = "tags"
	EntityName = "tag"

	FieldID                = "id"
	FieldLabel             = "label"
	FieldIcon              = "icon"
	FieldKind              = "kind"
	FieldAppliesToProperty = "applies_to_property"
	FieldAppliesToService  = "applies_to_service"
	FieldActive            = "active"
)

const (
	KindExtra   = "extra"
	KindService = "service"
)

// Sentinel catalog ids. SentinelAll and SentinelNone are mutually exclusive
// with every ordinary tag: see Selection.
const (
	SentinelAll  = "all"
	SentinelNone = "none"
)

type Tag struct {
	ID                string `db:"id"`
	Label             string `db:"label"`
	Icon              string `db:"icon"`
	Kind              string `db:"kind"`
	AppliesToProperty bool   `db:"applies_to_property"`
	AppliesToService  bool   `db:"applies_to_service"`
	Active            bool   `db:"active"`
	model.Metadata
}

func IsSentinel(id string) bool {
	return id == SentinelAll || id == SentinelNone
}
