package model

import (
	"time"

	"medistay/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldRoomID    = "room_id"
	FieldPatientID = "patient_id"
	FieldStatus    = "status"
	FieldCheckIn   = "check_in"
	FieldCheckOut  = "check_out"
	FieldSessionID = "payment_session_id"
)

// Status lifecycle: pending → confirmed → cancelled. A confirmed booking can
// still be cancelled; a cancelled one is terminal.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID               string    `db:"id"`
	RoomID           string    `db:"room_id"`
	PatientID        string    `db:"patient_id"`
	Status           string    `db:"status"`
	CheckIn          time.Time `db:"check_in"`
	CheckOut         time.Time `db:"check_out"`
	Guests           int       `db:"guests"`
	PricePerNight    string    `db:"price_per_night"`
	CleaningFee      string    `db:"cleaning_fee"`
	Total            string    `db:"total"`
	PaymentSessionID string    `db:"payment_session_id"`
	model.Metadata
}
