package dto

import (
	"time"

	"medistay/internal/domains/booking/model"
	"medistay/shared"
	"medistay/shared/constant"
	gDto "medistay/shared/dto"
	"medistay/shared/failure"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID   string `json:"room_id"   validate:"required,uuid4"`
	CheckIn  string `json:"check_in"  validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Guests   int    `json:"guests"    validate:"required,min=1,max=20"`
}

// ParseDates decodes the date-only strings; a malformed date is a bad request,
// an inverted range is the dedicated date-range failure.
func (c *CreateBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid check_in date") // nolint:wrapcheck
	}

	checkOut, err = time.Parse(constant.DateOnlyFormat, c.CheckOut)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid check_out date") // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.InvalidDateRange // nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

func NewBookingID() string {
	return uuid.NewString()
}

type BookingResponse struct {
	ID               string `json:"id"`
	RoomID           string `json:"room_id"`
	PatientID        string `json:"patient_id"`
	Status           string `json:"status"`
	CheckIn          string `json:"check_in"`
	CheckOut         string `json:"check_out"`
	Guests           int    `json:"guests"`
	PricePerNight    string `json:"price_per_night"`
	CleaningFee      string `json:"cleaning_fee"`
	Total            string `json:"total"`
	PaymentSessionID string `json:"payment_session_id,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.RoomID = mod.RoomID
	r.PatientID = mod.PatientID
	r.Status = mod.Status
	r.CheckIn = mod.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = mod.CheckOut.Format(constant.DateOnlyFormat)
	r.Guests = mod.Guests
	r.PricePerNight = mod.PricePerNight
	r.CleaningFee = mod.CleaningFee
	r.Total = mod.Total
	r.PaymentSessionID = mod.PaymentSessionID
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// CheckoutResponse carries the embedded-checkout credentials back to the
// client. The client secret is returned once and never persisted.
type CheckoutResponse struct {
	BookingID    string `json:"booking_id"`
	SessionID    string `json:"session_id"`
	ClientSecret string `json:"client_secret"`
}

// BookingEvent is the message published on the booking lifecycle topic.
type BookingEvent struct {
	Type      string    `json:"type"`
	BookingID string    `json:"booking_id"`
	RoomID    string    `json:"room_id"`
	PatientID string    `json:"patient_id"`
	Total     string    `json:"total"`
	At        time.Time `json:"at"`
}

const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
)
