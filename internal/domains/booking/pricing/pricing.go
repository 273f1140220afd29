// Package pricing computes booking totals. All arithmetic runs on parsed
// numbers; the string amounts from the room record are never concatenated.
package pricing

import (
	"fmt"
	"strconv"
	"time"

	"medistay/shared/failure"
)

const hoursPerDay = 24

// Nights returns the whole nights between check-in and check-out. A check-out
// on or before check-in is rejected outright, never folded into a negative
// total.
func Nights(checkIn, checkOut time.Time) (int, error) {
	if !checkOut.After(checkIn) {
		return 0, failure.InvalidDateRange // nolint:wrapcheck
	}

	nights := int(checkOut.Sub(checkIn).Hours() / hoursPerDay)
	if nights < 1 {
		nights = 1
	}

	return nights, nil
}

// Total computes nights × guests × pricePerNight + cleaningFee.
func Total(nights, guests int, pricePerNight, cleaningFee string) (float64, error) {
	price, err := parseAmount(pricePerNight)
	if err != nil {
		return 0, err
	}

	cleaning, err := parseAmount(cleaningFee)
	if err != nil {
		return 0, err
	}

	if guests < 1 {
		guests = 1
	}

	return float64(nights)*float64(guests)*price + cleaning, nil
}

// Quote resolves the full calculation from the raw dates.
func Quote(checkIn, checkOut time.Time, guests int, pricePerNight, cleaningFee string) (nights int, total float64, err error) {
	nights, err = Nights(checkIn, checkOut)
	if err != nil {
		return 0, 0, err
	}

	total, err = Total(nights, guests, pricePerNight, cleaningFee)
	if err != nil {
		return 0, 0, err
	}

	return nights, total, nil
}

// FormatTotal renders an amount with exactly two decimals.
func FormatTotal(total float64) string {
	return fmt.Sprintf("%.2f", total)
}

// TotalCents converts an amount to integer cents for the payment processor.
func TotalCents(total float64) int64 {
	return int64(total*100 + 0.5)
}

// AmountCents parses a stored amount string straight to cents.
func AmountCents(value string) (int64, error) {
	amount, err := parseAmount(value)
	if err != nil {
		return 0, err
	}

	return TotalCents(amount), nil
}

func parseAmount(value string) (float64, error) {
	if value == "" {
		return 0, nil
	}

	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("invalid amount: " + value) // nolint:wrapcheck
	}

	return amount, nil
}
