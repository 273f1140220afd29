package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medistay/internal/domains/booking/pricing"
	"medistay/shared/failure"
)

func date(value string) time.Time {
	parsed, _ := time.Parse("2006-01-02", value)

	return parsed
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
		wantErr  error
	}{
		{"three nights", "2026-03-01", "2026-03-04", 3, nil},
		{"one night", "2026-03-01", "2026-03-02", 1, nil},
		{"same day rejected", "2026-03-01", "2026-03-01", 0, failure.InvalidDateRange},
		{"reversed range rejected", "2026-03-04", "2026-03-01", 0, failure.InvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nights, err := pricing.Nights(date(tt.checkIn), date(tt.checkOut))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, nights)
		})
	}
}

func TestQuote(t *testing.T) {
	// 3 nights × 2 guests × 100 + 50 cleaning = 650.00
	nights, total, err := pricing.Quote(date("2026-03-01"), date("2026-03-04"), 2, "100", "50")

	require.NoError(t, err)
	assert.Equal(t, 3, nights)
	assert.Equal(t, "650.00", pricing.FormatTotal(total))
	assert.Equal(t, int64(65000), pricing.TotalCents(total))
}

func TestTotal_BlankAmounts(t *testing.T) {
	total, err := pricing.Total(2, 1, "", "")

	require.NoError(t, err)
	assert.Equal(t, "0.00", pricing.FormatTotal(total))
}

func TestTotal_InvalidAmount(t *testing.T) {
	_, err := pricing.Total(2, 1, "abc", "0")

	assert.Error(t, err)
}

func TestFormatTotal(t *testing.T) {
	assert.Equal(t, "120.50", pricing.FormatTotal(120.5))
	assert.Equal(t, "0.00", pricing.FormatTotal(0))
}
