package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Display renders an amount in minor units as a decimal string, 4000 -> "40.00".
func Display(amount int64) string {
	return decimal.New(amount, -2).StringFixed(2)
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}
