package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPromoCode_Redeemable(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	two := 2

	tests := []struct {
		name     string
		code     PromoCode
		expected bool
	}{
		{
			name:     "Active code without limits",
			code:     PromoCode{IsActive: true},
			expected: true,
		},
		{
			name:     "Inactive code",
			code:     PromoCode{IsActive: false},
			expected: false,
		},
		{
			name:     "Expired code",
			code:     PromoCode{IsActive: true, ExpiresAt: &past},
			expected: false,
		},
		{
			name:     "Expires exactly now",
			code:     PromoCode{IsActive: true, ExpiresAt: &now},
			expected: false,
		},
		{
			name:     "Not yet expired",
			code:     PromoCode{IsActive: true, ExpiresAt: &future},
			expected: true,
		},
		{
			name:     "Use cap exhausted",
			code:     PromoCode{IsActive: true, MaxUses: &two, CurrentUses: 2},
			expected: false,
		},
		{
			name:     "Use cap not reached",
			code:     PromoCode{IsActive: true, MaxUses: &two, CurrentUses: 1},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.code.Redeemable(now))
		})
	}
}

func TestInvoiceDueDate(t *testing.T) {
	issued := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC), InvoiceDueDate(issued))
}
