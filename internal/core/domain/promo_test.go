package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/srgjo27/experience_booking/internal/core/domain"
)

func TestPromoCode_DiscountFor(t *testing.T) {
	tests := []struct {
		name      string
		promo     domain.PromoCode
		subtotal  decimal.Decimal
		taxes     decimal.Decimal
		wantDisc  decimal.Decimal
		wantTotal decimal.Decimal
	}{
		{
			name:      "flat",
			promo:     domain.PromoCode{Discount: decimal.NewFromInt(100)},
			subtotal:  decimal.NewFromInt(499),
			taxes:     decimal.NewFromInt(59),
			wantDisc:  decimal.NewFromInt(100),
			wantTotal: decimal.NewFromInt(458),
		},
		{
			name:      "percent",
			promo:     domain.PromoCode{Discount: decimal.RequireFromString("0.10"), IsPercent: true},
			subtotal:  decimal.NewFromInt(150),
			taxes:     decimal.NewFromInt(59),
			wantDisc:  decimal.NewFromInt(15),
			wantTotal: decimal.NewFromInt(194),
		},
		{
			name:      "floored at zero",
			promo:     domain.PromoCode{Discount: decimal.NewFromInt(1000)},
			subtotal:  decimal.NewFromInt(50),
			taxes:     decimal.Zero,
			wantDisc:  decimal.NewFromInt(1000),
			wantTotal: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			disc := tt.promo.DiscountFor(tt.subtotal)
			assert.True(t, tt.wantDisc.Equal(disc), "discount = %s", disc)

			total := domain.Total(tt.subtotal, tt.taxes, disc)
			assert.True(t, tt.wantTotal.Equal(total), "total = %s", total)
			assert.False(t, total.IsNegative())
		})
	}
}

func TestSlot_Reserve(t *testing.T) {
	slot := domain.Slot{IsAvailable: true, Version: 3}

	assert.True(t, slot.Reserve())
	assert.False(t, slot.IsAvailable)
	assert.Equal(t, 4, slot.Version)

	assert.False(t, slot.Reserve())
	assert.Equal(t, 4, slot.Version)
}
