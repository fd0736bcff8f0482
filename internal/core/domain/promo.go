package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PromoCode struct {
	ID        uuid.UUID       `json:"id"`
	Code      string          `json:"code"`
	Discount  decimal.Decimal `json:"discount"`
	IsPercent bool            `json:"isPercent"`
	IsActive  bool            `json:"isActive"`
}

// DiscountFor returns the amount to subtract from subtotal. Percent codes
// store the rate as a fraction, so 0.1 means ten percent.
func (p PromoCode) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	if p.IsPercent {
		return subtotal.Mul(p.Discount)
	}

	return p.Discount
}

// Total is subtotal plus taxes minus discount, floored at zero.
func Total(subtotal, taxes, discount decimal.Decimal) decimal.Decimal {
	total := subtotal.Add(taxes).Sub(discount)
	if total.IsNegative() {
		return decimal.Zero
	}

	return total
}

type PriceQuote struct {
	ExperienceID uuid.UUID       `json:"experienceId"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Taxes        decimal.Decimal `json:"taxes"`
	Discount     decimal.Decimal `json:"discount"`
	Total        decimal.Decimal `json:"total"`
	PromoCode    *string         `json:"promoCode"`
}
