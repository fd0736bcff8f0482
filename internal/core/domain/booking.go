package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Booking struct {
	ID            uuid.UUID       `json:"id"`
	SlotID        uuid.UUID       `json:"slotId"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	PromoCode     *string         `json:"promoCode"`
	FinalPrice    decimal.Decimal `json:"finalPrice"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// BookingCreatedEvent is published once a booking has been committed.
type BookingCreatedEvent struct {
	BookingID    uuid.UUID       `json:"bookingId"`
	SlotID       uuid.UUID       `json:"slotId"`
	ExperienceID uuid.UUID       `json:"experienceId"`
	FinalPrice   decimal.Decimal `json:"finalPrice"`
	PromoCode    *string         `json:"promoCode,omitempty"`
	CreatedAt    int64           `json:"createdAt"`
}
