package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Experience struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ExperienceWithSlots is the detail view of an experience. Slots only ever
// holds available slots, ordered by start time.
type ExperienceWithSlots struct {
	Experience
	Slots []Slot `json:"slots"`
}
