package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/srgjo27/experience_booking/internal/core/domain"
)

// BookingRepository owns the reservation transaction. ReserveSlot must
// check availability, mark the slot booked and insert the booking as one
// isolated unit, returning domain.ErrSlotUnavailable when the slot is
// missing or already taken.
type BookingRepository interface {
	ReserveSlot(ctx context.Context, booking *domain.Booking) (*domain.Slot, error)
}

type ExperienceRepository interface {
	List(ctx context.Context, search string) ([]domain.Experience, error)
	GetWithAvailableSlots(ctx context.Context, experienceID uuid.UUID) (*domain.ExperienceWithSlots, error)
}

type PromoRepository interface {
	GetActiveByCode(ctx context.Context, code string) (*domain.PromoCode, error)
}

type CatalogSeeder interface {
	SeedExperience(ctx context.Context, experience *domain.Experience, slots []domain.Slot) error
	SeedPromoCodes(ctx context.Context, promos []domain.PromoCode) error
}

// ExperienceCache holds detail views. Every Invalidate moves the generation
// of the experience; Set is ignored when the generation it was given is no
// longer current, so a view loaded before a booking cannot be written back
// after it.
type ExperienceCache interface {
	Get(ctx context.Context, experienceID uuid.UUID) (*domain.ExperienceWithSlots, bool, error)
	Generation(ctx context.Context, experienceID uuid.UUID) (int64, error)
	Set(ctx context.Context, experience *domain.ExperienceWithSlots, generation int64) error
	Invalidate(ctx context.Context, experienceID uuid.UUID) error
}

type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}
