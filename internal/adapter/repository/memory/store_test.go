package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/experience_booking/internal/core/domain"
)

func seedCatalog(t *testing.T, s *Store) (safari, scuba domain.Experience) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	safari = domain.Experience{ID: uuid.New(), Title: "Desert Safari Ride", Location: "Rajasthan, India", Price: decimal.NewFromInt(150), CreatedAt: base}
	scuba = domain.Experience{ID: uuid.New(), Title: "Scuba Diving Experience", Location: "Goa, India", Price: decimal.NewFromInt(250), CreatedAt: base.Add(time.Hour)}

	require.NoError(t, s.SeedExperience(ctx, &safari, nil))
	require.NoError(t, s.SeedExperience(ctx, &scuba, nil))

	return safari, scuba
}

func TestStore_List_Search(t *testing.T) {
	s := NewStore()
	safari, scuba := seedCatalog(t, s)
	ctx := context.Background()

	got, err := s.List(ctx, "SAFARI")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, safari.ID, got[0].ID)

	got, err = s.List(ctx, "india")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, scuba.ID, got[0].ID, "newest first")
	assert.Equal(t, safari.ID, got[1].ID)

	again, err := s.List(ctx, "india")
	require.NoError(t, err)
	assert.Equal(t, got, again)

	got, err = s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestStore_GetWithAvailableSlots(t *testing.T) {
	s := NewStore()
	safari, _ := seedCatalog(t, s)
	ctx := context.Background()
	start := time.Date(2025, 12, 5, 16, 0, 0, 0, time.UTC)

	late := domain.Slot{ID: uuid.New(), StartTime: start.Add(2 * time.Hour), EndTime: start.Add(4 * time.Hour), IsAvailable: true, Version: 1}
	early := domain.Slot{ID: uuid.New(), StartTime: start, EndTime: start.Add(2 * time.Hour), IsAvailable: true, Version: 1}
	taken := domain.Slot{ID: uuid.New(), StartTime: start.Add(-time.Hour), EndTime: start.Add(time.Hour), IsAvailable: false, Version: 2}
	require.NoError(t, s.SeedExperience(ctx, &safari, []domain.Slot{late, early, taken}))

	got, err := s.GetWithAvailableSlots(ctx, safari.ID)
	require.NoError(t, err)
	require.Len(t, got.Slots, 2)
	assert.Equal(t, early.ID, got.Slots[0].ID)
	assert.Equal(t, late.ID, got.Slots[1].ID)
	for _, slot := range got.Slots {
		assert.True(t, slot.IsAvailable)
		assert.Equal(t, safari.ID, slot.ExperienceID)
	}

	_, err = s.GetWithAvailableSlots(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ReserveSlot(t *testing.T) {
	s := NewStore()
	safari, _ := seedCatalog(t, s)
	ctx := context.Background()
	start := time.Date(2025, 12, 5, 16, 0, 0, 0, time.UTC)
	slot := domain.Slot{ID: uuid.New(), StartTime: start, EndTime: start.Add(2 * time.Hour), IsAvailable: true, Version: 1}
	require.NoError(t, s.SeedExperience(ctx, &safari, []domain.Slot{slot}))

	first := &domain.Booking{ID: uuid.New(), SlotID: slot.ID, CustomerName: "Ravi", CustomerEmail: "ravi@example.com"}
	reserved, err := s.ReserveSlot(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, safari.ID, reserved.ExperienceID)
	assert.False(t, reserved.IsAvailable)

	second := &domain.Booking{ID: uuid.New(), SlotID: slot.ID, CustomerName: "Meera", CustomerEmail: "meera@example.com"}
	_, err = s.ReserveSlot(ctx, second)
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)

	bookings := s.BookingsForSlot(slot.ID)
	require.Len(t, bookings, 1)
	assert.Equal(t, first.ID, bookings[0].ID)

	_, err = s.ReserveSlot(ctx, &domain.Booking{ID: uuid.New(), SlotID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestStore_GetActiveByCode(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.SeedPromoCodes(ctx, []domain.PromoCode{
		{ID: uuid.New(), Code: "FLAT100", Discount: decimal.NewFromInt(100), IsActive: true},
		{ID: uuid.New(), Code: "OLD", Discount: decimal.NewFromInt(5), IsActive: false},
	}))

	promo, err := s.GetActiveByCode(ctx, "FLAT100")
	require.NoError(t, err)
	assert.Equal(t, "FLAT100", promo.Code)

	_, err = s.GetActiveByCode(ctx, "OLD")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.GetActiveByCode(ctx, "NOPE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
