package seed

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/experience_booking/internal/adapter/repository/memory"
)

var base = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

func TestBuild(t *testing.T) {
	c, err := Build(base)
	require.NoError(t, err)

	require.Len(t, c.Experiences, 9)
	assert.Len(t, c.PromoCodes, 2)

	sky := c.Experiences[0]
	assert.Equal(t, "Skydiving Adventure", sky.Title)
	// 3 dates x (5 + 3 + 4) units
	assert.Len(t, c.Slots[sky.ID], 36)

	first := c.Slots[sky.ID][0]
	assert.Equal(t, time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC), first.StartTime)
	assert.Equal(t, 2*time.Hour, first.EndTime.Sub(first.StartTime))

	seen := make(map[string]bool)
	for _, slots := range c.Slots {
		for _, s := range slots {
			assert.False(t, seen[s.ID.String()], "duplicate slot id")
			seen[s.ID.String()] = true
		}
	}

	again, err := Build(base)
	require.NoError(t, err)
	assert.Equal(t, c.Experiences[3].ID, again.Experiences[3].ID)
}

func TestSlotStart(t *testing.T) {
	got, err := slotStart("2025-12-05", "12:00 PM")
	require.NoError(t, err)
	assert.Equal(t, 12, got.Hour())

	got, err = slotStart("2025-12-05", "07:30 AM")
	require.NoError(t, err)
	assert.Equal(t, 7, got.Hour())
	assert.Equal(t, 30, got.Minute())

	_, err = slotStart("2025-12-05", "25:00")
	assert.Error(t, err)
}

func TestApply_SearchScenario(t *testing.T) {
	store := memory.NewStore()
	log := zerolog.Nop()
	ctx := context.Background()

	c, err := Build(base)
	require.NoError(t, err)
	require.NoError(t, Apply(ctx, store, c, &log))
	require.NoError(t, Apply(ctx, store, c, &log))

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 9)
	assert.Equal(t, "Jungle Safari Experience", all[0].Title)

	safari, err := store.List(ctx, "desert safari")
	require.NoError(t, err)
	require.Len(t, safari, 1)
	assert.Equal(t, "Desert Safari Ride", safari[0].Title)

	promo, err := store.GetActiveByCode(ctx, "FLAT100")
	require.NoError(t, err)
	assert.False(t, promo.IsPercent)
}
