// Package memory is an in-process Data Store. A single mutex serialises
// every reservation, which only holds while one process owns the data; run
// the postgres store for anything with more than one instance.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/srgjo27/experience_booking/internal/core/domain"
)

type Store struct {
	mu          sync.RWMutex
	experiences map[uuid.UUID]domain.Experience
	slots       map[uuid.UUID]domain.Slot
	bookings    map[uuid.UUID]domain.Booking
	slotBooking map[uuid.UUID]uuid.UUID
	promos      map[string]domain.PromoCode
}

func NewStore() *Store {
	return &Store{
		experiences: make(map[uuid.UUID]domain.Experience),
		slots:       make(map[uuid.UUID]domain.Slot),
		bookings:    make(map[uuid.UUID]domain.Booking),
		slotBooking: make(map[uuid.UUID]uuid.UUID),
		promos:      make(map[string]domain.PromoCode),
	}
}

func (s *Store) ReserveSlot(ctx context.Context, booking *domain.Booking) (*domain.Slot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[booking.SlotID]
	if !ok {
		return nil, domain.ErrSlotUnavailable
	}

	if _, taken := s.slotBooking[slot.ID]; taken || !slot.Reserve() {
		return nil, domain.ErrSlotUnavailable
	}

	s.slots[slot.ID] = slot
	s.bookings[booking.ID] = cloneBooking(*booking)
	s.slotBooking[slot.ID] = booking.ID

	return &slot, nil
}

func (s *Store) List(ctx context.Context, search string) ([]domain.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(strings.TrimSpace(search))

	out := make([]domain.Experience, 0, len(s.experiences))
	for _, exp := range s.experiences {
		if term == "" ||
			strings.Contains(strings.ToLower(exp.Title), term) ||
			strings.Contains(strings.ToLower(exp.Location), term) {
			out = append(out, exp)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (s *Store) GetWithAvailableSlots(ctx context.Context, experienceID uuid.UUID) (*domain.ExperienceWithSlots, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exp, ok := s.experiences[experienceID]
	if !ok {
		return nil, domain.ErrNotFound
	}

	slots := make([]domain.Slot, 0)
	for _, slot := range s.slots {
		if slot.ExperienceID == experienceID && slot.IsAvailable {
			slots = append(slots, slot)
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		if slots[i].StartTime.Equal(slots[j].StartTime) {
			return slots[i].ID.String() < slots[j].ID.String()
		}
		return slots[i].StartTime.Before(slots[j].StartTime)
	})

	return &domain.ExperienceWithSlots{Experience: exp, Slots: slots}, nil
}

func (s *Store) GetActiveByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	promo, ok := s.promos[code]
	if !ok || !promo.IsActive {
		return nil, domain.ErrNotFound
	}

	return &promo, nil
}

func (s *Store) SeedExperience(ctx context.Context, experience *domain.Experience, slots []domain.Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.experiences[experience.ID]; !exists {
		s.experiences[experience.ID] = *experience
	}

	for _, slot := range slots {
		if _, exists := s.slots[slot.ID]; exists {
			continue
		}
		slot.ExperienceID = experience.ID
		s.slots[slot.ID] = slot
	}

	return nil
}

func (s *Store) SeedPromoCodes(ctx context.Context, promos []domain.PromoCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range promos {
		if _, exists := s.promos[p.Code]; !exists {
			s.promos[p.Code] = p
		}
	}

	return nil
}

// BookingsForSlot returns every booking that consumed slotID.
func (s *Store) BookingsForSlot(slotID uuid.UUID) []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Booking
	for _, b := range s.bookings {
		if b.SlotID == slotID {
			out = append(out, cloneBooking(b))
		}
	}

	return out
}

// Slot returns the stored state of a slot.
func (s *Store) Slot(slotID uuid.UUID) (domain.Slot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.slots[slotID]
	return slot, ok
}

func cloneBooking(b domain.Booking) domain.Booking {
	if b.PromoCode != nil {
		code := *b.PromoCode
		b.PromoCode = &code
	}
	return b
}
