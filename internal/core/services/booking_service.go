package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/srgjo27/experience_booking/internal/core/domain"
	"github.com/srgjo27/experience_booking/internal/core/ports"
	"github.com/srgjo27/experience_booking/internal/platform/metrics"
)

const (
	opCreateBooking = "booking.create"

	EventBookingCreated = "booking.created"

	sideEffectTimeout = 3 * time.Second

	// final_price is NUMERIC(12, 2).
	finalPriceScale = 2
)

var maxFinalPrice = decimal.New(1, 10)

// CreateBookingRequest carries a booking attempt. FinalPrice is the total the
// caller computed; it is stored as given.
type CreateBookingRequest struct {
	SlotID        string           `json:"slotId" validate:"required,uuid"`
	CustomerName  string           `json:"customerName" validate:"required,min=2,max=200"`
	CustomerEmail string           `json:"customerEmail" validate:"required,email,max=254"`
	PromoCode     *string          `json:"promoCode,omitempty" validate:"omitempty,max=64"`
	FinalPrice    *decimal.Decimal `json:"finalPrice" validate:"required"`
}

func (r *CreateBookingRequest) normalize() {
	r.SlotID = strings.TrimSpace(r.SlotID)
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	r.CustomerEmail = strings.TrimSpace(r.CustomerEmail)

	if r.PromoCode != nil {
		code := strings.TrimSpace(*r.PromoCode)
		if code == "" {
			r.PromoCode = nil
		} else {
			r.PromoCode = &code
		}
	}
}

type BookingService struct {
	bookingRepo ports.BookingRepository
	cache       ports.ExperienceCache
	publisher   ports.EventPublisher
	log         *zerolog.Logger
	validate    *validator.Validate
	now         func() time.Time
}

func NewBookingService(bookingRepo ports.BookingRepository, cache ports.ExperienceCache, publisher ports.EventPublisher, log *zerolog.Logger) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		cache:       cache,
		publisher:   publisher,
		log:         log,
		validate:    newValidator(),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CreateBooking reserves one slot for one customer. A missing or already
// booked slot yields a KindSlotUnavailable error; the call is never retried.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	req.normalize()

	if err := s.validate.Struct(req); err != nil {
		metrics.IncBookingAttempt(metrics.OutcomeInvalid)
		return nil, domain.NewError(domain.KindValidation, opCreateBooking, describeValidation(err), err)
	}

	if msg := checkFinalPrice(*req.FinalPrice); msg != "" {
		metrics.IncBookingAttempt(metrics.OutcomeInvalid)
		return nil, domain.NewError(domain.KindValidation, opCreateBooking, msg, nil)
	}

	slotID, err := uuid.Parse(req.SlotID)
	if err != nil {
		metrics.IncBookingAttempt(metrics.OutcomeInvalid)
		return nil, domain.NewError(domain.KindValidation, opCreateBooking, "slotId must be a valid id", err)
	}

	booking := &domain.Booking{
		ID:            uuid.New(),
		SlotID:        slotID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		PromoCode:     req.PromoCode,
		FinalPrice:    *req.FinalPrice,
		CreatedAt:     s.now(),
	}

	slot, err := s.bookingRepo.ReserveSlot(ctx, booking)
	if err != nil {
		if errors.Is(err, domain.ErrSlotUnavailable) {
			metrics.IncBookingAttempt(metrics.OutcomeSlotUnavailable)
			s.log.Info().Str("slot_id", slotID.String()).Msg("slot no longer available")
			return nil, domain.NewError(domain.KindSlotUnavailable, opCreateBooking, "slot is no longer available", err)
		}

		metrics.IncBookingAttempt(metrics.OutcomeStoreFailure)
		s.log.Error().Err(err).Str("slot_id", slotID.String()).Msg("failed to reserve slot")
		return nil, domain.NewError(domain.KindStoreFailure, opCreateBooking, "failed to create booking", err)
	}

	metrics.IncBookingAttempt(metrics.OutcomeCreated)
	s.log.Info().
		Str("booking_id", booking.ID.String()).
		Str("slot_id", slotID.String()).
		Str("experience_id", slot.ExperienceID.String()).
		Msg("booking created")

	s.afterCommit(ctx, booking, slot)

	return booking, nil
}

// checkFinalPrice rejects amounts the store would round or overflow, so the
// stored price is always the one returned.
func checkFinalPrice(p decimal.Decimal) string {
	switch {
	case p.IsNegative():
		return "finalPrice must not be negative"
	case !p.Equal(p.Truncate(finalPriceScale)):
		return "finalPrice must have at most 2 decimal places"
	case p.GreaterThanOrEqual(maxFinalPrice):
		return "finalPrice is too large"
	}
	return ""
}

// afterCommit runs the best-effort follow-ups of a committed booking. They
// outlive a cancelled request context and never fail the booking.
func (s *BookingService) afterCommit(ctx context.Context, booking *domain.Booking, slot *domain.Slot) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()

	if err := s.cache.Invalidate(ctx, slot.ExperienceID); err != nil {
		s.log.Warn().Err(err).Str("experience_id", slot.ExperienceID.String()).Msg("failed to invalidate experience cache")
	}

	event := domain.BookingCreatedEvent{
		BookingID:    booking.ID,
		SlotID:       booking.SlotID,
		ExperienceID: slot.ExperienceID,
		FinalPrice:   booking.FinalPrice,
		PromoCode:    booking.PromoCode,
		CreatedAt:    booking.CreatedAt.Unix(),
	}

	if err := s.publisher.PublishJSON(ctx, EventBookingCreated, event); err != nil {
		s.log.Warn().Err(err).Str("booking_id", booking.ID.String()).Msg("failed to publish booking event")
	}
}
