package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/srgjo27/experience_booking/internal/core/domain"
	"github.com/srgjo27/experience_booking/internal/core/ports"
	"github.com/srgjo27/experience_booking/internal/platform/metrics"
)

const (
	opLookupPromo = "promo.lookup"
	opQuote       = "promo.quote"
)

// DefaultTaxes is the flat tax added to every order.
var DefaultTaxes = decimal.NewFromInt(59)

type PromoService struct {
	promoRepo ports.PromoRepository
	catalog   *CatalogService
	taxes     decimal.Decimal
	log       *zerolog.Logger
}

func NewPromoService(promoRepo ports.PromoRepository, catalog *CatalogService, taxes decimal.Decimal, log *zerolog.Logger) *PromoService {
	return &PromoService{promoRepo: promoRepo, catalog: catalog, taxes: taxes, log: log}
}

// LookupPromo returns the terms of an active promo code.
func (s *PromoService) LookupPromo(ctx context.Context, code string) (*domain.PromoCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.NewError(domain.KindValidation, opLookupPromo, "code is required", nil)
	}

	promo, err := s.promoRepo.GetActiveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.IncPromoLookup(false)
			return nil, domain.NewError(domain.KindNotFound, opLookupPromo, "invalid or expired promo code", err)
		}

		s.log.Error().Err(err).Msg("failed to look up promo code")
		return nil, domain.NewError(domain.KindStoreFailure, opLookupPromo, "failed to validate promo code", err)
	}

	metrics.IncPromoLookup(true)

	return promo, nil
}

// Quote prices one slot of an experience with an optional promo code. It is
// informational: CreateBooking does not check its finalPrice against it.
func (s *PromoService) Quote(ctx context.Context, experienceID, code string) (*domain.PriceQuote, error) {
	exp, err := s.catalog.GetExperienceWithAvailableSlots(ctx, experienceID)
	if err != nil {
		return nil, err
	}

	quote := &domain.PriceQuote{
		ExperienceID: exp.ID,
		Subtotal:     exp.Price,
		Taxes:        s.taxes,
		Discount:     decimal.Zero,
	}

	if code = strings.TrimSpace(code); code != "" {
		promo, err := s.LookupPromo(ctx, code)
		if err != nil {
			var de *domain.Error
			if errors.As(err, &de) {
				de.Op = opQuote
			}
			return nil, err
		}

		quote.Discount = promo.DiscountFor(exp.Price)
		quote.PromoCode = &promo.Code
	}

	quote.Total = domain.Total(quote.Subtotal, quote.Taxes, quote.Discount)

	return quote, nil
}
