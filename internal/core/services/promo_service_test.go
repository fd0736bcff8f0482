package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/experience_booking/internal/adapter/cache"
	"github.com/srgjo27/experience_booking/internal/core/domain"
	"github.com/srgjo27/experience_booking/internal/core/ports/mocks"
	"github.com/srgjo27/experience_booking/internal/core/services"
)

func newPromoService(t *testing.T, promoRepo *mocks.PromoRepository, expRepo *mocks.ExperienceRepository) *services.PromoService {
	log := zerolog.Nop()
	catalog := services.NewCatalogService(expRepo, cache.NopCache{}, &log)
	return services.NewPromoService(promoRepo, catalog, services.DefaultTaxes, &log)
}

func TestLookupPromo(t *testing.T) {
	promoRepo := mocks.NewPromoRepository(t)
	service := newPromoService(t, promoRepo, mocks.NewExperienceRepository(t))

	ctx := context.Background()
	want := &domain.PromoCode{ID: uuid.New(), Code: "SAVE10", Discount: decimal.NewFromInt(10), IsActive: true}
	promoRepo.On("GetActiveByCode", ctx, "SAVE10").Return(want, nil)

	got, err := service.LookupPromo(ctx, " SAVE10 ")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLookupPromo_Failures(t *testing.T) {
	promoRepo := mocks.NewPromoRepository(t)
	service := newPromoService(t, promoRepo, mocks.NewExperienceRepository(t))
	ctx := context.Background()

	_, err := service.LookupPromo(ctx, "  ")
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	promoRepo.On("GetActiveByCode", ctx, "GONE").Return(nil, domain.ErrNotFound)
	_, err = service.LookupPromo(ctx, "GONE")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	promoRepo.On("GetActiveByCode", ctx, "BOOM").Return(nil, errors.New("db down"))
	_, err = service.LookupPromo(ctx, "BOOM")
	assert.Equal(t, domain.KindStoreFailure, domain.KindOf(err))
}

func TestQuote(t *testing.T) {
	expID := uuid.New()
	safari := &domain.ExperienceWithSlots{Experience: domain.Experience{ID: expID, Title: "Desert Safari Ride", Price: decimal.NewFromInt(150)}}

	tests := []struct {
		name      string
		code      string
		promo     *domain.PromoCode
		wantDisc  decimal.Decimal
		wantTotal decimal.Decimal
	}{
		{
			name:      "no promo",
			wantDisc:  decimal.Zero,
			wantTotal: decimal.NewFromInt(209),
		},
		{
			name:      "percent promo",
			code:      "TEN",
			promo:     &domain.PromoCode{Code: "TEN", Discount: decimal.RequireFromString("0.10"), IsPercent: true, IsActive: true},
			wantDisc:  decimal.NewFromInt(15),
			wantTotal: decimal.NewFromInt(194),
		},
		{
			name:      "flat promo larger than total",
			code:      "HUGE",
			promo:     &domain.PromoCode{Code: "HUGE", Discount: decimal.NewFromInt(1000), IsActive: true},
			wantDisc:  decimal.NewFromInt(1000),
			wantTotal: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promoRepo := mocks.NewPromoRepository(t)
			expRepo := mocks.NewExperienceRepository(t)
			service := newPromoService(t, promoRepo, expRepo)
			ctx := context.Background()

			expRepo.On("GetWithAvailableSlots", mock.Anything, expID).Return(safari, nil)
			if tt.promo != nil {
				promoRepo.On("GetActiveByCode", ctx, tt.code).Return(tt.promo, nil)
			}

			quote, err := service.Quote(ctx, expID.String(), tt.code)

			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(150).Equal(quote.Subtotal))
			assert.True(t, services.DefaultTaxes.Equal(quote.Taxes))
			assert.True(t, tt.wantDisc.Equal(quote.Discount), "discount = %s", quote.Discount)
			assert.True(t, tt.wantTotal.Equal(quote.Total), "total = %s", quote.Total)
		})
	}
}

func TestQuote_UnknownPromo(t *testing.T) {
	promoRepo := mocks.NewPromoRepository(t)
	expRepo := mocks.NewExperienceRepository(t)
	service := newPromoService(t, promoRepo, expRepo)
	ctx := context.Background()
	expID := uuid.New()

	expRepo.On("GetWithAvailableSlots", mock.Anything, expID).
		Return(&domain.ExperienceWithSlots{Experience: domain.Experience{ID: expID, Price: decimal.NewFromInt(100)}}, nil)
	promoRepo.On("GetActiveByCode", ctx, "NOPE").Return(nil, domain.ErrNotFound)

	_, err := service.Quote(ctx, expID.String(), "NOPE")

	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}
