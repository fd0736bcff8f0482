package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/srgjo27/experience_booking/internal/core/domain"
)

type PromoRepository struct {
	db *sql.DB
}

func NewPromoRepository(db *sql.DB) *PromoRepository {
	return &PromoRepository{db: db}
}

func (r *PromoRepository) GetActiveByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	query := `
	SELECT id, code, discount, is_percent, is_active
	FROM promo_codes
	WHERE code = $1 AND is_active = TRUE
	`

	var promo domain.PromoCode
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&promo.ID,
		&promo.Code,
		&promo.Discount,
		&promo.IsPercent,
		&promo.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}

		return nil, fmt.Errorf("failed to load promo code: %w", err)
	}

	return &promo, nil
}

// SeedPromoCodes inserts promo codes, skipping codes that already exist.
func (r *PromoRepository) SeedPromoCodes(ctx context.Context, promos []domain.PromoCode) error {
	query := `
	INSERT INTO promo_codes (id, code, discount, is_percent, is_active)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (code) DO NOTHING
	`

	for _, p := range promos {
		if _, err := r.db.ExecContext(ctx, query, p.ID, p.Code, p.Discount, p.IsPercent, p.IsActive); err != nil {
			return fmt.Errorf("failed to insert promo code %q: %w", p.Code, err)
		}
	}

	return nil
}

// Seeder combines the experience and promo writers behind ports.CatalogSeeder.
type Seeder struct {
	*ExperienceRepository
	*PromoRepository
}

func NewSeeder(db *sql.DB) *Seeder {
	return &Seeder{
		ExperienceRepository: NewExperienceRepository(db),
		PromoRepository:      NewPromoRepository(db),
	}
}
