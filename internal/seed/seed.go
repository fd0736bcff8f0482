// Package seed loads the demo catalog into a store. Ids are derived from the
// catalog content, so running it twice leaves the store unchanged.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/srgjo27/experience_booking/internal/core/domain"
	"github.com/srgjo27/experience_booking/internal/core/ports"
)

const slotDuration = 2 * time.Hour

var namespace = uuid.MustParse("3b0d6a52-8f3e-4c7e-9a4d-5f1b2c6e7a90")

type Catalog struct {
	Experiences []domain.Experience
	Slots       map[uuid.UUID][]domain.Slot
	PromoCodes  []domain.PromoCode
}

// Build expands the catalog templates. Each template slot time is repeated
// Available times per date, and every slot lasts two hours. createdAt of
// the first experience is base; each later one is a second newer.
func Build(base time.Time) (*Catalog, error) {
	out := &Catalog{Slots: make(map[uuid.UUID][]domain.Slot)}

	for i, tpl := range catalog {
		exp := domain.Experience{
			ID:          uuid.NewSHA1(namespace, []byte("experience:"+tpl.Name)),
			Title:       tpl.Name,
			Description: tpl.Description,
			Location:    tpl.Location,
			Price:       decimal.NewFromInt(tpl.Price),
			ImageURL:    tpl.Image,
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}

		var slots []domain.Slot
		for _, date := range tpl.Dates {
			for _, st := range tpl.Slots {
				start, err := slotStart(date, st.Time)
				if err != nil {
					return nil, fmt.Errorf("experience %q: %w", tpl.Name, err)
				}

				for n := 0; n < st.Available; n++ {
					key := fmt.Sprintf("slot:%s:%d", start.Format(time.RFC3339), n)
					slots = append(slots, domain.Slot{
						ID:           uuid.NewSHA1(exp.ID, []byte(key)),
						ExperienceID: exp.ID,
						StartTime:    start,
						EndTime:      start.Add(slotDuration),
						IsAvailable:  true,
						Version:      1,
					})
				}
			}
		}

		out.Experiences = append(out.Experiences, exp)
		out.Slots[exp.ID] = slots
	}

	out.PromoCodes = []domain.PromoCode{
		promo("SAVE10", decimal.NewFromInt(10), false),
		promo("FLAT100", decimal.NewFromInt(100), false),
	}

	return out, nil
}

func promo(code string, discount decimal.Decimal, percent bool) domain.PromoCode {
	return domain.PromoCode{
		ID:        uuid.NewSHA1(namespace, []byte("promo:"+code)),
		Code:      code,
		Discount:  discount,
		IsPercent: percent,
		IsActive:  true,
	}
}

// slotStart combines a YYYY-MM-DD date and a "03:04 PM" clock time in UTC.
func slotStart(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 03:04 PM", date+" "+clock, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse slot time %q %q: %w", date, clock, err)
	}
	return t, nil
}

// Apply writes the catalog through seeder.
func Apply(ctx context.Context, seeder ports.CatalogSeeder, c *Catalog, log *zerolog.Logger) error {
	for i := range c.Experiences {
		exp := &c.Experiences[i]
		slots := c.Slots[exp.ID]

		if err := seeder.SeedExperience(ctx, exp, slots); err != nil {
			return err
		}

		log.Info().Str("experience", exp.Title).Int("slots", len(slots)).Msg("seeded experience")
	}

	if err := seeder.SeedPromoCodes(ctx, c.PromoCodes); err != nil {
		return err
	}

	log.Info().Int("promo_codes", len(c.PromoCodes)).Msg("seeded promo codes")

	return nil
}
