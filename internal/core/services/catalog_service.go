package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/srgjo27/experience_booking/internal/core/domain"
	"github.com/srgjo27/experience_booking/internal/core/ports"
	"github.com/srgjo27/experience_booking/internal/platform/metrics"
)

const (
	opListExperiences = "experience.list"
	opGetExperience   = "experience.get"
)

type CatalogService struct {
	repo  ports.ExperienceRepository
	cache ports.ExperienceCache
	log   *zerolog.Logger
}

func NewCatalogService(repo ports.ExperienceRepository, cache ports.ExperienceCache, log *zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, log: log}
}

func (s *CatalogService) ListExperiences(ctx context.Context, search string) ([]domain.Experience, error) {
	search = strings.TrimSpace(search)

	experiences, err := s.repo.List(ctx, search)
	if err != nil {
		s.log.Error().Err(err).Str("search", search).Msg("failed to list experiences")
		return nil, domain.NewError(domain.KindStoreFailure, opListExperiences, "failed to fetch experiences", err)
	}

	s.log.Debug().Int("count", len(experiences)).Str("search", search).Msg("listed experiences")

	return experiences, nil
}

// GetExperienceWithAvailableSlots returns the experience with its bookable
// slots. Ids that do not parse cannot exist and are reported as not found.
func (s *CatalogService) GetExperienceWithAvailableSlots(ctx context.Context, id string) (*domain.ExperienceWithSlots, error) {
	experienceID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.NewError(domain.KindNotFound, opGetExperience, "experience not found", domain.ErrNotFound)
	}

	cached, ok, err := s.cache.Get(ctx, experienceID)
	if err != nil {
		s.log.Warn().Err(err).Str("experience_id", experienceID.String()).Msg("experience cache read failed")
	}
	if ok {
		metrics.IncCacheLookup(true)
		return cached, nil
	}
	metrics.IncCacheLookup(false)

	// Read before loading: a booking committed after this point moves the
	// generation and the Set below becomes a no-op.
	generation, genErr := s.cache.Generation(ctx, experienceID)
	if genErr != nil {
		s.log.Warn().Err(genErr).Str("experience_id", experienceID.String()).Msg("experience cache generation read failed")
	}

	exp, err := s.repo.GetWithAvailableSlots(ctx, experienceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewError(domain.KindNotFound, opGetExperience, "experience not found", err)
		}

		s.log.Error().Err(err).Str("experience_id", experienceID.String()).Msg("failed to load experience")
		return nil, domain.NewError(domain.KindStoreFailure, opGetExperience, "failed to fetch experience details", err)
	}

	if genErr == nil {
		if err := s.cache.Set(ctx, exp, generation); err != nil {
			s.log.Warn().Err(err).Str("experience_id", experienceID.String()).Msg("experience cache write failed")
		}
	}

	return exp, nil
}
