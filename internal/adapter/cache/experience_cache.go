package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/experience_booking/internal/core/domain"
)

const DefaultTTL = 30 * time.Second

func ExperienceKey(experienceID uuid.UUID) string {
	return fmt.Sprintf("experience:%s", experienceID.String())
}

func GenerationKey(experienceID uuid.UUID) string {
	return fmt.Sprintf("experience:%s:gen", experienceID.String())
}

// KEYS[1] view, KEYS[2] generation; ARGV generation, payload, ttl in ms.
var setIfCurrent = redis.NewScript(`
if (redis.call('GET', KEYS[2]) or '0') ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

// ExperienceCache keeps experience detail views in Redis. Booking a slot
// bumps the experience generation and drops the view; a view loaded under
// an older generation is never stored. The TTL only bounds staleness for
// changes made outside this service.
type ExperienceCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewExperienceCache(rdb *redis.Client, ttl time.Duration) *ExperienceCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ExperienceCache{rdb: rdb, ttl: ttl}
}

func (c *ExperienceCache) Get(ctx context.Context, experienceID uuid.UUID) (*domain.ExperienceWithSlots, bool, error) {
	raw, err := c.rdb.Get(ctx, ExperienceKey(experienceID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var exp domain.ExperienceWithSlots
	if err := json.Unmarshal(raw, &exp); err != nil {
		return nil, false, fmt.Errorf("decode cached experience: %w", err)
	}

	return &exp, true, nil
}

// Generation reads the current generation, zero when the experience was
// never invalidated.
func (c *ExperienceCache) Generation(ctx context.Context, experienceID uuid.UUID) (int64, error) {
	gen, err := c.rdb.Get(ctx, GenerationKey(experienceID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis get generation: %w", err)
	}

	return gen, nil
}

// Set stores the view only while generation is still current.
func (c *ExperienceCache) Set(ctx context.Context, experience *domain.ExperienceWithSlots, generation int64) error {
	payload, err := json.Marshal(experience)
	if err != nil {
		return fmt.Errorf("encode experience: %w", err)
	}

	keys := []string{ExperienceKey(experience.ID), GenerationKey(experience.ID)}
	err = setIfCurrent.Run(ctx, c.rdb, keys, strconv.FormatInt(generation, 10), string(payload), c.ttl.Milliseconds()).Err()
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

// Invalidate bumps the generation before dropping the view, so a reader that
// loaded earlier cannot store it again.
func (c *ExperienceCache) Invalidate(ctx context.Context, experienceID uuid.UUID) error {
	if err := c.rdb.Incr(ctx, GenerationKey(experienceID)).Err(); err != nil {
		return fmt.Errorf("redis incr generation: %w", err)
	}

	if err := c.rdb.Del(ctx, ExperienceKey(experienceID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}

	return nil
}

// NopCache never stores anything. It stands in when Redis is disabled.
type NopCache struct{}

func (NopCache) Get(context.Context, uuid.UUID) (*domain.ExperienceWithSlots, bool, error) {
	return nil, false, nil
}

func (NopCache) Generation(context.Context, uuid.UUID) (int64, error) { return 0, nil }

func (NopCache) Set(context.Context, *domain.ExperienceWithSlots, int64) error { return nil }

func (NopCache) Invalidate(context.Context, uuid.UUID) error { return nil }
