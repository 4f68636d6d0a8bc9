package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Service serves quotes through a Redis read-through cache. Quotes are
// pure functions of their inputs, so cached entries never go stale
// within the TTL.
type Service struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewService creates a pricing service. redis may be nil, in which case
// every quote is computed directly.
func NewService(redisClient *redis.Client, ttl time.Duration) *Service {
	return &Service{redis: redisClient, ttl: ttl}
}

// Quote returns a cached quote or computes and caches one. Cache
// failures are logged and never surfaced; pricing must stay up when
// Redis is down.
func (s *Service) Quote(ctx context.Context, eventType, location, dateStr string, durationHours, rating float64) Quote {
	if s.redis == nil {
		return Calculate(eventType, location, dateStr, durationHours, rating)
	}

	key := cacheKey(eventType, location, dateStr, durationHours, rating)

	cached, err := s.redis.Get(ctx, key).Result()
	if err == nil {
		var q Quote
		if jsonErr := json.Unmarshal([]byte(cached), &q); jsonErr == nil {
			return q
		}
	} else if err != redis.Nil {
		log.Warn().Err(err).Msg("Quote cache read failed")
	}

	q := Calculate(eventType, location, dateStr, durationHours, rating)

	if payload, err := json.Marshal(q); err == nil {
		if err := s.redis.Set(ctx, key, payload, s.ttl).Err(); err != nil {
			log.Warn().Err(err).Msg("Quote cache write failed")
		}
	}

	return q
}

func cacheKey(eventType, location, dateStr string, durationHours, rating float64) string {
	return fmt.Sprintf("pricing:quote:%s:%s:%s:%g:%g",
		strings.ToLower(eventType), strings.ToLower(location), dateStr, durationHours, rating)
}
