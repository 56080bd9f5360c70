package readstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"riide-backend/internal/domain/pricing"
	"riide-backend/internal/infra"
	"riide-backend/internal/infra/cache"
	"riide-backend/internal/infra/db"
)

const rateCacheKeyPrefix = "rates:"

type RateReadStore struct {
	db    db.DBTX
	cache *redis.Client
	ttl   time.Duration
}

func NewRateReadStore(dbtx db.DBTX, cacheClient *redis.Client, ttl time.Duration) *RateReadStore {
	return &RateReadStore{
		db:    dbtx,
		cache: cacheClient,
		ttl:   ttl,
	}
}

func (r *RateReadStore) FindByVehicleType(ctx context.Context, vehicleType string) (*pricing.RateRule, error) {
	key := rateCacheKeyPrefix + vehicleType

	var cached pricing.RateRule
	if hit, err := cache.GetJSON(ctx, r.cache, key, &cached); err == nil && hit {
		return &cached, nil
	}

	var rule pricing.RateRule
	err := r.db.QueryRow(ctx,
		`SELECT vehicle_type, hourly_rate, daily_rate, distance_rate FROM rate_rules WHERE vehicle_type = $1`,
		vehicleType,
	).Scan(&rule.VehicleType, &rule.HourlyRate, &rule.DailyRate, &rule.DistanceRate)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rate rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rate rule", err)
	}

	cache.SetJSON(ctx, r.cache, key, rule, r.ttl)
	return &rule, nil
}
