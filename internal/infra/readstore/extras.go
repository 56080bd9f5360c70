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

const extrasCacheKey = "extras:catalog"

type ExtrasReadStore struct {
	db    db.DBTX
	cache *redis.Client
	ttl   time.Duration
}

func NewExtrasReadStore(dbtx db.DBTX, cacheClient *redis.Client, ttl time.Duration) *ExtrasReadStore {
	return &ExtrasReadStore{
		db:    dbtx,
		cache: cacheClient,
		ttl:   ttl,
	}
}

// Catalog returns the whole extras table keyed by name. The table is tiny and
// changes rarely, so it is cached as one unit.
func (r *ExtrasReadStore) Catalog(ctx context.Context) (map[string]pricing.Extra, error) {
	var cached map[string]pricing.Extra
	if hit, err := cache.GetJSON(ctx, r.cache, extrasCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := r.db.Query(ctx, `SELECT name, price, description FROM extras`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list extras", err)
	}
	defer rows.Close()

	catalog := make(map[string]pricing.Extra)
	for rows.Next() {
		var extra pricing.Extra
		if err := rows.Scan(&extra.Name, &extra.Price, &extra.Description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan extra", err)
		}
		catalog[extra.Name] = extra
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate extras", err)
	}

	cache.SetJSON(ctx, r.cache, extrasCacheKey, catalog, r.ttl)
	return catalog, nil
}
