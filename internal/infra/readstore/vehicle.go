package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"riide-backend/internal/infra"
	"riide-backend/internal/infra/cache"
	"riide-backend/internal/infra/db"
	"riide-backend/internal/usecase/queries"
)

const (
	vehicleCacheKeyAll    = "vehicles:all"
	vehicleCacheKeyPrefix = "vehicles:category:"
)

const selectVehicleSQL = `
SELECT id, name, type, category, image_url, price_per_hour, price_per_day,
       features, passengers, description, available, location
FROM vehicles`

type VehicleReadStore struct {
	db    db.DBTX
	cache *redis.Client
	ttl   time.Duration
}

func NewVehicleReadStore(dbtx db.DBTX, cacheClient *redis.Client, ttl time.Duration) *VehicleReadStore {
	return &VehicleReadStore{
		db:    dbtx,
		cache: cacheClient,
		ttl:   ttl,
	}
}

func (r *VehicleReadStore) List(ctx context.Context, category *string) ([]*queries.VehicleView, error) {
	key := vehicleCacheKeyAll
	if category != nil {
		key = vehicleCacheKeyPrefix + *category
	}

	var cached []*queries.VehicleView
	if hit, err := cache.GetJSON(ctx, r.cache, key, &cached); err == nil && hit {
		return cached, nil
	}

	sql := selectVehicleSQL + ` WHERE available`
	args := []any{}
	if category != nil {
		sql += ` AND category = $1`
		args = append(args, *category)
	}
	sql += ` ORDER BY name`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}
	defer rows.Close()

	views := make([]*queries.VehicleView, 0)
	for rows.Next() {
		var v queries.VehicleView
		if err := scanVehicleView(rows.Scan, &v); err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate vehicles", err)
	}

	cache.SetJSON(ctx, r.cache, key, views, r.ttl)
	return views, nil
}

func (r *VehicleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VehicleView, error) {
	var v queries.VehicleView
	err := scanVehicleView(r.db.QueryRow(ctx, selectVehicleSQL+` WHERE id = $1`, id).Scan, &v)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle", err)
	}
	return &v, nil
}

func scanVehicleView(scan func(dest ...any) error, v *queries.VehicleView) error {
	return scan(
		&v.ID, &v.Name, &v.Type, &v.Category, &v.ImageURL,
		&v.PricePerHour, &v.PricePerDay, &v.Features, &v.Passengers,
		&v.Description, &v.Available, &v.Location,
	)
}
