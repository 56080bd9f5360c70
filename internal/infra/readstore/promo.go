package readstore

import (
	"context"

	"riide-backend/internal/infra"
	"riide-backend/internal/infra/db"
	"riide-backend/internal/usecase/shared"
)

type PromoReadStore struct {
	db db.DBTX
}

func NewPromoReadStore(dbtx db.DBTX) *PromoReadStore {
	return &PromoReadStore{db: dbtx}
}

// FindByCode matches the code exactly; no normalization, no caching. Usage
// counters must always be read fresh, and lookups go through the unique index
// anyway.
func (r *PromoReadStore) FindByCode(ctx context.Context, code string) (*shared.PromoSnapshot, error) {
	var snap shared.PromoSnapshot
	err := r.db.QueryRow(ctx, `
SELECT id, code, discount_percentage, description,
       valid_from, valid_to, usage_limit, used_count, active
FROM promo_codes
WHERE code = $1`,
		code,
	).Scan(
		&snap.ID, &snap.Code, &snap.DiscountPercentage, &snap.Description,
		&snap.ValidFrom, &snap.ValidTo, &snap.UsageLimit, &snap.UsedCount, &snap.Active,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promo code", err)
	}
	return &snap, nil
}
