package writerepo

import (
	"context"

	"github.com/google/uuid"

	"riide-backend/internal/infra"
	"riide-backend/internal/infra/db"
	"riide-backend/internal/usecase/shared"
)

// The WHERE clause carries the quota check, so the increment and the check are
// one atomic statement; concurrent redemptions past the limit simply match
// zero rows.
const incrementPromoUsageSQL = `
UPDATE promo_codes
SET used_count = used_count + 1, updated_at = now()
WHERE id = $1 AND active AND used_count < usage_limit`

type PromoUsageRepository struct{}

func NewPromoUsageRepository() shared.PromoUsageRepository {
	return &PromoUsageRepository{}
}

func (r *PromoUsageRepository) TryIncrementUsage(ctx context.Context, dbtx db.DBTX, promoID uuid.UUID) (bool, error) {
	tag, err := dbtx.Exec(ctx, incrementPromoUsageSQL, promoID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment promo usage", err)
	}
	return tag.RowsAffected() == 1, nil
}
