//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"riide-backend/internal/domain/promo"
	"riide-backend/internal/usecase/shared"
)

type PromoBuilder struct {
	ID          uuid.UUID
	Code        string
	DiscountPct decimal.Decimal
	Description string
	ValidFrom   time.Time
	ValidTo     time.Time
	UsageLimit  int
	UsedCount   int
	Active      bool
}

func NewPromoBuilder() *PromoBuilder {
	return &PromoBuilder{
		ID:          uuid.New(),
		Code:        "RIIDE20",
		DiscountPct: decimal.New(20, -2),
		Description: "20% off your ride",
		ValidFrom:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:     time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC),
		UsageLimit:  1000,
		UsedCount:   0,
		Active:      true,
	}
}

func (b *PromoBuilder) BuildDomain() (*promo.PromoCode, error) {
	return promo.NewPromoCode(
		b.ID, b.Code, b.DiscountPct, b.Description,
		b.ValidFrom, b.ValidTo, b.UsageLimit, b.UsedCount, b.Active,
	)
}

func (b *PromoBuilder) BuildSnapshot() *shared.PromoSnapshot {
	return &shared.PromoSnapshot{
		ID:                 b.ID,
		Code:               b.Code,
		DiscountPercentage: b.DiscountPct,
		Description:        b.Description,
		ValidFrom:          b.ValidFrom,
		ValidTo:            b.ValidTo,
		UsageLimit:         b.UsageLimit,
		UsedCount:          b.UsedCount,
		Active:             b.Active,
	}
}

// Fluent builder methods
func (b *PromoBuilder) WithCode(code string) *PromoBuilder {
	b.Code = code
	return b
}

func (b *PromoBuilder) WithDiscount(pct decimal.Decimal) *PromoBuilder {
	b.DiscountPct = pct
	return b
}

func (b *PromoBuilder) WithWindow(from, to time.Time) *PromoBuilder {
	b.ValidFrom = from
	b.ValidTo = to
	return b
}

func (b *PromoBuilder) Inactive() *PromoBuilder {
	b.Active = false
	return b
}

func (b *PromoBuilder) Exhausted() *PromoBuilder {
	b.UsedCount = b.UsageLimit
	return b
}

func (b *PromoBuilder) WithUsage(limit, used int) *PromoBuilder {
	b.UsageLimit = limit
	b.UsedCount = used
	return b
}
