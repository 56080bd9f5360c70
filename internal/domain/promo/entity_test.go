//go:build unit

package promo_test

import (
	"testing"
	"time"

	"riide-backend/internal/domain/promo"
	"riide-backend/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPromoCode(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		pc, err := builder.NewPromoBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, pc)

		assert.Equal(t, "RIIDE20", pc.Code())
		assert.True(t, pc.DiscountPercentage().Equal(decimal.New(20, -2)))
		assert.Equal(t, 1000, pc.UsageLimit())
		assert.Equal(t, 0, pc.UsedCount())
		assert.True(t, pc.Active())
		assert.Equal(t, 1000, pc.Remaining())
	})

	t.Run("割引率検証", func(t *testing.T) {
		cases := []struct {
			name  string
			pct   decimal.Decimal
			errIs error
		}{
			{name: "0%はOK", pct: decimal.Zero},
			{name: "100%はOK", pct: decimal.NewFromInt(1)},
			{name: "負の率はNG", pct: decimal.New(-1, -2), errIs: promo.ErrInvalidDiscount},
			{name: "100%超はNG", pct: decimal.RequireFromString("1.01"), errIs: promo.ErrInvalidDiscount},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := builder.NewPromoBuilder().WithDiscount(tc.pct).BuildDomain()
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("利用回数検証", func(t *testing.T) {
		_, err := builder.NewPromoBuilder().WithUsage(-1, 0).BuildDomain()
		assert.ErrorIs(t, err, promo.ErrInvalidLimit)

		_, err = builder.NewPromoBuilder().WithUsage(10, -1).BuildDomain()
		assert.ErrorIs(t, err, promo.ErrInvalidLimit)
	})
}

func TestPromoCodeValidate(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)

	build := func(t *testing.T, b *builder.PromoBuilder) *promo.PromoCode {
		t.Helper()
		pc, err := b.BuildDomain()
		require.NoError(t, err)
		return pc
	}

	t.Run("有効期間は両端を含む", func(t *testing.T) {
		pc := build(t, builder.NewPromoBuilder().WithWindow(from, to))

		assert.NoError(t, pc.Validate(from))
		assert.NoError(t, pc.Validate(to))
		assert.ErrorIs(t, pc.Validate(from.Add(-time.Second)), promo.ErrNotYetValid)
		assert.ErrorIs(t, pc.Validate(to.Add(time.Second)), promo.ErrExpired)
	})

	t.Run("拒否理由ごとのセンチネル", func(t *testing.T) {
		now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

		cases := []struct {
			name  string
			b     *builder.PromoBuilder
			errIs error
		}{
			{name: "無効化済み", b: builder.NewPromoBuilder().Inactive(), errIs: promo.ErrInactive},
			{name: "開始前", b: builder.NewPromoBuilder().WithWindow(now.Add(time.Hour), to), errIs: promo.ErrNotYetValid},
			{name: "終了後", b: builder.NewPromoBuilder().WithWindow(from, now.Add(-time.Hour)), errIs: promo.ErrExpired},
			{name: "上限到達", b: builder.NewPromoBuilder().Exhausted(), errIs: promo.ErrExhausted},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				pc := build(t, tc.b)
				err := pc.Validate(now)
				assert.ErrorIs(t, err, tc.errIs)
				assert.ErrorIs(t, err, promo.ErrNotEligible)
				assert.False(t, pc.Eligible(now))
			})
		}
	})

	t.Run("残り1回は利用可能", func(t *testing.T) {
		now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
		pc := build(t, builder.NewPromoBuilder().WithUsage(100, 99))

		assert.NoError(t, pc.Validate(now))
		assert.Equal(t, 1, pc.Remaining())
	})

	t.Run("検証は利用回数を進めない", func(t *testing.T) {
		now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
		pc := build(t, builder.NewPromoBuilder())

		for i := 0; i < 3; i++ {
			require.NoError(t, pc.Validate(now))
		}
		assert.Equal(t, 0, pc.UsedCount())
	})
}
