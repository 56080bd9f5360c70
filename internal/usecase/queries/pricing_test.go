//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"riide-backend/internal/domain/pricing"
	"riide-backend/internal/infra"
	"riide-backend/internal/pkg/clock"
	"riide-backend/internal/usecase/queries"
	"riide-backend/internal/usecase/shared"
	"riide-backend/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

type fakeRateStore struct {
	findFn func(ctx context.Context, vehicleType string) (*pricing.RateRule, error)
}

func (f *fakeRateStore) FindByVehicleType(ctx context.Context, vehicleType string) (*pricing.RateRule, error) {
	return f.findFn(ctx, vehicleType)
}

type fakeExtrasStore struct {
	catalogFn func(ctx context.Context) (map[string]pricing.Extra, error)
}

func (f *fakeExtrasStore) Catalog(ctx context.Context) (map[string]pricing.Extra, error) {
	return f.catalogFn(ctx)
}

type fakePromoStore struct {
	findFn func(ctx context.Context, code string) (*shared.PromoSnapshot, error)
}

func (f *fakePromoStore) FindByCode(ctx context.Context, code string) (*shared.PromoSnapshot, error) {
	return f.findFn(ctx, code)
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)
}

func newPricingQueries(rates *fakeRateStore, promos *fakePromoStore) queries.PricingQueries {
	qb := builder.NewQuoteBuilder()
	if rates == nil {
		rule := qb.BuildRateRule()
		rates = &fakeRateStore{findFn: func(_ context.Context, vehicleType string) (*pricing.RateRule, error) {
			if vehicleType != rule.VehicleType {
				return nil, notFoundErr()
			}
			return rule, nil
		}}
	}
	extras := &fakeExtrasStore{catalogFn: func(context.Context) (map[string]pricing.Extra, error) {
		return qb.BuildCatalog(), nil
	}}
	if promos == nil {
		snap := builder.NewPromoBuilder().BuildSnapshot()
		promos = &fakePromoStore{findFn: func(_ context.Context, code string) (*shared.PromoSnapshot, error) {
			if code != snap.Code {
				return nil, notFoundErr()
			}
			return snap, nil
		}}
	}
	return queries.NewPricingQueries(rates, extras, promos, clock.NewMockClock(testNow))
}

func TestBuildQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("有効プロモ付きの見積もり", func(t *testing.T) {
		q := newPricingQueries(nil, nil)

		view, err := q.BuildQuote(ctx, builder.NewQuoteBuilder().BuildParams())
		require.NoError(t, err)

		assert.True(t, view.Subtotal.Equal(decimal.NewFromInt(95)))
		assert.True(t, view.TotalPrice.Equal(decimal.RequireFromString("61.75")))
		assert.True(t, view.PromoApplied)
		require.NotNil(t, view.PromoCode)
		assert.Equal(t, "RIIDE20", *view.PromoCode)
		assert.Len(t, view.Breakdown, 7)
	})

	t.Run("未知のプロモは静かに無視される", func(t *testing.T) {
		q := newPricingQueries(nil, nil)

		view, err := q.BuildQuote(ctx, builder.NewQuoteBuilder().WithPromo("NOPE").BuildParams())
		require.NoError(t, err)

		assert.False(t, view.PromoApplied)
		assert.True(t, view.PromoDiscount.IsZero())
		assert.True(t, view.TotalPrice.Equal(decimal.RequireFromString("80.75")))
	})

	t.Run("大文字小文字は区別される", func(t *testing.T) {
		q := newPricingQueries(nil, nil)

		view, err := q.BuildQuote(ctx, builder.NewQuoteBuilder().WithPromo("riide20").BuildParams())
		require.NoError(t, err)

		assert.False(t, view.PromoApplied)
	})

	t.Run("期限切れプロモは割引なしで成功する", func(t *testing.T) {
		snap := builder.NewPromoBuilder().WithWindow(
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
		).BuildSnapshot()
		promos := &fakePromoStore{findFn: func(context.Context, string) (*shared.PromoSnapshot, error) {
			return snap, nil
		}}
		q := newPricingQueries(nil, promos)

		view, err := q.BuildQuote(ctx, builder.NewQuoteBuilder().BuildParams())
		require.NoError(t, err)

		assert.False(t, view.PromoApplied)
		assert.True(t, view.TotalPrice.Equal(decimal.RequireFromString("80.75")))
	})

	t.Run("未知の車種はエラー", func(t *testing.T) {
		q := newPricingQueries(nil, nil)

		_, err := q.BuildQuote(ctx, builder.NewQuoteBuilder().WithVehicleType("Hovercraft").BuildParams())
		assert.ErrorIs(t, err, queries.ErrRateNotFound)
	})

	t.Run("明示的な非正の期間はエラー", func(t *testing.T) {
		q := newPricingQueries(nil, nil)

		for _, hours := range []int{0, -1} {
			_, err := q.BuildQuote(ctx, builder.NewQuoteBuilder().WithHours(hours).BuildParams())
			assert.ErrorIs(t, err, queries.ErrInvalidDuration)
		}

		_, err := q.BuildQuote(ctx, builder.NewQuoteBuilder().WithService("rental").WithDays(0).BuildParams())
		assert.ErrorIs(t, err, queries.ErrInvalidDuration)
	})

	t.Run("期間未指定は1時間として成功する", func(t *testing.T) {
		q := newPricingQueries(nil, nil)

		params := builder.NewQuoteBuilder().WithoutPromo().BuildParams()
		params.DurationHours = nil
		params.Extras = nil

		view, err := q.BuildQuote(ctx, params)
		require.NoError(t, err)
		assert.True(t, view.BasePrice.Equal(decimal.NewFromInt(45)))
	})

	t.Run("ストア障害はErrPricingFailed", func(t *testing.T) {
		rates := &fakeRateStore{findFn: func(context.Context, string) (*pricing.RateRule, error) {
			return nil, infra.WrapRepoErr("boom", errors.New("connection refused"))
		}}
		q := newPricingQueries(rates, nil)

		_, err := q.BuildQuote(ctx, builder.NewQuoteBuilder().BuildParams())
		assert.ErrorIs(t, err, queries.ErrPricingFailed)
	})
}

func TestValidatePromo(t *testing.T) {
	ctx := context.Background()
	amount := decimal.NewFromInt(95)

	t.Run("有効なコードは割引額を返す", func(t *testing.T) {
		q := newPricingQueries(nil, nil)

		view, err := q.ValidatePromo(ctx, "RIIDE20", amount)
		require.NoError(t, err)

		assert.Equal(t, "RIIDE20", view.Code)
		assert.True(t, view.DiscountPercentage.Equal(decimal.New(20, -2)))
		assert.True(t, view.DiscountAmount.Equal(decimal.NewFromInt(19)))
		assert.True(t, view.FinalAmount.Equal(decimal.NewFromInt(76)))
	})

	t.Run("未知のコードはErrPromoNotFound", func(t *testing.T) {
		q := newPricingQueries(nil, nil)

		_, err := q.ValidatePromo(ctx, "NOPE", amount)
		assert.ErrorIs(t, err, queries.ErrPromoNotFound)
	})

	t.Run("見積もりと違い無効コードはエラーになる", func(t *testing.T) {
		cases := []struct {
			name string
			b    *builder.PromoBuilder
		}{
			{name: "無効化済み", b: builder.NewPromoBuilder().Inactive()},
			{name: "上限到達", b: builder.NewPromoBuilder().Exhausted()},
			{name: "期限切れ", b: builder.NewPromoBuilder().WithWindow(
				time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			)},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				snap := tc.b.BuildSnapshot()
				promos := &fakePromoStore{findFn: func(context.Context, string) (*shared.PromoSnapshot, error) {
					return snap, nil
				}}
				q := newPricingQueries(nil, promos)

				_, err := q.ValidatePromo(ctx, snap.Code, amount)
				assert.ErrorIs(t, err, queries.ErrPromoInvalid)
			})
		}
	})
}
