package pricing

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"riide-backend/internal/domain/promo"
)

var ErrInvalidDuration = errors.New("duration must be at least 1")

// QuoteInput carries the already-validated request parameters. The rate rule
// and extras catalog are fetched by the caller; this package stays pure.
type QuoteInput struct {
	Service       ServiceType
	DurationHours int // 0 means unspecified and defaults to 1
	DurationDays  int // rental only; 0 means hourly pricing applies
	Extras        []string
	Payment       PaymentMethod
}

type Discounts struct {
	Payment decimal.Decimal
	Promo   decimal.Decimal
	Total   decimal.Decimal
}

// ComputeDiscounts applies additive stacking: both discounts are computed off
// the same subtotal and summed. Never compound them sequentially: the
// breakdown shown to users promises each line is a share of the subtotal.
func ComputeDiscounts(subtotal decimal.Decimal, method PaymentMethod, promoRate decimal.Decimal) Discounts {
	paymentDiscount := subtotal.Mul(method.DiscountRate())
	promoDiscount := subtotal.Mul(promoRate)

	return Discounts{
		Payment: paymentDiscount,
		Promo:   promoDiscount,
		Total:   paymentDiscount.Add(promoDiscount),
	}
}

// Quote is a computed, non-binding price estimate. It is never persisted as
// is; a booking snapshots its fields at creation time.
type Quote struct {
	BasePrice       decimal.Decimal
	ExtrasPrice     decimal.Decimal
	Subtotal        decimal.Decimal
	PaymentDiscount decimal.Decimal
	PromoDiscount   decimal.Decimal
	TotalDiscount   decimal.Decimal
	TotalPrice      decimal.Decimal
	PromoCode       *string
}

type BreakdownItem struct {
	Key    string
	Amount decimal.Decimal
}

// Breakdown returns the display lines in fixed order.
func (q Quote) Breakdown() []BreakdownItem {
	return []BreakdownItem{
		{Key: "base_price", Amount: q.BasePrice},
		{Key: "extras_price", Amount: q.ExtrasPrice},
		{Key: "subtotal", Amount: q.Subtotal},
		{Key: "payment_discount", Amount: q.PaymentDiscount},
		{Key: "promo_discount", Amount: q.PromoDiscount},
		{Key: "total_discount", Amount: q.TotalDiscount},
		{Key: "total_price", Amount: q.TotalPrice},
	}
}

// BuildQuote prices a request against the given rate rule and extras catalog.
//
// An ineligible promo is silently dropped here. The promo fields stay present
// but zero so callers can see no discount was applied. Booking finalization
// rejects ineligible codes before ever reaching this function; keep that
// asymmetry.
func BuildQuote(rule RateRule, catalog map[string]Extra, in QuoteInput, pc *promo.PromoCode, now time.Time) (Quote, error) {
	if in.DurationHours < 0 || in.DurationDays < 0 {
		return Quote{}, ErrInvalidDuration
	}

	var base decimal.Decimal
	if in.Service == ServiceRental && in.DurationDays > 0 {
		base = rule.DailyRate.Mul(decimal.NewFromInt(int64(in.DurationDays)))
	} else {
		hours := in.DurationHours
		if hours == 0 {
			hours = 1
		}
		base = rule.HourlyRate.Mul(decimal.NewFromInt(int64(hours)))
	}

	extrasPrice := PriceExtras(in.Extras, catalog)
	subtotal := base.Add(extrasPrice)

	promoRate := decimal.Zero
	var promoCode *string
	if pc != nil && pc.Eligible(now) {
		promoRate = pc.DiscountPercentage()
		code := pc.Code()
		promoCode = &code
	}

	discounts := ComputeDiscounts(subtotal, in.Payment, promoRate)

	// Discounts can never drive the price negative: clamp, do not error.
	totalPrice := subtotal.Sub(discounts.Total)
	if totalPrice.IsNegative() {
		totalPrice = decimal.Zero
	}

	return Quote{
		BasePrice:       base,
		ExtrasPrice:     extrasPrice,
		Subtotal:        subtotal,
		PaymentDiscount: discounts.Payment,
		PromoDiscount:   discounts.Promo,
		TotalDiscount:   discounts.Total,
		TotalPrice:      totalPrice,
		PromoCode:       promoCode,
	}, nil
}
