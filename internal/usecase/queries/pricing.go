package queries

import (
	"context"

	"github.com/shopspring/decimal"

	"riide-backend/internal/domain/pricing"
	"riide-backend/internal/domain/promo"
	"riide-backend/internal/infra"
	"riide-backend/internal/pkg/clock"
	"riide-backend/internal/pkg/errs"
	"riide-backend/internal/usecase/shared"
)

var (
	ErrRateNotFound    = errs.New("no rate rule for vehicle type")
	ErrInvalidDuration = errs.New("invalid duration")
	ErrPromoNotFound   = errs.New("promo code not found")
	ErrPromoInvalid    = errs.New("promo code is not valid")
	ErrPricingFailed   = errs.New("pricing lookup failed")
)

// Read-side store contracts implemented by infra/readstore.
type RateReadStore interface {
	FindByVehicleType(ctx context.Context, vehicleType string) (*pricing.RateRule, error)
}

type ExtrasReadStore interface {
	Catalog(ctx context.Context) (map[string]pricing.Extra, error)
}

type PromoReadStore interface {
	// FindByCode matches exactly and case-sensitively.
	FindByCode(ctx context.Context, code string) (*shared.PromoSnapshot, error)
}

type QuoteParams struct {
	VehicleType   string
	ServiceType   pricing.ServiceType
	DurationHours *int
	DurationDays  *int
	Extras        []string
	PaymentMethod pricing.PaymentMethod
	PromoCode     *string
}

type QuoteView struct {
	BasePrice       decimal.Decimal
	ExtrasPrice     decimal.Decimal
	Subtotal        decimal.Decimal
	PaymentDiscount decimal.Decimal
	PromoDiscount   decimal.Decimal
	TotalDiscount   decimal.Decimal
	TotalPrice      decimal.Decimal
	PromoApplied    bool
	PromoCode       *string
	Breakdown       []pricing.BreakdownItem
}

type PromoQuoteView struct {
	Code               string
	Description        string
	DiscountPercentage decimal.Decimal
	DiscountAmount     decimal.Decimal
	FinalAmount        decimal.Decimal
}

type PricingQueries interface {
	// BuildQuote computes a non-binding estimate. An ineligible or unknown
	// promo code is silently priced without the discount; the booking
	// command path is the one that rejects such codes.
	BuildQuote(ctx context.Context, params QuoteParams) (*QuoteView, error)
	// ValidatePromo checks a code against a booking amount and, unlike
	// BuildQuote, fails on ineligible codes.
	ValidatePromo(ctx context.Context, code string, amount decimal.Decimal) (*PromoQuoteView, error)
}

type pricingQueriesImpl struct {
	rates  RateReadStore
	extras ExtrasReadStore
	promos PromoReadStore
	clock  clock.Clock
}

func NewPricingQueries(rates RateReadStore, extras ExtrasReadStore, promos PromoReadStore, clk clock.Clock) PricingQueries {
	return &pricingQueriesImpl{
		rates:  rates,
		extras: extras,
		promos: promos,
		clock:  clk,
	}
}

// ToQuoteInput validates durations and converts to the domain input. Explicit
// non-positive durations are rejected; absent ones fall back to defaults.
func (p QuoteParams) ToQuoteInput() (pricing.QuoteInput, error) {
	hours := 0
	if p.DurationHours != nil {
		if *p.DurationHours < 1 {
			return pricing.QuoteInput{}, pricing.ErrInvalidDuration
		}
		hours = *p.DurationHours
	}

	days := 0
	if p.DurationDays != nil {
		if *p.DurationDays < 1 {
			return pricing.QuoteInput{}, pricing.ErrInvalidDuration
		}
		days = *p.DurationDays
	}

	return pricing.QuoteInput{
		Service:       p.ServiceType,
		DurationHours: hours,
		DurationDays:  days,
		Extras:        p.Extras,
		Payment:       p.PaymentMethod,
	}, nil
}

func (q *pricingQueriesImpl) BuildQuote(ctx context.Context, params QuoteParams) (*QuoteView, error) {
	input, err := params.ToQuoteInput()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDuration)
	}

	rule, err := q.rates.FindByVehicleType(ctx, params.VehicleType)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRateNotFound
		}
		return nil, errs.Mark(err, ErrPricingFailed)
	}

	catalog, err := q.extras.Catalog(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrPricingFailed)
	}

	now := q.clock.Now()

	// Quote-time promo failures degrade to "no discount" instead of erroring;
	// the zeroed promo fields stay visible in the breakdown.
	var promoEntity *promo.PromoCode
	if params.PromoCode != nil {
		promoEntity, err = q.lookupPromo(ctx, *params.PromoCode)
		if err != nil {
			return nil, err
		}
	}

	quote, err := pricing.BuildQuote(*rule, catalog, input, promoEntity, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDuration)
	}

	return toQuoteView(quote), nil
}

func (q *pricingQueriesImpl) ValidatePromo(ctx context.Context, code string, amount decimal.Decimal) (*PromoQuoteView, error) {
	snap, err := q.promos.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromoNotFound
		}
		return nil, errs.Mark(err, ErrPricingFailed)
	}

	entity, err := promoFromSnapshot(snap)
	if err != nil {
		return nil, errs.Mark(err, ErrPromoInvalid)
	}

	if err := entity.Validate(q.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrPromoInvalid)
	}

	discount := amount.Mul(entity.DiscountPercentage())

	return &PromoQuoteView{
		Code:               entity.Code(),
		Description:        entity.Description(),
		DiscountPercentage: entity.DiscountPercentage(),
		DiscountAmount:     discount,
		FinalAmount:        amount.Sub(discount),
	}, nil
}

// lookupPromo returns nil (not an error) when the code is unknown, so the
// quote proceeds without a discount.
func (q *pricingQueriesImpl) lookupPromo(ctx context.Context, code string) (*promo.PromoCode, error) {
	snap, err := q.promos.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrPricingFailed)
	}

	entity, err := promoFromSnapshot(snap)
	if err != nil {
		// A malformed stored promo should not break quoting.
		return nil, nil
	}
	return entity, nil
}

func promoFromSnapshot(snap *shared.PromoSnapshot) (*promo.PromoCode, error) {
	return promo.NewPromoCode(
		snap.ID,
		snap.Code,
		snap.DiscountPercentage,
		snap.Description,
		snap.ValidFrom,
		snap.ValidTo,
		snap.UsageLimit,
		snap.UsedCount,
		snap.Active,
	)
}

func toQuoteView(q pricing.Quote) *QuoteView {
	return &QuoteView{
		BasePrice:       q.BasePrice,
		ExtrasPrice:     q.ExtrasPrice,
		Subtotal:        q.Subtotal,
		PaymentDiscount: q.PaymentDiscount,
		PromoDiscount:   q.PromoDiscount,
		TotalDiscount:   q.TotalDiscount,
		TotalPrice:      q.TotalPrice,
		PromoApplied:    q.PromoCode != nil,
		PromoCode:       q.PromoCode,
		Breakdown:       q.Breakdown(),
	}
}
