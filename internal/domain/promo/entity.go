package promo

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDiscount = errors.New("discount percentage must be between 0 and 1")
	ErrInvalidLimit    = errors.New("usage limit cannot be negative")

	// ErrNotEligible is the common sentinel for every ineligibility reason;
	// errors.Is(err, ErrNotEligible) matches all of the variants below.
	ErrNotEligible = errors.New("promo code is not eligible")
	ErrInactive    = fmt.Errorf("%w: inactive", ErrNotEligible)
	ErrNotYetValid = fmt.Errorf("%w: not yet valid", ErrNotEligible)
	ErrExpired     = fmt.Errorf("%w: expired", ErrNotEligible)
	ErrExhausted   = fmt.Errorf("%w: usage limit reached", ErrNotEligible)
)

// PromoCode is a time-boxed, usage-capped percentage discount token.
// UsedCount is only ever advanced by the booking finalizer through an atomic
// conditional update in the store; this entity never mutates it.
type PromoCode struct {
	id          uuid.UUID
	code        string
	discountPct decimal.Decimal
	description string
	validFrom   time.Time
	validTo     time.Time
	usageLimit  int
	usedCount   int
	active      bool
}

func NewPromoCode(
	id uuid.UUID,
	code string,
	discountPct decimal.Decimal,
	description string,
	validFrom, validTo time.Time,
	usageLimit, usedCount int,
	active bool,
) (*PromoCode, error) {
	if discountPct.IsNegative() || discountPct.GreaterThan(decimal.NewFromInt(1)) {
		return nil, ErrInvalidDiscount
	}
	if usageLimit < 0 || usedCount < 0 {
		return nil, ErrInvalidLimit
	}

	return &PromoCode{
		id:          id,
		code:        code,
		discountPct: discountPct,
		description: description,
		validFrom:   validFrom,
		validTo:     validTo,
		usageLimit:  usageLimit,
		usedCount:   usedCount,
		active:      active,
	}, nil
}

// Validate reports why the code cannot be redeemed at t, or nil when it can.
// The window check is inclusive on both ends.
func (p *PromoCode) Validate(t time.Time) error {
	if !p.active {
		return ErrInactive
	}
	if t.Before(p.validFrom) {
		return ErrNotYetValid
	}
	if t.After(p.validTo) {
		return ErrExpired
	}
	if p.usedCount >= p.usageLimit {
		return ErrExhausted
	}
	return nil
}

func (p *PromoCode) Eligible(t time.Time) bool {
	return p.Validate(t) == nil
}

func (p *PromoCode) ID() uuid.UUID                       { return p.id }
func (p *PromoCode) Code() string                        { return p.code }
func (p *PromoCode) DiscountPercentage() decimal.Decimal { return p.discountPct }
func (p *PromoCode) Description() string                 { return p.description }
func (p *PromoCode) ValidFrom() time.Time                { return p.validFrom }
func (p *PromoCode) ValidTo() time.Time                  { return p.validTo }
func (p *PromoCode) UsageLimit() int                     { return p.usageLimit }
func (p *PromoCode) UsedCount() int                      { return p.usedCount }
func (p *PromoCode) Active() bool                        { return p.active }

// Remaining is the number of redemptions still available.
func (p *PromoCode) Remaining() int {
	if p.usedCount >= p.usageLimit {
		return 0
	}
	return p.usageLimit - p.usedCount
}
