package request

import (
	"strings"

	"github.com/shopspring/decimal"

	"riide-backend/internal/domain/pricing"
	"riide-backend/internal/usecase/queries"
)

type QuoteRequest struct {
	VehicleType   string   `json:"vehicle_type" binding:"required"`
	ServiceType   string   `json:"service_type" binding:"required,oneof=chauffeur rental"`
	DurationHours *int     `json:"duration_hours,omitempty"`
	DurationDays  *int     `json:"duration_days,omitempty"`
	Extras        []string `json:"extras,omitempty"`
	PaymentMethod string   `json:"payment_method,omitempty"`
	PromoCode     *string  `json:"promo_code,omitempty"`
}

func (r QuoteRequest) ToParams() queries.QuoteParams {
	return queries.QuoteParams{
		VehicleType:   r.VehicleType,
		ServiceType:   pricing.ServiceType(r.ServiceType),
		DurationHours: r.DurationHours,
		DurationDays:  r.DurationDays,
		Extras:        r.Extras,
		PaymentMethod: pricing.PaymentMethod(r.PaymentMethod),
		PromoCode:     r.GetPromoCode(),
	}
}

// GetPromoCode trims surrounding whitespace only; the code itself stays
// case-sensitive.
func (r QuoteRequest) GetPromoCode() *string {
	if r.PromoCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.PromoCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type ValidatePromoRequest struct {
	Code   string          `json:"code" binding:"required"`
	Amount decimal.Decimal `json:"booking_amount" binding:"required"`
}
