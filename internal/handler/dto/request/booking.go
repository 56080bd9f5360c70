package request

import (
	"strings"
	"time"

	"riide-backend/internal/domain/pricing"
	"riide-backend/internal/usecase/commands"
)

type CreateBookingRequest struct {
	ServiceType    string     `json:"service_type" binding:"required,oneof=chauffeur rental"`
	VehicleType    string     `json:"vehicle_type" binding:"required"`
	PickupLocation string     `json:"pickup_location" binding:"required"`
	Destination    *string    `json:"destination,omitempty"`
	PickupAt       time.Time  `json:"pickup_at" binding:"required"`
	ReturnAt       *time.Time `json:"return_at,omitempty"`
	DurationHours  *int       `json:"duration_hours,omitempty"`
	DurationDays   *int       `json:"duration_days,omitempty"`
	Passengers     int        `json:"passengers" binding:"required,min=1"`
	Extras         []string   `json:"extras,omitempty"`
	PaymentMethod  string     `json:"payment_method" binding:"required"`
	PromoCode      *string    `json:"promo_code,omitempty"`
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		ServiceType:    pricing.ServiceType(r.ServiceType),
		VehicleType:    r.VehicleType,
		PickupLocation: strings.TrimSpace(r.PickupLocation),
		Destination:    r.Destination,
		PickupAt:       r.PickupAt,
		ReturnAt:       r.ReturnAt,
		DurationHours:  r.DurationHours,
		DurationDays:   r.DurationDays,
		Passengers:     r.Passengers,
		Extras:         r.Extras,
		PaymentMethod:  pricing.PaymentMethod(r.PaymentMethod),
		PromoCode:      r.GetPromoCode(),
	}
}

func (r CreateBookingRequest) GetPromoCode() *string {
	if r.PromoCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.PromoCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
