//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	reqdto "riide-backend/internal/handler/dto/request"
	"riide-backend/internal/usecase/commands"
	"riide-backend/internal/usecase/queries"
)

type BookingBuilder struct {
	UserID         uuid.UUID
	ServiceType    string
	VehicleType    string
	PickupLocation string
	Destination    *string
	PickupAt       time.Time
	DurationHours  *int
	Passengers     int
	Extras         []string
	PaymentMethod  string
	PromoCode      *string
}

func NewBookingBuilder() *BookingBuilder {
	hours := 2
	code := "RIIDE20"
	dest := "Marina Bay"
	return &BookingBuilder{
		UserID:         uuid.New(),
		ServiceType:    "chauffeur",
		VehicleType:    "Economy",
		PickupLocation: "Changi Airport",
		Destination:    &dest,
		PickupAt:       time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		DurationHours:  &hours,
		Passengers:     2,
		Extras:         []string{"wifi"},
		PaymentMethod:  "icp",
		PromoCode:      &code,
	}
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ServiceType:    b.ServiceType,
		VehicleType:    b.VehicleType,
		PickupLocation: b.PickupLocation,
		Destination:    b.Destination,
		PickupAt:       b.PickupAt,
		DurationHours:  b.DurationHours,
		Passengers:     b.Passengers,
		Extras:         b.Extras,
		PaymentMethod:  b.PaymentMethod,
		PromoCode:      b.PromoCode,
	}
}

func (b *BookingBuilder) BuildParams() commands.CreateBookingParams {
	return b.BuildDTO().ToParams()
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:              uuid.New(),
		UserID:          b.UserID,
		ServiceType:     b.ServiceType,
		VehicleType:     b.VehicleType,
		PickupLocation:  b.PickupLocation,
		Destination:     b.Destination,
		PickupAt:        b.PickupAt,
		Passengers:      b.Passengers,
		Extras:          b.Extras,
		PaymentMethod:   b.PaymentMethod,
		PromoCode:       b.PromoCode,
		BasePrice:       decimal.NewFromInt(90),
		ExtrasPrice:     decimal.NewFromInt(5),
		Subtotal:        decimal.NewFromInt(95),
		PaymentDiscount: decimal.RequireFromString("14.25"),
		PromoDiscount:   decimal.RequireFromString("19"),
		TotalDiscount:   decimal.RequireFromString("33.25"),
		TotalPrice:      decimal.RequireFromString("61.75"),
		Status:          "pending",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithUser(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithPromo(code string) *BookingBuilder {
	b.PromoCode = &code
	return b
}

func (b *BookingBuilder) WithoutPromo() *BookingBuilder {
	b.PromoCode = nil
	return b
}

func (b *BookingBuilder) WithPassengers(n int) *BookingBuilder {
	b.Passengers = n
	return b
}
