//go:build unit || e2e

package builder

import (
	"github.com/shopspring/decimal"

	"riide-backend/internal/domain/pricing"
	reqdto "riide-backend/internal/handler/dto/request"
	"riide-backend/internal/usecase/queries"
)

// QuoteBuilder defaults reproduce the canonical worked example: Economy at
// 45/h for 2 hours plus wifi (5) gives a 95 subtotal; icp (15%) and RIIDE20
// (20%) stack to 33.25 off, total 61.75.
type QuoteBuilder struct {
	VehicleType   string
	ServiceType   string
	DurationHours *int
	DurationDays  *int
	Extras        []string
	PaymentMethod string
	PromoCode     *string
}

func NewQuoteBuilder() *QuoteBuilder {
	hours := 2
	code := "RIIDE20"
	return &QuoteBuilder{
		VehicleType:   "Economy",
		ServiceType:   "chauffeur",
		DurationHours: &hours,
		Extras:        []string{"wifi"},
		PaymentMethod: "icp",
		PromoCode:     &code,
	}
}

func (b *QuoteBuilder) BuildDTO() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{
		VehicleType:   b.VehicleType,
		ServiceType:   b.ServiceType,
		DurationHours: b.DurationHours,
		DurationDays:  b.DurationDays,
		Extras:        b.Extras,
		PaymentMethod: b.PaymentMethod,
		PromoCode:     b.PromoCode,
	}
}

func (b *QuoteBuilder) BuildParams() queries.QuoteParams {
	return b.BuildDTO().ToParams()
}

func (b *QuoteBuilder) BuildRateRule() *pricing.RateRule {
	return &pricing.RateRule{
		VehicleType:  b.VehicleType,
		HourlyRate:   decimal.NewFromInt(45),
		DailyRate:    decimal.NewFromInt(320),
		DistanceRate: decimal.Zero,
	}
}

func (b *QuoteBuilder) BuildCatalog() map[string]pricing.Extra {
	return map[string]pricing.Extra{
		"childSeat": {Name: "childSeat", Price: decimal.NewFromInt(15), Description: "Child safety seat"},
		"meetGreet": {Name: "meetGreet", Price: decimal.NewFromInt(25), Description: "Meet and greet at arrivals"},
		"luggage":   {Name: "luggage", Price: decimal.NewFromInt(10), Description: "Extra luggage capacity"},
		"wifi":      {Name: "wifi", Price: decimal.NewFromInt(5), Description: "Onboard Wi-Fi hotspot"},
	}
}

// Fluent builder methods
func (b *QuoteBuilder) WithVehicleType(vt string) *QuoteBuilder {
	b.VehicleType = vt
	return b
}

func (b *QuoteBuilder) WithService(st string) *QuoteBuilder {
	b.ServiceType = st
	return b
}

func (b *QuoteBuilder) WithHours(h int) *QuoteBuilder {
	b.DurationHours = &h
	return b
}

func (b *QuoteBuilder) WithDays(d int) *QuoteBuilder {
	b.DurationDays = &d
	return b
}

func (b *QuoteBuilder) WithExtras(extras ...string) *QuoteBuilder {
	b.Extras = extras
	return b
}

func (b *QuoteBuilder) WithPayment(method string) *QuoteBuilder {
	b.PaymentMethod = method
	return b
}

func (b *QuoteBuilder) WithPromo(code string) *QuoteBuilder {
	b.PromoCode = &code
	return b
}

func (b *QuoteBuilder) WithoutPromo() *QuoteBuilder {
	b.PromoCode = nil
	return b
}
