package pricing

import "github.com/shopspring/decimal"

type ServiceType string

const (
	ServiceChauffeur ServiceType = "chauffeur"
	ServiceRental    ServiceType = "rental"
)

func (s ServiceType) String() string {
	return string(s)
}

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceChauffeur, ServiceRental:
		return true
	default:
		return false
	}
}

// RateRule is immutable reference data, one rule per vehicle type.
type RateRule struct {
	VehicleType  string
	HourlyRate   decimal.Decimal
	DailyRate    decimal.Decimal
	DistanceRate decimal.Decimal
}

// Extra is a catalog add-on, keyed by name.
type Extra struct {
	Name        string
	Price       decimal.Decimal
	Description string
}
