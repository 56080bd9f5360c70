package response

import (
	"time"

	"github.com/google/uuid"

	"riide-backend/internal/usecase/queries"
)

type BookingResponse struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"userId"`
	VehicleID       *uuid.UUID `json:"vehicleId,omitempty"`
	DriverID        *uuid.UUID `json:"driverId,omitempty"`
	ServiceType     string     `json:"serviceType"`
	VehicleType     string     `json:"vehicleType"`
	PickupLocation  string     `json:"pickupLocation"`
	Destination     *string    `json:"destination,omitempty"`
	PickupAt        time.Time  `json:"pickupAt"`
	ReturnAt        *time.Time `json:"returnAt,omitempty"`
	Passengers      int        `json:"passengers"`
	Extras          []string   `json:"extras"`
	PaymentMethod   string     `json:"paymentMethod"`
	PromoCode       *string    `json:"promoCode,omitempty"`
	BasePrice       string     `json:"basePrice"`
	ExtrasPrice     string     `json:"extrasPrice"`
	Subtotal        string     `json:"subtotal"`
	PaymentDiscount string     `json:"paymentDiscount"`
	PromoDiscount   string     `json:"promoDiscount"`
	TotalDiscount   string     `json:"totalDiscount"`
	TotalPrice      string     `json:"totalPrice"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID,
		UserID:          v.UserID,
		VehicleID:       v.VehicleID,
		DriverID:        v.DriverID,
		ServiceType:     v.ServiceType,
		VehicleType:     v.VehicleType,
		PickupLocation:  v.PickupLocation,
		Destination:     v.Destination,
		PickupAt:        v.PickupAt,
		ReturnAt:        v.ReturnAt,
		Passengers:      v.Passengers,
		Extras:          v.Extras,
		PaymentMethod:   v.PaymentMethod,
		PromoCode:       v.PromoCode,
		BasePrice:       v.BasePrice.StringFixed(2),
		ExtrasPrice:     v.ExtrasPrice.StringFixed(2),
		Subtotal:        v.Subtotal.StringFixed(2),
		PaymentDiscount: v.PaymentDiscount.StringFixed(2),
		PromoDiscount:   v.PromoDiscount.StringFixed(2),
		TotalDiscount:   v.TotalDiscount.StringFixed(2),
		TotalPrice:      v.TotalPrice.StringFixed(2),
		Status:          v.Status,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	responses := make([]*BookingResponse, len(views))
	for i, v := range views {
		responses[i] = FromBookingView(v)
	}
	return responses
}
