package writerepo

import (
	"context"

	"github.com/google/uuid"

	"riide-backend/internal/domain/booking"
	"riide-backend/internal/infra"
	"riide-backend/internal/infra/db"
	"riide-backend/internal/usecase/shared"
)

const insertBookingSQL = `
INSERT INTO bookings (
    id, user_id, vehicle_id, driver_id,
    service_type, vehicle_type, pickup_location, destination,
    pickup_at, return_at, passengers, extras, payment_method, promo_code,
    base_price, extras_price, subtotal,
    payment_discount, promo_discount, total_discount, total_price,
    status
) VALUES (
    $1, $2, $3, $4,
    $5, $6, $7, $8,
    $9, $10, $11, $12, $13, $14,
    $15, $16, $17,
    $18, $19, $20, $21,
    $22
)
RETURNING id`

type BookingRepository struct{}

func NewBookingRepository() shared.BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	d := b.Details()
	q := b.Quote()

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertBookingSQL,
		b.ID(), b.UserID(), b.VehicleID(), b.DriverID(),
		string(d.ServiceType), d.VehicleType, d.PickupLocation, d.Destination,
		d.PickupAt, d.ReturnAt, d.Passengers, d.Extras, string(d.PaymentMethod), d.PromoCode,
		q.BasePrice, q.ExtrasPrice, q.Subtotal,
		q.PaymentDiscount, q.PromoDiscount, q.TotalDiscount, q.TotalPrice,
		string(b.Status()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}
