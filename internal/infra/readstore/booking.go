package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"riide-backend/internal/infra"
	"riide-backend/internal/infra/db"
	"riide-backend/internal/usecase/queries"
)

const selectBookingSQL = `
SELECT id, user_id, vehicle_id, driver_id,
       service_type, vehicle_type, pickup_location, destination,
       pickup_at, return_at, passengers, extras, payment_method, promo_code,
       base_price, extras_price, subtotal,
       payment_discount, promo_discount, total_discount, total_price,
       status, created_at, updated_at
FROM bookings`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, selectBookingSQL+` WHERE id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return view, nil
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, selectBookingSQL+` WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.UserID, &v.VehicleID, &v.DriverID,
		&v.ServiceType, &v.VehicleType, &v.PickupLocation, &v.Destination,
		&v.PickupAt, &v.ReturnAt, &v.Passengers, &v.Extras, &v.PaymentMethod, &v.PromoCode,
		&v.BasePrice, &v.ExtrasPrice, &v.Subtotal,
		&v.PaymentDiscount, &v.PromoDiscount, &v.TotalDiscount, &v.TotalPrice,
		&v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
