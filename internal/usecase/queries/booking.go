package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"riide-backend/internal/infra"
	"riide-backend/internal/pkg/errs"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrBookingForbidden = errs.New("booking belongs to another user")
	ErrBookingReads     = errs.New("booking read failed")
)

type BookingView struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	VehicleID       *uuid.UUID
	DriverID        *uuid.UUID
	ServiceType     string
	VehicleType     string
	PickupLocation  string
	Destination     *string
	PickupAt        time.Time
	ReturnAt        *time.Time
	Passengers      int
	Extras          []string
	PaymentMethod   string
	PromoCode       *string
	BasePrice       decimal.Decimal
	ExtrasPrice     decimal.Decimal
	Subtotal        decimal.Decimal
	PaymentDiscount decimal.Decimal
	PromoDiscount   decimal.Decimal
	TotalDiscount   decimal.Decimal
	TotalPrice      decimal.Decimal
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type BookingQueries interface {
	// GetByID enforces ownership: requesters only see their own bookings.
	GetByID(ctx context.Context, id, requesterID uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips the ownership check for internal read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id, requesterID uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}

	if view.UserID != requesterID {
		return nil, ErrBookingForbidden
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrBookingReads)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	views, err := q.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingReads)
	}
	return views, nil
}
