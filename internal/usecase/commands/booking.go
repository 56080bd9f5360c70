package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"riide-backend/internal/domain/booking"
	"riide-backend/internal/domain/pricing"
	"riide-backend/internal/domain/promo"
	"riide-backend/internal/infra"
	"riide-backend/internal/pkg/clock"
	"riide-backend/internal/pkg/errs"
	"riide-backend/internal/usecase/queries"
	"riide-backend/internal/usecase/shared"
)

var (
	ErrRateNotFound            = errs.New("no rate rule for vehicle type")
	ErrPromoInvalid            = errs.New("promo code rejected")
	ErrInvalidDuration         = errs.New("invalid duration")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingParams struct {
	ServiceType    pricing.ServiceType
	VehicleType    string
	PickupLocation string
	Destination    *string
	PickupAt       time.Time
	ReturnAt       *time.Time
	DurationHours  *int
	DurationDays   *int
	Passengers     int
	Extras         []string
	PaymentMethod  pricing.PaymentMethod
	PromoCode      *string
}

type BookingCommands interface {
	// CreateBooking re-derives the price server-side; a quote previously
	// shown to the client is never trusted.
	CreateBooking(ctx context.Context, userID uuid.UUID, params CreateBookingParams) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	rates          queries.RateReadStore
	extras         queries.ExtrasReadStore
	promos         queries.PromoReadStore
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(
	rates queries.RateReadStore,
	extras queries.ExtrasReadStore,
	promos queries.PromoReadStore,
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		rates:          rates,
		extras:         extras,
		promos:         promos,
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, userID uuid.UUID, params CreateBookingParams) (*queries.BookingView, error) {
	input, err := params.toQuoteParams().ToQuoteInput()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDuration)
	}

	rule, err := c.rates.FindByVehicleType(ctx, params.VehicleType)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRateNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	catalog, err := c.extras.Catalog(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := c.clock.Now()

	// Unlike quoting, finalization rejects an ineligible code outright: the
	// caller asked to redeem it and must learn it did not apply.
	promoEntity, err := c.validatePromo(ctx, params.PromoCode, now)
	if err != nil {
		return nil, err
	}

	quote, err := pricing.BuildQuote(*rule, catalog, input, promoEntity, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDuration)
	}

	entity, err := booking.NewBooking(userID, params.toDetails(), quote)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		bookingID = id

		// The conditional increment runs in the same transaction as the
		// booking insert: losing the quota race rolls the booking back, and
		// an increment can never exist without its booking.
		if promoEntity != nil {
			ok, incErr := tx.Promos().TryIncrementUsage(ctx, tx.DB(), promoEntity.ID())
			if incErr != nil {
				return errs.Mark(incErr, ErrDatabaseOperationFailed)
			}
			if !ok {
				return ErrPromoInvalid
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) validatePromo(ctx context.Context, code *string, now time.Time) (*promo.PromoCode, error) {
	if code == nil {
		return nil, nil
	}

	snap, err := c.promos.FindByCode(ctx, *code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromoInvalid
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := promo.NewPromoCode(
		snap.ID,
		snap.Code,
		snap.DiscountPercentage,
		snap.Description,
		snap.ValidFrom,
		snap.ValidTo,
		snap.UsageLimit,
		snap.UsedCount,
		snap.Active,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrPromoInvalid)
	}

	if err := entity.Validate(now); err != nil {
		return nil, errs.Mark(err, ErrPromoInvalid)
	}
	return entity, nil
}

func (p CreateBookingParams) toQuoteParams() queries.QuoteParams {
	return queries.QuoteParams{
		VehicleType:   p.VehicleType,
		ServiceType:   p.ServiceType,
		DurationHours: p.DurationHours,
		DurationDays:  p.DurationDays,
		Extras:        p.Extras,
		PaymentMethod: p.PaymentMethod,
		PromoCode:     p.PromoCode,
	}
}

func (p CreateBookingParams) toDetails() booking.Details {
	return booking.Details{
		ServiceType:    p.ServiceType,
		VehicleType:    p.VehicleType,
		PickupLocation: p.PickupLocation,
		Destination:    p.Destination,
		PickupAt:       p.PickupAt,
		ReturnAt:       p.ReturnAt,
		Passengers:     p.Passengers,
		Extras:         p.Extras,
		PaymentMethod:  p.PaymentMethod,
		PromoCode:      p.PromoCode,
	}
}
