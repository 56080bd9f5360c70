//go:build unit

package booking_test

import (
	"testing"
	"time"

	"riide-backend/internal/domain/booking"
	"riide-backend/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(booking.Booking{}),
	cmpopts.EquateEmpty(),
}

func validDetails() booking.Details {
	dest := "Marina Bay"
	return booking.Details{
		ServiceType:    pricing.ServiceChauffeur,
		VehicleType:    "Economy",
		PickupLocation: "Changi Airport",
		Destination:    &dest,
		PickupAt:       time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		Passengers:     2,
		Extras:         []string{"wifi"},
		PaymentMethod:  pricing.PaymentICP,
	}
}

func frozenQuote() pricing.Quote {
	return pricing.Quote{
		BasePrice:       decimal.NewFromInt(90),
		ExtrasPrice:     decimal.NewFromInt(5),
		Subtotal:        decimal.NewFromInt(95),
		PaymentDiscount: decimal.RequireFromString("14.25"),
		TotalDiscount:   decimal.RequireFromString("14.25"),
		TotalPrice:      decimal.RequireFromString("80.75"),
	}
}

func TestNewBooking(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		userID := uuid.New()

		b, err := booking.NewBooking(userID, validDetails(), frozenQuote())
		require.NoError(t, err)
		require.NotNil(t, b)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, userID, b.UserID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Nil(t, b.VehicleID())
		assert.Nil(t, b.DriverID())
		assert.True(t, b.IsOwnedBy(userID))
		assert.False(t, b.IsOwnedBy(uuid.New()))

		if diff := cmp.Diff(validDetails(), b.Details(), cmpOpts...); diff != "" {
			t.Errorf("Details mismatch (-want +got):\n%s", diff)
		}
		assert.True(t, b.Quote().TotalPrice.Equal(decimal.RequireFromString("80.75")))
	})

	t.Run("入力検証", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*booking.Details)
			errIs  error
		}{
			{
				name:   "乗客0名はNG",
				mutate: func(d *booking.Details) { d.Passengers = 0 },
				errIs:  booking.ErrInvalidPassengers,
			},
			{
				name:   "乗客数が負はNG",
				mutate: func(d *booking.Details) { d.Passengers = -2 },
				errIs:  booking.ErrInvalidPassengers,
			},
			{
				name:   "乗車地なしはNG",
				mutate: func(d *booking.Details) { d.PickupLocation = "" },
				errIs:  booking.ErrEmptyPickup,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				details := validDetails()
				tc.mutate(&details)

				_, err := booking.NewBooking(uuid.New(), details, frozenQuote())
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestReconstructBooking(t *testing.T) {
	t.Run("保存済み予約の復元", func(t *testing.T) {
		id := uuid.New()
		userID := uuid.New()
		vehicleID := uuid.New()
		createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		updatedAt := createdAt.Add(time.Hour)

		b := booking.ReconstructBooking(
			id, userID, &vehicleID, nil,
			validDetails(), frozenQuote(),
			booking.StatusConfirmed, createdAt, updatedAt,
		)

		assert.Equal(t, id, b.ID())
		assert.Equal(t, userID, b.UserID())
		require.NotNil(t, b.VehicleID())
		assert.Equal(t, vehicleID, *b.VehicleID())
		assert.Nil(t, b.DriverID())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, createdAt, b.CreatedAt())
		assert.Equal(t, updatedAt, b.UpdatedAt())
	})
}
