package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"riide-backend/internal/domain/pricing"
)

var (
	ErrInvalidPassengers = errors.New("passenger count must be at least 1")
	ErrEmptyPickup       = errors.New("pickup location is required")
)

// Details are the trip parameters supplied by the user. Vehicle and driver
// assignment happen later in the dispatch workflow and start out nil.
type Details struct {
	ServiceType    pricing.ServiceType
	VehicleType    string
	PickupLocation string
	Destination    *string // chauffeur service only
	PickupAt       time.Time
	ReturnAt       *time.Time // rental service only
	Passengers     int
	Extras         []string
	PaymentMethod  pricing.PaymentMethod
	PromoCode      *string
}

// Booking is a committed reservation. The price quote is frozen at creation
// and never recomputed afterwards.
type Booking struct {
	id        uuid.UUID
	userID    uuid.UUID
	vehicleID *uuid.UUID
	driverID  *uuid.UUID
	details   Details
	quote     pricing.Quote
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(userID uuid.UUID, details Details, quote pricing.Quote) (*Booking, error) {
	if details.Passengers < 1 {
		return nil, ErrInvalidPassengers
	}
	if details.PickupLocation == "" {
		return nil, ErrEmptyPickup
	}

	return &Booking{
		id:      uuid.New(),
		userID:  userID,
		details: details,
		quote:   quote,
		status:  StatusPending,
	}, nil
}

func ReconstructBooking(
	id, userID uuid.UUID,
	vehicleID, driverID *uuid.UUID,
	details Details,
	quote pricing.Quote,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		userID:    userID,
		vehicleID: vehicleID,
		driverID:  driverID,
		details:   details,
		quote:     quote,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) UserID() uuid.UUID     { return b.userID }
func (b *Booking) VehicleID() *uuid.UUID { return b.vehicleID }
func (b *Booking) DriverID() *uuid.UUID  { return b.driverID }
func (b *Booking) Details() Details      { return b.details }
func (b *Booking) Quote() pricing.Quote  { return b.quote }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
