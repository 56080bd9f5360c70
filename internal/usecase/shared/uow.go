package shared

import (
	"context"

	"github.com/google/uuid"

	"riide-backend/internal/domain/booking"
	"riide-backend/internal/domain/user"
	"riide-backend/internal/infra/db"
)

type UnitOfWork interface {
	// Within runs fn in a read-committed transaction with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB runs single-statement operations on the pool's implicit
	// transaction.
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Promos() PromoUsageRepository
	Users() UserRepository
	DB() db.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
}

type PromoUsageRepository interface {
	// TryIncrementUsage advances used_count by one as a single conditional
	// update; it reports false when the quota is already exhausted. This is
	// the only write path for promo counters.
	TryIncrementUsage(ctx context.Context, dbtx db.DBTX, promoID uuid.UUID) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error)
}
