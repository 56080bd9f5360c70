package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"riide-backend/internal/infra"
	"riide-backend/internal/pkg/errs"
	"riide-backend/internal/usecase/shared"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserReads    = errs.New("user read failed")
)

type UserView struct {
	ID            uuid.UUID
	Email         string
	Name          string
	Phone         *string
	WalletAddress *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error)
	FindByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error)
}

type UserQueries interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetProfile(ctx context.Context, id uuid.UUID) (*UserView, error) {
	snap, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrUserReads)
	}

	return &UserView{
		ID:            snap.ID,
		Email:         snap.Email,
		Name:          snap.Name,
		Phone:         snap.Phone,
		WalletAddress: snap.WalletAddress,
		CreatedAt:     snap.CreatedAt,
		UpdatedAt:     snap.UpdatedAt,
	}, nil
}
