package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"riide-backend/internal/infra"
	"riide-backend/internal/infra/db"
	"riide-backend/internal/usecase/shared"
)

const selectUserSQL = `
SELECT id, email, name, phone, password_hash, wallet_address, created_at, updated_at
FROM users`

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	return r.scanUser(r.db.QueryRow(ctx, selectUserSQL+` WHERE id = $1`, id), "failed to find user by ID")
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	return r.scanUser(r.db.QueryRow(ctx, selectUserSQL+` WHERE email = $1`, email), "failed to find user by email")
}

func (r *UserReadStore) scanUser(row pgx.Row, failMsg string) (*shared.UserSnapshot, error) {
	var snap shared.UserSnapshot
	err := row.Scan(
		&snap.ID, &snap.Email, &snap.Name, &snap.Phone,
		&snap.PasswordHash, &snap.WalletAddress, &snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(failMsg, err)
	}
	return &snap, nil
}
