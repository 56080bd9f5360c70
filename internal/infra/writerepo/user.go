package writerepo

import (
	"context"

	"github.com/google/uuid"

	"riide-backend/internal/domain/user"
	"riide-backend/internal/infra"
	"riide-backend/internal/infra/db"
	"riide-backend/internal/usecase/shared"
)

const insertUserSQL = `
INSERT INTO users (id, email, name, phone, password_hash)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

type UserRepository struct{}

func NewUserRepository() shared.UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertUserSQL,
		u.ID(), u.Email().String(), u.Name().String(), u.Phone(), u.PasswordHash(),
	).Scan(&id)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}
