package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity, currently used for auth and booking ownership.
type User struct {
	id            uuid.UUID
	email         Email
	name          Name
	phone         *string
	passwordHash  string
	walletAddress *string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewUser(email Email, name Name, phone *string, passwordHash string) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		name:         name,
		phone:        phone,
		passwordHash: passwordHash,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	name Name,
	phone *string,
	passwordHash string,
	walletAddress *string,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:            id,
		email:         email,
		name:          name,
		phone:         phone,
		passwordHash:  passwordHash,
		walletAddress: walletAddress,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) Email() Email           { return u.email }
func (u *User) Name() Name             { return u.name }
func (u *User) Phone() *string         { return u.phone }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) WalletAddress() *string { return u.walletAddress }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) UpdatedAt() time.Time   { return u.updatedAt }
