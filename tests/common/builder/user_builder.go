//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"

	reqdto "riide-backend/internal/handler/dto/request"
	"riide-backend/internal/usecase/queries"
	"riide-backend/internal/usecase/shared"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	Name     string
	Phone    *string
	Password string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "rider@example.com",
		Name:     "Test Rider",
		Password: "password123",
	}
}

func (b *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    b.Email,
		Name:     b.Name,
		Phone:    b.Phone,
		Password: b.Password,
	}
}

func (b *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *UserBuilder) BuildView() *queries.UserView {
	now := time.Now()
	return &queries.UserView{
		ID:        b.ID,
		Email:     b.Email,
		Name:      b.Name,
		Phone:     b.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	now := time.Now()
	return &shared.UserSnapshot{
		ID:           b.ID,
		Email:        b.Email,
		Name:         b.Name,
		Phone:        b.Phone,
		PasswordHash: "$2a$10$examplehashexamplehashexampleha",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Fluent builder methods
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.Password = password
	return b
}

func (b *UserBuilder) WithPhone(phone string) *UserBuilder {
	b.Phone = &phone
	return b
}
