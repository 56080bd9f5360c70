package response

import (
	"time"

	"github.com/google/uuid"

	"riide-backend/internal/usecase/commands"
	"riide-backend/internal/usecase/queries"
)

type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Phone         *string   `json:"phone,omitempty"`
	WalletAddress *string   `json:"walletAddress,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type AuthResponse struct {
	User        *UserResponse `json:"user"`
	AccessToken string        `json:"accessToken"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:            v.ID,
		Email:         v.Email,
		Name:          v.Name,
		Phone:         v.Phone,
		WalletAddress: v.WalletAddress,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromAuthResult(r *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		User:        FromUserView(r.User),
		AccessToken: r.AccessToken,
	}
}
