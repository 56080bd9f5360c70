package request

import "strings"

type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Name     string  `json:"name" binding:"required"`
	Phone    *string `json:"phone,omitempty"`
	Password string  `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r RegisterRequest) GetPhone() *string {
	if r.Phone == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Phone)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
