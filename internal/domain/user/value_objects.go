package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrEmptyName    = errors.New("name is required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email string

func NewEmail(raw string) (Email, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if !emailRegex.MatchString(raw) {
		return Email(""), ErrInvalidEmail
	}
	return Email(raw), nil
}

func (e Email) String() string {
	return string(e)
}

type Name string

func NewName(raw string) (Name, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Name(""), ErrEmptyName
	}
	return Name(raw), nil
}

func (n Name) String() string {
	return string(n)
}
