package commands

import (
	"context"

	"riide-backend/internal/domain/user"
	"riide-backend/internal/infra"
	"riide-backend/internal/pkg/errs"
	"riide-backend/internal/pkg/jwt"
	"riide-backend/internal/pkg/password"
	"riide-backend/internal/usecase/queries"
	"riide-backend/internal/usecase/shared"
)

var (
	ErrEmailAlreadyTaken  = errs.New("email already registered")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrValidation         = errs.New("validation error")
)

type RegisterParams struct {
	Email    string
	Name     string
	Phone    *string
	Password string
}

type LoginParams struct {
	Email    string
	Password string
}

type AuthResult struct {
	User        *queries.UserView
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, params RegisterParams) (*AuthResult, error)
	Login(ctx context.Context, params LoginParams) (*AuthResult, error)
}

type authCommandsImpl struct {
	users queries.UserReadStore
	uow   shared.UnitOfWork
	jwt   *jwt.Service
}

func NewAuthCommands(users queries.UserReadStore, uow shared.UnitOfWork, jwtSvc *jwt.Service) AuthCommands {
	return &authCommandsImpl{users: users, uow: uow, jwt: jwtSvc}
}

func (c *authCommandsImpl) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	name, err := user.NewName(params.Name)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	hash, err := password.HashPassword(params.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	entity := user.NewUser(email, name, params.Phone, hash)

	// The unique index on email is the arbiter; a pre-check would only
	// narrow the race window, not close it.
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, createErr := tx.Users().Create(ctx, tx.DB(), entity); createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return ErrEmailAlreadyTaken
			}
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.issueToken(ctx, email.String())
}

func (c *authCommandsImpl) Login(ctx context.Context, params LoginParams) (*AuthResult, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	snap, err := c.users.FindByEmail(ctx, email.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(snap.PasswordHash, params.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return c.toAuthResult(snap)
}

func (c *authCommandsImpl) issueToken(ctx context.Context, email string) (*AuthResult, error) {
	snap, err := c.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c.toAuthResult(snap)
}

func (c *authCommandsImpl) toAuthResult(snap *shared.UserSnapshot) (*AuthResult, error) {
	token, err := c.jwt.GenerateToken(snap.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &AuthResult{
		User: &queries.UserView{
			ID:            snap.ID,
			Email:         snap.Email,
			Name:          snap.Name,
			Phone:         snap.Phone,
			WalletAddress: snap.WalletAddress,
			CreatedAt:     snap.CreatedAt,
			UpdatedAt:     snap.UpdatedAt,
		},
		AccessToken: token,
	}, nil
}
