//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"riide-backend/internal/infra"
	"riide-backend/internal/pkg/jwt"
	"riide-backend/internal/pkg/password"
	"riide-backend/internal/usecase/commands"
	"riide-backend/internal/usecase/shared"
	"riide-backend/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserReadStore struct {
	snaps map[string]*shared.UserSnapshot
}

func (f *fakeUserReadStore) FindByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	if snap, ok := f.snaps[email]; ok {
		return snap, nil
	}
	return nil, infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)
}

func (f *fakeUserReadStore) FindByID(_ context.Context, _ uuid.UUID) (*shared.UserSnapshot, error) {
	return nil, infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)
}

func newAuthFixture(snaps map[string]*shared.UserSnapshot, userCreateErr error) commands.AuthCommands {
	return commands.NewAuthCommands(
		&fakeUserReadStore{snaps: snaps},
		&fakeUoW{store: newMemStore(0, 0), userCreateErr: userCreateErr},
		jwt.NewService("test-secret", time.Hour),
	)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("登録成功でトークンを発行する", func(t *testing.T) {
		ub := builder.NewUserBuilder()
		snap := ub.BuildSnapshot()
		auth := newAuthFixture(map[string]*shared.UserSnapshot{snap.Email: snap}, nil)

		result, err := auth.Register(ctx, commands.RegisterParams{
			Email:    ub.Email,
			Name:     ub.Name,
			Password: ub.Password,
		})
		require.NoError(t, err)

		assert.Equal(t, snap.Email, result.User.Email)
		assert.NotEmpty(t, result.AccessToken)
	})

	t.Run("メールアドレスは小文字化して扱う", func(t *testing.T) {
		ub := builder.NewUserBuilder()
		snap := ub.BuildSnapshot()
		auth := newAuthFixture(map[string]*shared.UserSnapshot{snap.Email: snap}, nil)

		result, err := auth.Register(ctx, commands.RegisterParams{
			Email:    "Rider@Example.COM",
			Name:     ub.Name,
			Password: ub.Password,
		})
		require.NoError(t, err)
		assert.Equal(t, "rider@example.com", result.User.Email)
	})

	t.Run("重複メールはErrEmailAlreadyTaken", func(t *testing.T) {
		dup := infra.WrapRepoErr("duplicate", errors.New("23505"), infra.KindDuplicateKey)
		auth := newAuthFixture(nil, dup)

		_, err := auth.Register(ctx, commands.RegisterParams{
			Email:    "rider@example.com",
			Name:     "Test Rider",
			Password: "password123",
		})
		assert.ErrorIs(t, err, commands.ErrEmailAlreadyTaken)
	})

	t.Run("入力検証エラー", func(t *testing.T) {
		auth := newAuthFixture(nil, nil)

		cases := []struct {
			name   string
			params commands.RegisterParams
		}{
			{name: "不正なメール", params: commands.RegisterParams{Email: "nope", Name: "Test", Password: "password123"}},
			{name: "空の名前", params: commands.RegisterParams{Email: "a@example.com", Name: "  ", Password: "password123"}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := auth.Register(ctx, tc.params)
				assert.ErrorIs(t, err, commands.ErrValidation)
			})
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, email, plain string) map[string]*shared.UserSnapshot {
		t.Helper()
		hash, err := password.HashPassword(plain)
		require.NoError(t, err)
		snap := builder.NewUserBuilder().WithEmail(email).BuildSnapshot()
		snap.PasswordHash = hash
		return map[string]*shared.UserSnapshot{email: snap}
	}

	t.Run("正しい資格情報でログインできる", func(t *testing.T) {
		auth := newAuthFixture(seed(t, "rider@example.com", "password123"), nil)

		result, err := auth.Login(ctx, commands.LoginParams{Email: "rider@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, "rider@example.com", result.User.Email)
		assert.NotEmpty(t, result.AccessToken)
	})

	t.Run("認証失敗はすべてErrInvalidCredentials", func(t *testing.T) {
		snaps := seed(t, "rider@example.com", "password123")

		cases := []struct {
			name   string
			params commands.LoginParams
		}{
			{name: "存在しないユーザー", params: commands.LoginParams{Email: "ghost@example.com", Password: "password123"}},
			{name: "誤ったパスワード", params: commands.LoginParams{Email: "rider@example.com", Password: "wrong-password"}},
			{name: "不正なメール形式", params: commands.LoginParams{Email: "not-an-email", Password: "password123"}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				auth := newAuthFixture(snaps, nil)
				_, err := auth.Login(ctx, tc.params)
				assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
			})
		}
	})
}
