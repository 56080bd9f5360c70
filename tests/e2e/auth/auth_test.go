//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	resdto "riide-backend/internal/handler/dto/response"
	"riide-backend/tests/common/builder"
	"riide-backend/tests/common/httptest"
	"riide-backend/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	profileURL  = "/api/auth/profile"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestRegisterLoginProfile() {
	s.Run("register, login and fetch the profile", func() {
		ub := builder.NewUserBuilder().WithEmail("flow@example.com")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, ub.BuildRegisterDTO(), "")
		var registered resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &registered)
		s.Equal("flow@example.com", registered.User.Email)
		s.NotEmpty(registered.AccessToken)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, ub.BuildLoginDTO(), "")
		var loggedIn resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &loggedIn)
		s.NotEmpty(loggedIn.AccessToken)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, profileURL, nil, loggedIn.AccessToken)
		var profile resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &profile)
		s.Equal(registered.User.ID, profile.ID)
	})

	s.Run("duplicate email registration conflicts", func() {
		ub := builder.NewUserBuilder().WithEmail("taken@example.com")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, ub.BuildRegisterDTO(), "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, ub.BuildRegisterDTO(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})

	s.Run("wrong password is rejected", func() {
		ub := builder.NewUserBuilder().WithEmail("secure@example.com")
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, ub.BuildRegisterDTO(), "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			ub.WithPassword("not-the-password").BuildLoginDTO(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})
}
