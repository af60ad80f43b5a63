//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"oceanview-backend/internal/domain/user"
	"oceanview-backend/internal/handler/dto/request"
	"oceanview-backend/internal/handler/dto/response"
	"oceanview-backend/internal/usecase/queries"
	"oceanview-backend/tests/common/authtest"
	"oceanview-backend/tests/common/dbtest"
	"oceanview-backend/tests/common/httptest"
	"oceanview-backend/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL       = "/api/auth/register"
	loginURL          = "/api/auth/login"
	logoutURL         = "/api/auth/logout"
	meURL             = "/api/auth/me"
	forgotPasswordURL = "/api/auth/forgot-password"
	resetPasswordURL  = "/api/auth/reset-password"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	dbtest.CreateTestUser(s.T(), s.DB, "test@example.com", string(user.RoleGuest))
}

func (s *authSuite) TestRegister() {
	s.Run("Normal case: New account starts as guest regardless of input", func() {
		t := s.T()

		reqBody := request.RegisterRequest{
			Name:     "Alice Carter",
			Email:    "alice@example.com",
			Password: "password123",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res response.RegisterResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "alice@example.com", res.User.Email)
		require.Equal(t, string(user.RoleGuest), res.User.Role)
	})

	s.Run("Error case: Duplicate email is rejected with conflict", func() {
		t := s.T()

		reqBody := request.RegisterRequest{
			Name:     "Another Tester",
			Email:    "test@example.com",
			Password: "password123",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Error case: Short password fails validation", func() {
		t := s.T()

		reqBody := request.RegisterRequest{
			Name:     "Bob",
			Email:    "bob@example.com",
			Password: "short",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "Valid credentials",
			email:          "test@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "Should log in with valid credentials",
		},
		{
			name:           "Unknown user",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "Unknown address should fail the same way as a bad password",
		},
		{
			name:           "Wrong password",
			email:          "test@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "Wrong password should be rejected",
		},
		{
			name:           "Empty email",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "Empty email should fail binding",
		},
		{
			name:           "Empty password",
			email:          "test@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "Empty password should fail binding",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				accessCookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, accessCookie, "Access token cookie should be set")
				require.NotEmpty(t, accessCookie.Value)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("Normal case: Returns the authenticated user", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "test@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me queries.AuthorizedUserView
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
		require.Equal(t, "test@example.com", me.Email)
		require.Equal(t, string(user.RoleGuest), me.Role)
	})

	s.Run("Auth test - Unauthorized without token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("Normal case: Logout clears token cookies", func() {
		t := s.T()

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "test@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, lw.Code)

		cookies := httptest.ExtractCookies(lw)
		authtest.LogoutUser(t, s.Router, cookies)
	})
}

func (s *authSuite) TestPasswordReset() {
	s.Run("Normal case: Full reset flow changes the password", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, forgotPasswordURL,
			request.ForgotPasswordRequest{Email: "test@example.com"}, "")
		require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

		// Delivery is disabled in tests, so read the issued token directly
		var token string
		err := s.DB.QueryRow(t.Context(),
			"SELECT reset_token FROM users WHERE email = 'test@example.com'").Scan(&token)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, resetPasswordURL,
			request.ResetPasswordRequest{Token: token, Password: "newpassword1"}, "")
		require.Equal(t, http.StatusNoContent, rw.Code, rw.Body.String())

		// Old password no longer works, new one does
		ow := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "test@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusUnauthorized, ow.Code)

		authtest.LoginUser(t, s.Router, "test@example.com", "newpassword1")
	})

	s.Run("Normal case: Unknown address is accepted without a hint", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, forgotPasswordURL,
			request.ForgotPasswordRequest{Email: "nobody@example.com"}, "")
		require.Equal(t, http.StatusAccepted, w.Code)
	})

	s.Run("Error case: Token cannot be reused", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, forgotPasswordURL,
			request.ForgotPasswordRequest{Email: "test@example.com"}, "")
		require.Equal(t, http.StatusAccepted, w.Code)

		var token string
		err := s.DB.QueryRow(t.Context(),
			"SELECT reset_token FROM users WHERE email = 'test@example.com'").Scan(&token)
		require.NoError(t, err)

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, resetPasswordURL,
			request.ResetPasswordRequest{Token: token, Password: "newpassword1"}, "")
		require.Equal(t, http.StatusNoContent, rw.Code)

		rw2 := httptest.PerformRequest(t, s.Router, http.MethodPost, resetPasswordURL,
			request.ResetPasswordRequest{Token: token, Password: "newpassword2"}, "")
		require.Equal(t, http.StatusBadRequest, rw2.Code, "Cleared token should be invalid")
	})
}
