package httperr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/myndaaa/musicplayer-backend/internal/service"
)

func TestToHTTP_Mapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "unauthenticated"},
		{"invalid token", service.ErrInvalidToken, http.StatusUnauthorized, "unauthenticated"},
		{"expired token", service.ErrTokenExpired, http.StatusUnauthorized, "unauthenticated"},
		{"revoked token", service.ErrTokenRevoked, http.StatusUnauthorized, "unauthenticated"},
		{"reused token", service.ErrTokenReused, http.StatusUnauthorized, "unauthenticated"},
		{"permission denied", service.ErrPermissionDenied, http.StatusForbidden, "permission_denied"},
		{"not found", service.ErrNotFound, http.StatusNotFound, "not_found"},
		{"username taken", service.ErrUsernameTaken, http.StatusConflict, "username_taken"},
		{"email taken", service.ErrEmailTaken, http.StatusConflict, "email_taken"},
		{"stage name taken", service.ErrStageNameTaken, http.StatusConflict, "stage_name_taken"},
		{"genre name taken", service.ErrGenreNameTaken, http.StatusConflict, "genre_name_taken"},
		{"invalid email", service.ErrInvalidEmail, http.StatusUnprocessableEntity, "invalid_email"},
		{"invalid username", service.ErrInvalidUsername, http.StatusUnprocessableEntity, "invalid_username"},
		{"empty password", service.ErrEmptyPassword, http.StatusUnprocessableEntity, "empty_password"},
		{"weak password", service.ErrWeakPassword, http.StatusUnprocessableEntity, "weak_password"},
		{"invalid input", service.ErrInvalidInput, http.StatusUnprocessableEntity, "invalid_input"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "internal"},
		{"nil", nil, http.StatusInternalServerError, "internal"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			status, resp := ToHTTP(tc.err)
			require.Equal(t, tc.status, status)
			require.Equal(t, tc.code, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestToHTTP_WrappedErrors(t *testing.T) {
	t.Parallel()

	// Сервис оборачивает sentinel в "%s: %w" — маппинг должен разматывать.
	wrapped := fmt.Errorf("service.auth.LoginUser: %w", service.ErrInvalidCredentials)

	status, resp := ToHTTP(wrapped)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "unauthenticated", resp.Error.Code)
}

func TestToHTTP_TokenErrors_AreIndistinguishable(t *testing.T) {
	t.Parallel()

	// Все варианты проблем с токенами схлопываются в один ответ:
	// детали причины остаются на стороне сервера.
	tokenErrs := []error{
		service.ErrInvalidCredentials,
		service.ErrInvalidToken,
		service.ErrTokenExpired,
		service.ErrTokenRevoked,
		service.ErrTokenReused,
	}

	var first ErrorResponse
	for i, err := range tokenErrs {
		status, resp := ToHTTP(err)
		require.Equal(t, http.StatusUnauthorized, status)
		if i == 0 {
			first = resp
			continue
		}
		require.Equal(t, first, resp)
	}
}

func TestWriteError_AddsRequestID(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", "rid-1")

	WriteError(rr, req, service.ErrNotFound)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var env ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.Equal(t, "not_found", env.Error.Code)
	require.Equal(t, "rid-1", env.Error.RequestID)
}

func TestWriteBadRequest(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/x", nil)

	WriteBadRequest(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var env ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.Equal(t, "invalid_argument", env.Error.Code)
}
