package middlewarectx_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/travel-backend/internal/http/middlewarectx"
	jwtlib "github.com/magabrotheeeer/travel-backend/internal/lib/jwt"
)

// Мок для Service
type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) ValidateToken(token string) (*jwtlib.CustomClaims, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(*jwtlib.CustomClaims)
	return claims, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestJWTMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		mockClaims     *jwtlib.CustomClaims
		mockErr        error
		wantStatusCode int
		wantMessage    string
		wantCalled     bool
	}{
		{
			name:           "missing Authorization header",
			authHeader:     "",
			wantStatusCode: http.StatusUnauthorized,
			wantMessage:    "Token is missing!",
		},
		{
			name:           "invalid Authorization header prefix",
			authHeader:     "Basic sometoken",
			wantStatusCode: http.StatusUnauthorized,
			wantMessage:    "Invalid token format",
		},
		{
			name:           "header without token",
			authHeader:     "Bearer",
			wantStatusCode: http.StatusUnauthorized,
			wantMessage:    "Invalid token format",
		},
		{
			name:           "expired token",
			authHeader:     "Bearer token",
			mockErr:        fmt.Errorf("jwt.ParseToken: %w", jwtlib.ErrTokenExpired),
			wantStatusCode: http.StatusUnauthorized,
			wantMessage:    "Token has expired",
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer token",
			mockErr:        errors.New("signature is invalid"),
			wantStatusCode: http.StatusUnauthorized,
			wantMessage:    "Invalid token",
		},
		{
			name:       "valid token",
			authHeader: "Bearer validtoken",
			mockClaims: &jwtlib.CustomClaims{
				Username: "testuser",
				Role:     "user",
			},
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			if tt.mockClaims != nil || tt.mockErr != nil {
				authMock.On("ValidateToken", mock.Anything).Return(tt.mockClaims, tt.mockErr).Once()
			}

			handlerCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				assert.Equal(t, "testuser", r.Context().Value(middlewarectx.User))
				assert.Equal(t, "user", r.Context().Value(middlewarectx.Role))
				w.WriteHeader(http.StatusOK)
			})

			mw := middlewarectx.JWTMiddleware(authMock, newNoopLogger())(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/api/enquiries", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			mw.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)

			if tt.wantMessage != "" {
				var got map[string]any
				err := json.NewDecoder(rec.Body).Decode(&got)
				assert.NoError(t, err)
				assert.Equal(t, tt.wantMessage, got["message"])
			}
			authMock.AssertExpectations(t)
		})
	}
}
