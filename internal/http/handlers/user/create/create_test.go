package create

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/travel-backend/internal/models"
	"github.com/magabrotheeeer/travel-backend/internal/services"
)

type UserServiceMock struct {
	mock.Mock
}

func (m *UserServiceMock) Create(req models.DummyUser) (models.PublicUser, error) {
	args := m.Called(req)
	user, _ := args.Get(0).(models.PublicUser)
	return user, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestCreateUserHandler_ServeHTTP(t *testing.T) {
	created := models.PublicUser{ID: "u1", Username: "alice", Email: "alice@example.com", Role: "user"}

	tests := []struct {
		name           string
		requestBody    string
		setupMocks     func(m *UserServiceMock)
		wantStatusCode int
		wantBody       map[string]any
	}{
		{
			name:        "valid user",
			requestBody: `{"username": "alice", "email": "alice@example.com", "password": "password123"}`,
			setupMocks: func(m *UserServiceMock) {
				m.On("Create", models.DummyUser{
					Username: "alice", Email: "alice@example.com", Password: "password123",
				}).Return(created, nil).Once()
			},
			wantStatusCode: http.StatusCreated,
			wantBody: map[string]any{
				"success": true,
				"data": map[string]any{
					"id": "u1", "username": "alice", "email": "alice@example.com", "role": "user",
				},
			},
		},
		{
			name:           "invalid json body",
			requestBody:    `not a json`,
			wantStatusCode: http.StatusBadRequest,
			wantBody:       map[string]any{"success": false, "message": "invalid request body"},
		},
		{
			name:           "validation error - missing username",
			requestBody:    `{"email": "alice@example.com", "password": "password123"}`,
			wantStatusCode: http.StatusBadRequest,
			wantBody:       map[string]any{"success": false, "message": "field Username is a required field"},
		},
		{
			name:           "validation error - invalid email",
			requestBody:    `{"username": "alice", "email": "not-an-email", "password": "password123"}`,
			wantStatusCode: http.StatusBadRequest,
			wantBody:       map[string]any{"success": false, "message": "field Email must be a valid email address"},
		},
		{
			name:           "validation error - short password",
			requestBody:    `{"username": "alice", "email": "alice@example.com", "password": "abc"}`,
			wantStatusCode: http.StatusBadRequest,
			wantBody:       map[string]any{"success": false, "message": "field Password is too short"},
		},
		{
			name:        "duplicate username",
			requestBody: `{"username": "alice", "email": "alice@example.com", "password": "password123"}`,
			setupMocks: func(m *UserServiceMock) {
				m.On("Create", mock.Anything).
					Return(models.PublicUser{}, services.ErrUsernameTaken).Once()
			},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       map[string]any{"success": false, "message": "Username already exists"},
		},
		{
			name:        "duplicate email",
			requestBody: `{"username": "alice", "email": "alice@example.com", "password": "password123"}`,
			setupMocks: func(m *UserServiceMock) {
				m.On("Create", mock.Anything).
					Return(models.PublicUser{}, services.ErrEmailTaken).Once()
			},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       map[string]any{"success": false, "message": "Email already exists"},
		},
		{
			name:        "service failure",
			requestBody: `{"username": "alice", "email": "alice@example.com", "password": "password123"}`,
			setupMocks: func(m *UserServiceMock) {
				m.On("Create", mock.Anything).
					Return(models.PublicUser{}, errors.New("disk error")).Once()
			},
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       map[string]any{"success": false, "message": "could not create user"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(UserServiceMock)
			if tt.setupMocks != nil {
				tt.setupMocks(serviceMock)
			}

			handler := New(newNoopLogger(), serviceMock)

			req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader([]byte(tt.requestBody)))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			for k, v := range tt.wantBody {
				assert.Equal(t, v, got[k])
			}
			serviceMock.AssertExpectations(t)
		})
	}
}
