package update

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

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/travel-backend/internal/models"
	"github.com/magabrotheeeer/travel-backend/internal/services"
)

type ContentServiceMock struct {
	mock.Mock
}

func (m *ContentServiceMock) UpdatePackage(kind services.PackageKind, id string, patch models.PatchPackage) error {
	args := m.Called(kind, id, patch)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func strPtr(s string) *string { return &s }

func TestUpdatePackageHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		kind           services.PackageKind
		id             string
		requestBody    string
		setupMocks     func(m *ContentServiceMock)
		wantStatusCode int
		wantBody       map[string]any
	}{
		{
			name:        "partial update",
			kind:        services.StandardPackages,
			id:          "p1",
			requestBody: `{"price": "999"}`,
			setupMocks: func(m *ContentServiceMock) {
				m.On("UpdatePackage", services.StandardPackages, "p1", models.PatchPackage{
					Price: strPtr("999"),
				}).Return(nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantBody: map[string]any{
				"success": true,
				"message": "Package updated successfully",
			},
		},
		{
			name:        "package not found",
			kind:        services.HighSellingPackages,
			id:          "missing",
			requestBody: `{"name": "X"}`,
			setupMocks: func(m *ContentServiceMock) {
				m.On("UpdatePackage", services.HighSellingPackages, "missing", mock.Anything).
					Return(services.ErrNotFound).Once()
			},
			wantStatusCode: http.StatusNotFound,
			wantBody:       map[string]any{"success": false, "message": "Package not found"},
		},
		{
			name:           "invalid json body",
			kind:           services.StandardPackages,
			id:             "p1",
			requestBody:    `not a json`,
			wantStatusCode: http.StatusBadRequest,
			wantBody:       map[string]any{"success": false, "message": "invalid request body"},
		},
		{
			name:        "service failure",
			kind:        services.StandardPackages,
			id:          "p1",
			requestBody: `{"price": "999"}`,
			setupMocks: func(m *ContentServiceMock) {
				m.On("UpdatePackage", mock.Anything, mock.Anything, mock.Anything).
					Return(errors.New("disk error")).Once()
			},
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       map[string]any{"success": false, "message": "could not update package"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ContentServiceMock)
			if tt.setupMocks != nil {
				tt.setupMocks(serviceMock)
			}

			handler := New(newNoopLogger(), serviceMock, tt.kind)

			req := httptest.NewRequest(http.MethodPut, "/api/packages/"+tt.id, bytes.NewReader([]byte(tt.requestBody)))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
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
