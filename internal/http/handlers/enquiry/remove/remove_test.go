package remove

import (
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

	"github.com/magabrotheeeer/travel-backend/internal/services"
)

type ContentServiceMock struct {
	mock.Mock
}

func (m *ContentServiceMock) DeleteEnquiry(id string) (string, error) {
	args := m.Called(id)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRemoveEnquiryHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		mockWarning    string
		mockErr        error
		wantStatusCode int
		wantBody       map[string]any
	}{
		{
			name:           "deleted",
			id:             "e1",
			wantStatusCode: http.StatusOK,
			wantBody: map[string]any{
				"success": true,
				"message": "Enquiry deleted successfully",
			},
		},
		{
			name:           "deleted with mirror warning",
			id:             "e1",
			mockWarning:    "enquiry removed from JSON only: export mirror rebuild failed",
			wantStatusCode: http.StatusOK,
			wantBody: map[string]any{
				"success": true,
				"warning": "enquiry removed from JSON only: export mirror rebuild failed",
			},
		},
		{
			name:           "not found",
			id:             "missing",
			mockErr:        services.ErrNotFound,
			wantStatusCode: http.StatusNotFound,
			wantBody:       map[string]any{"success": false, "message": "Enquiry not found"},
		},
		{
			name:           "service failure",
			id:             "e1",
			mockErr:        errors.New("disk error"),
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       map[string]any{"success": false, "message": "could not delete enquiry"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ContentServiceMock)
			serviceMock.On("DeleteEnquiry", tt.id).Return(tt.mockWarning, tt.mockErr).Once()

			handler := New(newNoopLogger(), serviceMock)

			req := httptest.NewRequest(http.MethodDelete, "/api/enquiries/"+tt.id, nil)
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
