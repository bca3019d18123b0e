package get_user_bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TableBooking/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockService struct {
	called bool
}

func (m *mockService) GetUserBookings(_ context.Context, userID string) (*models.BookingListResponse, error) {
	m.called = true
	return &models.BookingListResponse{Bookings: []models.BookingResponse{
		{BookingID: "B-1", UserID: userID, RestaurantID: "R001"},
	}}, nil
}

func newRequest(userID, callerID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+userID+"/bookings", nil)
	req = mux.SetURLVars(req, map[string]string{"userId": userID})
	return req.WithContext(middleware.WithUserID(req.Context(), callerID))
}

func TestHandle_OwnHistory(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, nopLogger{})
	rec := httptest.NewRecorder()

	h.Handle(rec, newRequest("U001", "U001"))

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.BookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Bookings, 1)
	assert.Equal(t, "U001", body.Bookings[0].UserID)
}

func TestHandle_ForeignHistoryForbidden(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, nopLogger{})
	rec := httptest.NewRecorder()

	h.Handle(rec, newRequest("U002", "U001"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, svc.called)
}
