package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSessions map[string]bool

func (f fakeSessions) IsLoggedIn(userID string) bool {
	return f[userID]
}

func TestAuth(t *testing.T) {
	sessions := fakeSessions{"U001": true}

	var seenUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID, _ = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := Auth(sessions)(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUserID string
	}{
		{name: "logged in", header: "U001", wantStatus: http.StatusOK, wantUserID: "U001"},
		{name: "header is trimmed", header: "  U001 ", wantStatus: http.StatusOK, wantUserID: "U001"},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "no session", header: "U002", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenUserID = ""
			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
			if tt.header != "" {
				req.Header.Set(UserIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUserID, seenUserID)
		})
	}
}

func TestGetUserID_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := GetUserID(req.Context())
	assert.False(t, ok)

	_, ok = GetUserID(WithUserID(req.Context(), ""))
	assert.False(t, ok)
}
