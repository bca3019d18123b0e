package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, http.StatusCreated, map[string]string{"bookingId": "B-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"bookingId":"B-1"}`, rec.Body.String())
}

func TestRespondJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRespondErrors(t *testing.T) {
	tests := []struct {
		name    string
		respond func(w http.ResponseWriter)
		status  int
		message string
	}{
		{"bad request", func(w http.ResponseWriter) { RespondBadRequest(w, "плохо") }, http.StatusBadRequest, "плохо"},
		{"unauthorized", func(w http.ResponseWriter) { RespondUnauthorized(w, "кто вы") }, http.StatusUnauthorized, "кто вы"},
		{"forbidden", func(w http.ResponseWriter) { RespondForbidden(w, "нельзя") }, http.StatusForbidden, "нельзя"},
		{"not found", func(w http.ResponseWriter) { RespondNotFound(w, "нет") }, http.StatusNotFound, "нет"},
		{"conflict", func(w http.ResponseWriter) { RespondConflict(w, "занято") }, http.StatusConflict, "занято"},
		{"internal", RespondInternalError, http.StatusInternalServerError, msgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.respond(rec)

			assert.Equal(t, tt.status, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Error)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		UserID string `json:"userId"`
	}

	t.Run("valid", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"userId":"U001"}`))
		var p payload
		require.NoError(t, DecodeJSON(r, &p))
		assert.Equal(t, "U001", p.UserID)
	})

	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var p payload
		assert.Error(t, DecodeJSON(r, &p))
	})

	t.Run("unknown field", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"userId":"U001","admin":true}`))
		var p payload
		assert.Error(t, DecodeJSON(r, &p))
	})

	t.Run("malformed", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"userId":`))
		var p payload
		assert.Error(t, DecodeJSON(r, &p))
	})
}

func TestQueryHelpers(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?partySize=4&minRating=4.5&q=+sushi+&bad=x", nil)

	assert.Equal(t, "sushi", QueryString(r, "q"))
	assert.Nil(t, QueryOptionalString(r, "date"))
	require.NotNil(t, QueryOptionalString(r, "q"))

	size, err := QueryInt(r, "partySize")
	require.NoError(t, err)
	assert.Equal(t, 4, size)

	_, err = QueryInt(r, "missing")
	assert.Error(t, err)
	_, err = QueryInt(r, "bad")
	assert.Error(t, err)

	rating, err := QueryFloat(r, "minRating", 0)
	require.NoError(t, err)
	assert.Equal(t, 4.5, rating)

	def, err := QueryFloat(r, "absent", 1.5)
	require.NoError(t, err)
	assert.Equal(t, 1.5, def)

	_, err = QueryFloat(r, "bad", 0)
	assert.Error(t, err)

	for _, raw := range []string{"NaN", "nan", "Inf", "-Inf"} {
		r := httptest.NewRequest(http.MethodGet, "/?minRating="+raw, nil)
		_, err := QueryFloat(r, "minRating", 0)
		assert.Error(t, err, raw)
	}
}
