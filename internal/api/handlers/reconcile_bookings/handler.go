package reconcile_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TableBooking/internal/service/session"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgForbidden    = "доступ запрещен"
	msgNotLoggedIn  = "сессия не найдена"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/bookings/reconcile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	callerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Error("GET /users/{userId}/bookings/reconcile - User ID not found in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if callerID != userID {
		h.logger.Warn("GET /users/{userId}/bookings/reconcile - Access denied: caller=%s, user_id=%s", callerID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	resp, err := h.service.Reconcile(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNotLoggedIn):
			h.logger.Warn("GET /users/{userId}/bookings/reconcile - Not logged in: user_id=%s", userID)
			handlers.RespondNotFound(w, msgNotLoggedIn)

		default:
			h.logger.Error("GET /users/{userId}/bookings/reconcile - Failed to reconcile: user_id=%s, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if !resp.Consistent {
		h.logger.Warn("GET /users/{userId}/bookings/reconcile - Cache diverged from ledger: user_id=%s, missing=%d, stale=%d",
			userID, len(resp.MissingFromCache), len(resp.StaleInCache))
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}
