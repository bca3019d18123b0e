package logout

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

// Handle DELETE /api/v1/sessions/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	// Получаем userID из контекста (через middleware Auth)
	callerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Error("DELETE /sessions/{userId} - User ID not found in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Завершить можно только свою сессию
	if callerID != userID {
		h.logger.Warn("DELETE /sessions/{userId} - Access denied: caller=%s, user_id=%s", callerID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	if err := h.service.Logout(userID); err != nil {
		switch {
		case errors.Is(err, session.ErrNotLoggedIn):
			h.logger.Warn("DELETE /sessions/{userId} - Not logged in: user_id=%s", userID)
			handlers.RespondNotFound(w, msgNotLoggedIn)

		default:
			h.logger.Error("DELETE /sessions/{userId} - Failed to log out: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sessions/{userId} - User logged out: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
