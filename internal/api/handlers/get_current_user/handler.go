package get_current_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TableBooking/internal/service/session"
	"github.com/m04kA/SMC-TableBooking/internal/service/session/models"
)

const (
	msgUnauthorized = "требуется авторизация"
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

// Handle GET /api/v1/sessions/me
// Возвращает пользователя сессии вместе с кэшем его бронирований.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Error("GET /sessions/me - User ID not found in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	user, err := h.service.Current(userID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNotLoggedIn):
			h.logger.Warn("GET /sessions/me - Not logged in: user_id=%s", userID)
			handlers.RespondNotFound(w, msgNotLoggedIn)

		default:
			h.logger.Error("GET /sessions/me - Failed to get session: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainUser(user))
}
