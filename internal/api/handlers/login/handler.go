package login

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/service/session"
	"github.com/m04kA/SMC-TableBooking/internal/service/session/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "не указан ID пользователя"
	msgUserNotFound       = "пользователь не найден"
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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		h.logger.Warn("POST /sessions - Missing userId")
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	user, err := h.service.Login(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrUserNotFound):
			h.logger.Warn("POST /sessions - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, session.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingUserID)

		default:
			h.logger.Error("POST /sessions - Failed to log in: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - User logged in: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, user)
}
