package get_available_tables

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/usecase/get_available_tables"
)

const (
	msgInvalidPartySize = "некорректный размер компании"
	msgInvalidInput     = "некорректные параметры запроса"
	msgNotFound         = "ресторан не найден"
	msgClosed           = "ресторан закрыт в указанное время"
)

type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/availability?date=&time=&partySize=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]

	partySize, err := handlers.QueryInt(r, "partySize")
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/availability - Invalid partySize: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	req := &get_available_tables.Request{
		RestaurantID: restaurantID,
		Date:         handlers.QueryString(r, "date"),
		Time:         handlers.QueryString(r, "time"),
		PartySize:    partySize,
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, get_available_tables.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/availability - Restaurant not found: restaurant_id=%s", restaurantID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, get_available_tables.ErrRestaurantClosed):
			h.logger.Warn("GET /restaurants/{id}/availability - Restaurant closed: restaurant_id=%s, time=%s",
				restaurantID, req.Time)
			handlers.RespondBadRequest(w, msgClosed)

		case errors.Is(err, get_available_tables.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /restaurants/{id}/availability - Failed to get available tables: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/availability - Found %d tables: restaurant_id=%s, date=%s, time=%s",
		len(resp.Tables), restaurantID, resp.Date, resp.Time)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
