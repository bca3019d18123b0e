package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/usecase/get_available_tables"
)

const (
	msgInvalidPartySize = "некорректный размер компании"
	msgInvalidInput     = "некорректные параметры запроса"
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

// Handle GET /api/v1/availability?date=&time=&partySize=
// Закрытые рестораны и рестораны без свободных столиков в ответ не попадают.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	partySize, err := handlers.QueryInt(r, "partySize")
	if err != nil {
		h.logger.Warn("GET /availability - Invalid partySize: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	req := &get_available_tables.AllRequest{
		Date:      handlers.QueryString(r, "date"),
		Time:      handlers.QueryString(r, "time"),
		PartySize: partySize,
	}

	resp, err := h.useCase.ExecuteAll(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, get_available_tables.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability - Failed to check availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Found %d restaurants: date=%s, time=%s, party_size=%d",
		len(resp.Restaurants), resp.Date, resp.Time, resp.PartySize)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
