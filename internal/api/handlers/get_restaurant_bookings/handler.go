package get_restaurant_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/service/bookings"
	"github.com/m04kA/SMC-TableBooking/internal/service/bookings/models"
)

const (
	msgInvalidDate = "некорректная дата"
	msgNotFound    = "ресторан не найден"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/bookings?date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.GetRestaurantBookingsRequest{
		RestaurantID: mux.Vars(r)["restaurantId"],
		Date:         handlers.QueryOptionalString(r, "date"),
	}

	resp, err := h.service.GetRestaurantBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/bookings - Restaurant not found: restaurant_id=%s", req.RestaurantID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /restaurants/{id}/bookings - Failed to get bookings: restaurant_id=%s, error=%v",
				req.RestaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/bookings - Found %d bookings: restaurant_id=%s",
		len(resp.Bookings), req.RestaurantID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
