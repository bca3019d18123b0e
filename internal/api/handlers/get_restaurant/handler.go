package get_restaurant

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/service/catalog"
	"github.com/m04kA/SMC-TableBooking/internal/service/catalog/models"
)

const (
	msgNotFound = "ресторан не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]

	restaurant, err := h.service.Get(restaurantID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id} - Restaurant not found: restaurant_id=%s", restaurantID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /restaurants/{id} - Failed to get restaurant: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainRestaurant(restaurant))
}
