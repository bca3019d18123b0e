package list_restaurants

import (
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/service/catalog/models"
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

// Handle GET /api/v1/restaurants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurants := h.service.List()

	h.logger.Info("GET /restaurants - Restaurants listed: count=%d", len(restaurants))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainRestaurantList(restaurants))
}
