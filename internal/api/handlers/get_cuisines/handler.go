package get_cuisines

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

// Handle GET /api/v1/restaurants/cuisines
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cuisines := h.service.Cuisines()

	h.logger.Info("GET /restaurants/cuisines - Cuisines listed: count=%d", len(cuisines))
	handlers.RespondJSON(w, http.StatusOK, &models.CuisineListResponse{Cuisines: cuisines})
}
