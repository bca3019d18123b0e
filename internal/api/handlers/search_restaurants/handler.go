package search_restaurants

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

// Handle GET /api/v1/restaurants/search?q=
// Пустой запрос возвращает весь каталог.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := handlers.QueryString(r, "q")

	restaurants := h.service.Search(query)

	h.logger.Info("GET /restaurants/search - Search completed: q=%q, count=%d", query, len(restaurants))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainRestaurantList(restaurants))
}
