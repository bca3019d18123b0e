package browse_restaurants

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/service/catalog"
	"github.com/m04kA/SMC-TableBooking/internal/service/catalog/models"
)

const (
	msgInvalidMinRating = "некорректный минимальный рейтинг"
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

// Handle GET /api/v1/restaurants/browse?q=&cuisine=&minRating=
// Поиск и фильтр применяются вместе.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := handlers.QueryString(r, "q")
	cuisine := handlers.QueryString(r, "cuisine")

	minRating, err := handlers.QueryFloat(r, "minRating", 0)
	if err != nil {
		h.logger.Warn("GET /restaurants/browse - Invalid minRating: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMinRating)
		return
	}

	restaurants, err := h.service.Browse(query, cuisine, minRating)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/browse - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMinRating)

		default:
			h.logger.Error("GET /restaurants/browse - Failed to browse restaurants: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/browse - Browse completed: q=%q, cuisine=%q, count=%d",
		query, cuisine, len(restaurants))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainRestaurantList(restaurants))
}
