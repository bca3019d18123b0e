package filter_restaurants

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

// Handle GET /api/v1/restaurants/filter?cuisine=&minRating=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cuisine := handlers.QueryString(r, "cuisine")

	minRating, err := handlers.QueryFloat(r, "minRating", 0)
	if err != nil {
		h.logger.Warn("GET /restaurants/filter - Invalid minRating: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMinRating)
		return
	}

	restaurants, err := h.service.Filter(cuisine, minRating)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/filter - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMinRating)

		default:
			h.logger.Error("GET /restaurants/filter - Failed to filter restaurants: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/filter - Filter completed: cuisine=%q, min_rating=%.1f, count=%d",
		cuisine, minRating, len(restaurants))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainRestaurantList(restaurants))
}
