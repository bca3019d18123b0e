package check_availability

import (
	"github.com/m04kA/SMC-TableBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-TableBooking/internal/usecase/get_available_tables"
)

// RestaurantAvailability свободные столики одного ресторана
type RestaurantAvailability struct {
	Restaurant models.RestaurantResponse `json:"restaurant"`
	Tables     []string                  `json:"tables"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date        string                   `json:"date"`
	Time        string                   `json:"time"`
	PartySize   int                      `json:"partySize"`
	Restaurants []RestaurantAvailability `json:"restaurants"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *get_available_tables.AllResponse) *AvailabilityResponse {
	restaurants := make([]RestaurantAvailability, 0, len(resp.Restaurants))
	for _, item := range resp.Restaurants {
		restaurants = append(restaurants, RestaurantAvailability{
			Restaurant: *models.FromDomainRestaurant(item.Restaurant),
			Tables:     item.Tables,
		})
	}

	return &AvailabilityResponse{
		Date:        resp.Date,
		Time:        resp.Time.String(),
		PartySize:   resp.PartySize,
		Restaurants: restaurants,
	}
}
