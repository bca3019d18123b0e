package models

import "github.com/m04kA/SMC-TableBooking/internal/domain"

// TableClassResponse класс столиков
type TableClassResponse struct {
	Class    string `json:"class"`    // "4-seat"
	Capacity int    `json:"capacity"` // 4
	Count    int    `json:"count"`
}

// RestaurantResponse ответ с данными ресторана
type RestaurantResponse struct {
	ID                 string               `json:"restaurantId"`
	Name               string               `json:"name"`
	CuisineType        string               `json:"cuisineType"`
	Rating             float64              `json:"rating"`
	Location           string               `json:"location"`
	TotalTables        int                  `json:"totalTables"`
	TableConfiguration []TableClassResponse `json:"tableConfiguration"`
	OpeningHours       string               `json:"openingHours"` // "11:00"
	ClosingHours       string               `json:"closingHours"` // "22:00"
}

// RestaurantListResponse ответ со списком ресторанов
type RestaurantListResponse struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
}

// CuisineListResponse ответ со списком кухонь
type CuisineListResponse struct {
	Cuisines []string `json:"cuisines"`
}

// FromDomainRestaurant конвертирует domain модель в DTO
func FromDomainRestaurant(r *domain.Restaurant) *RestaurantResponse {
	if r == nil {
		return nil
	}

	classes := make([]TableClassResponse, 0, len(r.TableConfiguration))
	for _, c := range r.TableConfiguration {
		// емкость проверена при загрузке каталога
		capacity, _ := c.Capacity()
		classes = append(classes, TableClassResponse{
			Class:    c.Key,
			Capacity: capacity,
			Count:    c.Count,
		})
	}

	return &RestaurantResponse{
		ID:                 r.ID,
		Name:               r.Name,
		CuisineType:        r.CuisineType,
		Rating:             r.Rating,
		Location:           r.Location,
		TotalTables:        r.TotalTables,
		TableConfiguration: classes,
		OpeningHours:       r.OpeningHours.String(),
		ClosingHours:       r.ClosingHours.String(),
	}
}

// FromDomainRestaurantList конвертирует список domain моделей в DTO
func FromDomainRestaurantList(restaurants []*domain.Restaurant) *RestaurantListResponse {
	result := make([]RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		result = append(result, *FromDomainRestaurant(r))
	}
	return &RestaurantListResponse{Restaurants: result}
}
