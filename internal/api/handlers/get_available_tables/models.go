package get_available_tables

import (
	"github.com/m04kA/SMC-TableBooking/internal/usecase/get_available_tables"
)

// AvailableTablesResponse HTTP response model
type AvailableTablesResponse struct {
	RestaurantID string   `json:"restaurantId"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	PartySize    int      `json:"partySize"`
	Tables       []string `json:"tables"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *get_available_tables.Response) *AvailableTablesResponse {
	tables := resp.Tables
	if tables == nil {
		tables = []string{}
	}

	return &AvailableTablesResponse{
		RestaurantID: resp.RestaurantID,
		Date:         resp.Date,
		Time:         resp.Time.String(),
		PartySize:    resp.PartySize,
		Tables:       tables,
	}
}
