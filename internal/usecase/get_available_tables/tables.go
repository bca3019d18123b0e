package get_available_tables

import (
	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

// bookedTables собирает ID столиков, занятых в слоте (restaurantID, date, t)
func bookedTables(bookings []*domain.Booking, restaurantID, date string, t types.TimeString) map[string]struct{} {
	booked := make(map[string]struct{})
	for _, b := range bookings {
		if b.InSlot(restaurantID, date, t) {
			booked[b.TableID] = struct{}{}
		}
	}
	return booked
}

// availableTables перечисляет столики подходящей вместимости и оставляет свободные.
// Порядок: классы в порядке конфигурации, внутри класса по возрастанию номера.
func availableTables(restaurant *domain.Restaurant, booked map[string]struct{}, partySize int) ([]string, error) {
	tables := make([]string, 0)
	for _, class := range restaurant.TableConfiguration {
		capacity, err := class.Capacity()
		if err != nil {
			return nil, err
		}
		if capacity < partySize {
			continue
		}

		for _, id := range class.TableIDs() {
			if _, taken := booked[id]; !taken {
				tables = append(tables, id)
			}
		}
	}
	return tables, nil
}
