package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

// validateRequest валидирует входные данные запроса и возвращает нормализованное время
func validateRequest(req *Request) (types.TimeString, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return "", fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.RestaurantID) == "" {
		return "", fmt.Errorf("%w: restaurantID is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return "", fmt.Errorf("%w: date %q must be a valid YYYY-MM-DD date", ErrInvalidInput, req.Date)
	}

	slotTime, err := types.NewTimeStringFromString(strings.TrimSpace(req.Time))
	if err != nil {
		return "", fmt.Errorf("%w: time %q must be HH:MM", ErrInvalidInput, req.Time)
	}

	if req.PartySize <= 0 {
		return "", fmt.Errorf("%w: party size must be positive", ErrInvalidInput)
	}

	if _, _, err := domain.ParseTableID(req.TableID); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return slotTime, nil
}

// validateTable проверяет, что столик есть в конфигурации и вмещает компанию
func validateTable(restaurant *domain.Restaurant, tableID string, partySize int) error {
	class, ok, err := restaurant.FindTable(tableID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s in restaurant %s", ErrTableNotFound, tableID, restaurant.ID)
	}

	capacity, err := class.Capacity()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if capacity < partySize {
		return fmt.Errorf("%w: %s seats %d, party of %d", ErrTableTooSmall, tableID, capacity, partySize)
	}
	return nil
}

// isTableBooked проверяет, занят ли столик в слоте
func isTableBooked(bookings []*domain.Booking, tableID string) bool {
	for _, b := range bookings {
		if b.TableID == tableID {
			return true
		}
	}
	return false
}
