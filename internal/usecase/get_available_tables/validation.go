package get_available_tables

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

// validateSlot валидирует дату, время и размер компании и возвращает нормализованное время
func validateSlot(date, t string, partySize int) (types.TimeString, error) {
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return "", fmt.Errorf("%w: date %q must be a valid YYYY-MM-DD date", ErrInvalidInput, date)
	}

	slotTime, err := types.NewTimeStringFromString(strings.TrimSpace(t))
	if err != nil {
		return "", fmt.Errorf("%w: time %q must be HH:MM", ErrInvalidInput, t)
	}

	if partySize <= 0 {
		return "", fmt.Errorf("%w: party size must be positive", ErrInvalidInput)
	}

	return slotTime, nil
}

// validateRequest валидирует входные данные запроса по одному ресторану
func validateRequest(req *Request) (types.TimeString, error) {
	if strings.TrimSpace(req.RestaurantID) == "" {
		return "", fmt.Errorf("%w: restaurantID is required", ErrInvalidInput)
	}
	return validateSlot(req.Date, req.Time, req.PartySize)
}
