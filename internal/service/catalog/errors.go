package catalog

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = fmt.Errorf("restaurant not found: %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных параметрах фильтра
	ErrInvalidInput = fmt.Errorf("invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
