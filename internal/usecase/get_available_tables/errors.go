package get_available_tables

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден в каталоге
	ErrRestaurantNotFound = fmt.Errorf("restaurant not found: %w", domain.ErrNotFound)

	// ErrRestaurantClosed возвращается, когда время вне часов работы ресторана
	ErrRestaurantClosed = fmt.Errorf("restaurant is closed at this time: %w", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
