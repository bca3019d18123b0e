package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

var (
	// ErrUserNotLoggedIn возвращается, когда у пользователя нет активной сессии
	ErrUserNotLoggedIn = fmt.Errorf("create_booking: user is not logged in: %w", domain.ErrNotFound)

	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = fmt.Errorf("create_booking: restaurant not found: %w", domain.ErrNotFound)

	// ErrRestaurantClosed возвращается, когда время вне часов работы ресторана
	ErrRestaurantClosed = fmt.Errorf("create_booking: restaurant is closed at this time: %w", domain.ErrValidation)

	// ErrTableNotFound возвращается, когда столика нет в конфигурации ресторана
	ErrTableNotFound = fmt.Errorf("create_booking: table does not exist: %w", domain.ErrValidation)

	// ErrTableTooSmall возвращается, когда вместимость столика меньше размера компании
	ErrTableTooSmall = fmt.Errorf("create_booking: table capacity is less than party size: %w", domain.ErrValidation)

	// ErrTableNotAvailable возвращается, когда столик уже забронирован на этот слот
	ErrTableNotAvailable = errors.New("create_booking: table is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_booking: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
