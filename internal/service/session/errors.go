package session

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

var (
	// ErrUserNotFound возвращается, когда пользователя нет в каталоге
	ErrUserNotFound = fmt.Errorf("user not found: %w", domain.ErrNotFound)

	// ErrNotLoggedIn возвращается, когда у пользователя нет активной сессии
	ErrNotLoggedIn = fmt.Errorf("user is not logged in: %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
