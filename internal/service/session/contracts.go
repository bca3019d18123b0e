package session

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// UserRepository интерфейс каталога пользователей
type UserRepository interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для чтения журнала под блокировкой
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс для метрик сессий
type Metrics interface {
	SetActiveSessions(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
