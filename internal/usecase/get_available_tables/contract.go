package get_available_tables

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	// GetBySlot получает бронирования ресторана на точный слот
	GetBySlot(ctx context.Context, restaurantID, date string, t types.TimeString) ([]*domain.Booking, error)
	// List получает весь журнал (для проверки всех ресторанов за один проход)
	List(ctx context.Context) ([]*domain.Booking, error)
}

// RestaurantCatalog интерфейс каталога ресторанов
type RestaurantCatalog interface {
	List() []*domain.Restaurant
	Get(id string) (*domain.Restaurant, error)
}

// TxManager интерфейс для выполнения чтения под разделяемой блокировкой
type TxManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс для метрик запросов доступности
type Metrics interface {
	RecordAvailabilityQuery(scope, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
