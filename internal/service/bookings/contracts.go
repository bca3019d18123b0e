package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/notifier"
)

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error)
	GetByRestaurant(ctx context.Context, restaurantID string, date *string) ([]*domain.Booking, error)
	Delete(ctx context.Context, id string) (*domain.Booking, error)
}

// RestaurantCatalog интерфейс каталога ресторанов
type RestaurantCatalog interface {
	Get(id string) (*domain.Restaurant, error)
}

// SessionStore интерфейс сессий (кэш бронирований пользователя)
type SessionStore interface {
	ForgetBooking(userID, bookingID string) bool
}

// Notifier интерфейс публикации событий
type Notifier interface {
	Publish(ctx context.Context, event notifier.Event) error
}

// TransactionManager интерфейс для сериализации доступа к журналу
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс для метрик журнала
type Metrics interface {
	RecordLedgerOperation(operation, result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
