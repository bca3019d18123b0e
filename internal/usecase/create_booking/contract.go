package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/notifier"
	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetBySlot(ctx context.Context, restaurantID, date string, t types.TimeString) ([]*domain.Booking, error)
}

// RestaurantCatalog интерфейс каталога ресторанов
type RestaurantCatalog interface {
	Get(id string) (*domain.Restaurant, error)
}

// SessionStore интерфейс сессий пользователей
type SessionStore interface {
	IsLoggedIn(userID string) bool
	RecordBooking(userID string, summary domain.BookingSummary) error
}

// Notifier интерфейс публикации событий
type Notifier interface {
	Publish(ctx context.Context, event notifier.Event) error
}

// TransactionManager интерфейс для управления блокировками журнала
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс для метрик журнала
type Metrics interface {
	RecordLedgerOperation(operation, result string)
}

// IDGenerator интерфейс генерации идентификаторов бронирований
type IDGenerator interface {
	NewID() string
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// UUIDGenerator генерирует ID вида B-<uuid>
type UUIDGenerator struct{}

// NewID возвращает новый уникальный ID бронирования
func (UUIDGenerator) NewID() string {
	return domain.BookingIDPrefix + uuid.NewString()
}
