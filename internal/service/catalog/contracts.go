package catalog

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// RestaurantRepository интерфейс источника каталога ресторанов
type RestaurantRepository interface {
	GetRestaurants(ctx context.Context) ([]*domain.Restaurant, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
