package get_restaurant

import "github.com/m04kA/SMC-TableBooking/internal/domain"

type CatalogService interface {
	Get(id string) (*domain.Restaurant, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
