package list_restaurants

import "github.com/m04kA/SMC-TableBooking/internal/domain"

type CatalogService interface {
	List() []*domain.Restaurant
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
