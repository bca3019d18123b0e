package filter_restaurants

import "github.com/m04kA/SMC-TableBooking/internal/domain"

type CatalogService interface {
	Filter(cuisine string, minRating float64) ([]*domain.Restaurant, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
