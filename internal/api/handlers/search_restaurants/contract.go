package search_restaurants

import "github.com/m04kA/SMC-TableBooking/internal/domain"

type CatalogService interface {
	Search(query string) []*domain.Restaurant
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
