package get_restaurant_bookings

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/service/bookings/models"
)

type BookingService interface {
	GetRestaurantBookings(ctx context.Context, req *models.GetRestaurantBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
