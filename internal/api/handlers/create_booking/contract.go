package create_booking

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/usecase/create_booking"
)

type UseCase interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
