package get_available_tables

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/usecase/get_available_tables"
)

type UseCase interface {
	Execute(ctx context.Context, req *get_available_tables.Request) (*get_available_tables.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
