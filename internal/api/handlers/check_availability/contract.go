package check_availability

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/usecase/get_available_tables"
)

type UseCase interface {
	ExecuteAll(ctx context.Context, req *get_available_tables.AllRequest) (*get_available_tables.AllResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
