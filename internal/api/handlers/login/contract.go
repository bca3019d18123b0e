package login

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/service/session/models"
)

type SessionService interface {
	Login(ctx context.Context, userID string) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
