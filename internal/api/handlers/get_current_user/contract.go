package get_current_user

import "github.com/m04kA/SMC-TableBooking/internal/domain"

type SessionService interface {
	Current(userID string) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
