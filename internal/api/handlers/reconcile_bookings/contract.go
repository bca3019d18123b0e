package reconcile_bookings

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/service/session/models"
)

type SessionService interface {
	Reconcile(ctx context.Context, userID string) (*models.ReconcileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
