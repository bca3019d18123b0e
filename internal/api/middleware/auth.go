package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
)

// UserIDHeader заголовок с ID пользователя
const UserIDHeader = "X-User-ID"

const (
	msgMissingUserID = "требуется заголовок X-User-ID"
	msgNotLoggedIn   = "пользователь не авторизован"
)

type contextKey string

const userIDKey contextKey = "userID"

// SessionChecker проверяет наличие активной сессии
type SessionChecker interface {
	IsLoggedIn(userID string) bool
}

// Auth требует заголовок X-User-ID с пользователем, у которого есть активная сессия.
// ID пользователя кладется в контекст запроса.
func Auth(sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
			if userID == "" {
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}

			if !sessions.IsLoggedIn(userID) {
				handlers.RespondUnauthorized(w, msgNotLoggedIn)
				return
			}

			ctx := WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUserID кладет ID пользователя в контекст
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
