package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TableBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgUnauthorized        = "требуется авторизация"
	msgNotLoggedIn         = "пользователь не авторизован"
	msgRestaurantNotFound  = "ресторан не найден"
	msgRestaurantClosed    = "ресторан закрыт в указанное время"
	msgTableNotFound       = "столик не найден"
	msgTableTooSmall       = "столик слишком мал для компании"
	msgTableNotAvailable   = "столик уже забронирован на это время"
	msgInvalidBookingInput = "некорректные данные бронирования"
)

type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Error("POST /bookings - User ID not found in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, create_booking.ErrUserNotLoggedIn):
			h.logger.Warn("POST /bookings - User not logged in: user_id=%s", userID)
			handlers.RespondUnauthorized(w, msgNotLoggedIn)

		case errors.Is(err, create_booking.ErrRestaurantNotFound):
			h.logger.Warn("POST /bookings - Restaurant not found: restaurant_id=%s", req.RestaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, create_booking.ErrTableNotAvailable):
			h.logger.Warn("POST /bookings - Table not available: restaurant_id=%s, table_id=%s, date=%s, time=%s",
				req.RestaurantID, req.TableID, req.Date, req.Time)
			handlers.RespondConflict(w, msgTableNotAvailable)

		case errors.Is(err, create_booking.ErrRestaurantClosed):
			h.logger.Warn("POST /bookings - Restaurant closed: restaurant_id=%s, time=%s", req.RestaurantID, req.Time)
			handlers.RespondBadRequest(w, msgRestaurantClosed)

		case errors.Is(err, create_booking.ErrTableNotFound):
			h.logger.Warn("POST /bookings - Table not found: restaurant_id=%s, table_id=%s", req.RestaurantID, req.TableID)
			handlers.RespondBadRequest(w, msgTableNotFound)

		case errors.Is(err, create_booking.ErrTableTooSmall):
			h.logger.Warn("POST /bookings - Table too small: table_id=%s, party_size=%d", req.TableID, req.PartySize)
			handlers.RespondBadRequest(w, msgTableTooSmall)

		case errors.Is(err, create_booking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s", resp.BookingID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
