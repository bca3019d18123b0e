package models

import "github.com/m04kA/SMC-TableBooking/internal/domain"

// LoginRequest запрос на вход
type LoginRequest struct {
	UserID string `json:"userId"`
}

// BookingSummaryResponse элемент кэша бронирований пользователя
type BookingSummaryResponse struct {
	BookingID    string `json:"bookingId,omitempty"` // пусто для записей старого формата
	RestaurantID string `json:"restaurantId"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	TableID      string `json:"tableId"`
	PartySize    int    `json:"partySize,omitempty"`
}

// UserResponse ответ с данными пользователя
type UserResponse struct {
	UserID          string                   `json:"userId"`
	Name            string                   `json:"name"`
	Email           string                   `json:"email"`
	PhoneNumber     string                   `json:"phoneNumber"`
	CurrentBookings []BookingSummaryResponse `json:"currentBookings"`
}

// ReconcileResponse результат сверки кэша с журналом
type ReconcileResponse struct {
	UserID           string   `json:"userId"`
	Consistent       bool     `json:"consistent"`
	MissingFromCache []string `json:"missingFromCache"` // есть в журнале, нет в кэше
	StaleInCache     []string `json:"staleInCache"`     // есть в кэше, нет в журнале
	LegacyEntries    int      `json:"legacyEntries"`    // записи кэша без booking_id
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	bookings := make([]BookingSummaryResponse, 0, len(u.CurrentBookings))
	for _, b := range u.CurrentBookings {
		bookings = append(bookings, BookingSummaryResponse{
			BookingID:    b.BookingID,
			RestaurantID: b.RestaurantID,
			Date:         b.Date,
			Time:         b.Time,
			TableID:      b.TableID,
			PartySize:    b.PartySize,
		})
	}

	return &UserResponse{
		UserID:          u.ID,
		Name:            u.Name,
		Email:           u.Email,
		PhoneNumber:     u.PhoneNumber,
		CurrentBookings: bookings,
	}
}
