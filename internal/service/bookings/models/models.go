package models

import "github.com/m04kA/SMC-TableBooking/internal/domain"

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID string `json:"userId"` // кто отменяет (для журнала событий)
}

// GetRestaurantBookingsRequest запрос бронирований ресторана
type GetRestaurantBookingsRequest struct {
	RestaurantID string  `json:"restaurantId"`
	Date         *string `json:"date,omitempty"` // YYYY-MM-DD, опционально
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	BookingID    string `json:"bookingId"`
	UserID       string `json:"userId"`
	RestaurantID string `json:"restaurantId"`
	TableID      string `json:"tableId"`
	Date         string `json:"date"` // "2024-06-01"
	Time         string `json:"time"` // "19:00"
	PartySize    int    `json:"partySize"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		BookingID:    b.ID,
		UserID:       b.UserID,
		RestaurantID: b.RestaurantID,
		TableID:      b.TableID,
		Date:         b.Date,
		Time:         b.Time.String(),
		PartySize:    b.PartySize,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}
