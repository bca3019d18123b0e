package notifier

import (
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// Типы событий (совпадают с именами очередей)
const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// Event событие журнала бронирований
type Event struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurredAt"`
	Booking    BookingPayload `json:"booking"`
}

// BookingPayload данные бронирования в событии
type BookingPayload struct {
	BookingID    string `json:"bookingId"`
	UserID       string `json:"userId"`
	RestaurantID string `json:"restaurantId"`
	TableID      string `json:"tableId"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	PartySize    int    `json:"partySize"`
}

// NewBookingEvent собирает событие по бронированию
func NewBookingEvent(eventType string, b *domain.Booking, at time.Time) Event {
	return Event{
		Type:       eventType,
		OccurredAt: at.UTC(),
		Booking: BookingPayload{
			BookingID:    b.ID,
			UserID:       b.UserID,
			RestaurantID: b.RestaurantID,
			TableID:      b.TableID,
			Date:         b.Date,
			Time:         b.Time.String(),
			PartySize:    b.PartySize,
		},
	}
}
