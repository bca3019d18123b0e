package domain

import "github.com/m04kA/SMC-TableBooking/pkg/types"

// Booking is one ledger record. Bookings are immutable; cancellation removes the record.
type Booking struct {
	ID           string
	UserID       string
	RestaurantID string
	TableID      string
	Date         string // YYYY-MM-DD
	Time         types.TimeString
	PartySize    int
}

// Summary returns the entry mirrored into the user's booking cache
func (b *Booking) Summary() BookingSummary {
	return BookingSummary{
		BookingID:    b.ID,
		RestaurantID: b.RestaurantID,
		Date:         b.Date,
		Time:         b.Time.String(),
		TableID:      b.TableID,
		PartySize:    b.PartySize,
	}
}

// InSlot reports whether the booking occupies the exact (restaurant, date, time) slot
func (b *Booking) InSlot(restaurantID, date string, t types.TimeString) bool {
	return b.RestaurantID == restaurantID && b.Date == date && b.Time == t
}

// BookingSummary is an entry of User.CurrentBookings.
// BookingID and PartySize may be empty for entries written by older clients.
type BookingSummary struct {
	BookingID    string
	RestaurantID string
	Date         string
	Time         string
	TableID      string
	PartySize    int
}
