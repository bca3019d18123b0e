package domain

// User represents a user catalog entry.
// CurrentBookings is an advisory cache; the booking ledger is authoritative.
type User struct {
	ID              string
	Name            string
	Email           string
	PhoneNumber     string
	CurrentBookings []BookingSummary
}

// Clone returns a deep copy safe to hand out of a session store
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.CurrentBookings = append([]BookingSummary(nil), u.CurrentBookings...)
	return &c
}

// AddBooking appends a summary to the cache
func (u *User) AddBooking(s BookingSummary) {
	u.CurrentBookings = append(u.CurrentBookings, s)
}

// RemoveBooking drops every cached summary with the given booking id and reports whether any matched
func (u *User) RemoveBooking(bookingID string) bool {
	kept := u.CurrentBookings[:0]
	removed := false
	for _, s := range u.CurrentBookings {
		if s.BookingID == bookingID {
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	u.CurrentBookings = kept
	return removed
}
