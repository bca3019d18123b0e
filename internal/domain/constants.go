package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Catalog constants
const (
	// CuisineAll matches every cuisine in catalog filters
	CuisineAll = "All"

	MinRating = 0.0
	MaxRating = 5.0
)

// BookingIDPrefix is prepended to every generated booking identifier
const BookingIDPrefix = "B-"

// Persisted file headers. The column order is part of the file format.
var (
	RestaurantsHeader = []string{
		"restaurant_id",
		"name",
		"cuisine_type",
		"rating",
		"location",
		"total_tables",
		"table_configuration",
		"opening_hours",
		"closing_hours",
	}

	UsersHeader = []string{
		"user_id",
		"name",
		"email",
		"phone_number",
		"current_bookings",
	}

	BookingsHeader = []string{
		"booking_id",
		"user_id",
		"restaurant_id",
		"table_id",
		"date",
		"time",
		"party_size",
	}
)
