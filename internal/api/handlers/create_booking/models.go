package create_booking

import (
	"github.com/m04kA/SMC-TableBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-TableBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RestaurantID string `json:"restaurantId"`
	Date         string `json:"date"` // "2024-06-01"
	Time         string `json:"time"` // "19:00"
	TableID      string `json:"tableId"`
	PartySize    int    `json:"partySize"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) *create_booking.Request {
	return &create_booking.Request{
		UserID:       userID,
		RestaurantID: r.RestaurantID,
		Date:         r.Date,
		Time:         r.Time,
		TableID:      r.TableID,
		PartySize:    r.PartySize,
	}
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *create_booking.Response) *models.BookingResponse {
	return &models.BookingResponse{
		BookingID:    resp.BookingID,
		UserID:       resp.UserID,
		RestaurantID: resp.RestaurantID,
		TableID:      resp.TableID,
		Date:         resp.Date,
		Time:         resp.Time.String(),
		PartySize:    resp.PartySize,
	}
}
