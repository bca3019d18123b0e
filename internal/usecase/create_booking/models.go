package create_booking

import "github.com/m04kA/SMC-TableBooking/pkg/types"

// Request модель запроса на создание бронирования
type Request struct {
	UserID       string // ID пользователя с активной сессией
	RestaurantID string // ID ресторана
	Date         string // Дата бронирования (YYYY-MM-DD)
	Time         string // Время (HH:MM)
	TableID      string // ID столика вида "4-seat-1"
	PartySize    int    // Количество гостей
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID    string
	UserID       string
	RestaurantID string
	TableID      string
	Date         string
	Time         types.TimeString // Нормализованное время
	PartySize    int
}
