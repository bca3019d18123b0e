package get_available_tables

import (
	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

// Request модель запроса свободных столиков в одном ресторане
type Request struct {
	RestaurantID string // ID ресторана
	Date         string // Дата в формате YYYY-MM-DD
	Time         string // Время в формате HH:MM
	PartySize    int    // Количество гостей
}

// Response модель ответа со свободными столиками ресторана
type Response struct {
	RestaurantID string
	Date         string
	Time         types.TimeString // Нормализованное время
	PartySize    int
	Tables       []string // ID столиков в порядке конфигурации
}

// AllRequest модель запроса свободных столиков во всех ресторанах
type AllRequest struct {
	Date      string
	Time      string
	PartySize int
}

// AllResponse модель ответа по всем ресторанам
type AllResponse struct {
	Date        string
	Time        types.TimeString
	PartySize   int
	Restaurants []RestaurantTables // Только открытые рестораны с непустым списком, в порядке каталога
}

// RestaurantTables свободные столики одного ресторана
type RestaurantTables struct {
	Restaurant *domain.Restaurant
	Tables     []string
}
