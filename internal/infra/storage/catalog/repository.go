package catalog

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/infra/storage/csvfile"
	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Repository репозиторий каталогов ресторанов и пользователей (только чтение)
type Repository struct {
	restaurantsPath string
	usersPath       string
	logger          Logger
}

// NewRepository создает новый экземпляр репозитория каталогов
func NewRepository(restaurantsPath, usersPath string, logger Logger) *Repository {
	return &Repository{
		restaurantsPath: restaurantsPath,
		usersPath:       usersPath,
		logger:          logger,
	}
}

// GetRestaurants читает весь каталог ресторанов.
// Любая некорректная строка прерывает загрузку: без каталога сервис работать не может.
func (r *Repository) GetRestaurants(ctx context.Context) ([]*domain.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table, err := csvfile.ReadTable(r.restaurantsPath, domain.RestaurantsHeader)
	if err != nil {
		return nil, fmt.Errorf("GetRestaurants - read catalog: %w", err)
	}

	restaurants := make([]*domain.Restaurant, 0, len(table.Rows))
	seen := make(map[string]int, len(table.Rows))
	for _, row := range table.Rows {
		restaurant, err := parseRestaurant(row)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", r.restaurantsPath, row.Line, err)
		}
		if prev, dup := seen[restaurant.ID]; dup {
			return nil, fmt.Errorf("%w: %s line %d: restaurant_id %q already defined at line %d",
				ErrDuplicateID, r.restaurantsPath, row.Line, restaurant.ID, prev)
		}
		seen[restaurant.ID] = row.Line

		if configured := restaurant.ConfiguredTables(); configured > restaurant.TotalTables {
			r.logger.Warn("GetRestaurants: restaurant %s configures %d tables but total_tables=%d",
				restaurant.ID, configured, restaurant.TotalTables)
		}
		restaurants = append(restaurants, restaurant)
	}

	r.logger.Info("GetRestaurants: loaded %d restaurants from %s", len(restaurants), r.restaurantsPath)
	return restaurants, nil
}

// GetUsers читает весь каталог пользователей
func (r *Repository) GetUsers(ctx context.Context) ([]*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table, err := csvfile.ReadTable(r.usersPath, domain.UsersHeader)
	if err != nil {
		return nil, fmt.Errorf("GetUsers - read catalog: %w", err)
	}

	users := make([]*domain.User, 0, len(table.Rows))
	seen := make(map[string]int, len(table.Rows))
	for _, row := range table.Rows {
		user, err := parseUser(row)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", r.usersPath, row.Line, err)
		}
		if prev, dup := seen[user.ID]; dup {
			return nil, fmt.Errorf("%w: %s line %d: user_id %q already defined at line %d",
				ErrDuplicateID, r.usersPath, row.Line, user.ID, prev)
		}
		seen[user.ID] = row.Line
		users = append(users, user)
	}

	return users, nil
}

// GetUserByID перечитывает каталог пользователей и ищет пользователя по ID
func (r *Repository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	users, err := r.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUserNotFound, userID)
}

func parseRestaurant(row csvfile.Row) (*domain.Restaurant, error) {
	id := strings.TrimSpace(row.Get("restaurant_id"))
	if id == "" {
		return nil, fmt.Errorf("%w: restaurant_id is empty", ErrInvalidRow)
	}

	rating, err := strconv.ParseFloat(strings.TrimSpace(row.Get("rating")), 64)
	if err != nil || math.IsNaN(rating) || rating < domain.MinRating || rating > domain.MaxRating {
		return nil, fmt.Errorf("%w: rating %q must be a number in [%.1f, %.1f]",
			ErrInvalidRow, row.Get("rating"), domain.MinRating, domain.MaxRating)
	}

	totalTables, err := strconv.Atoi(strings.TrimSpace(row.Get("total_tables")))
	if err != nil || totalTables < 0 {
		return nil, fmt.Errorf("%w: total_tables %q must be a non-negative integer", ErrInvalidRow, row.Get("total_tables"))
	}

	tableConfig, err := decodeTableConfiguration(row.Get("table_configuration"))
	if err != nil {
		return nil, err
	}

	opening, err := types.NewTimeStringFromString(strings.TrimSpace(row.Get("opening_hours")))
	if err != nil {
		return nil, fmt.Errorf("%w: opening_hours: %v", ErrInvalidRow, err)
	}
	closing, err := types.NewTimeStringFromString(strings.TrimSpace(row.Get("closing_hours")))
	if err != nil {
		return nil, fmt.Errorf("%w: closing_hours: %v", ErrInvalidRow, err)
	}

	return &domain.Restaurant{
		ID:                 id,
		Name:               row.Get("name"),
		CuisineType:        row.Get("cuisine_type"),
		Rating:             rating,
		Location:           row.Get("location"),
		TotalTables:        totalTables,
		TableConfiguration: tableConfig,
		OpeningHours:       opening,
		ClosingHours:       closing,
	}, nil
}

func parseUser(row csvfile.Row) (*domain.User, error) {
	id := strings.TrimSpace(row.Get("user_id"))
	if id == "" {
		return nil, fmt.Errorf("%w: user_id is empty", ErrInvalidRow)
	}

	bookings, err := decodeCurrentBookings(row.Get("current_bookings"))
	if err != nil {
		return nil, err
	}

	return &domain.User{
		ID:              id,
		Name:            row.Get("name"),
		Email:           row.Get("email"),
		PhoneNumber:     row.Get("phone_number"),
		CurrentBookings: bookings,
	}, nil
}
