package get_available_tables

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/pkg/metrics"
)

const (
	scopeRestaurant = "restaurant"
	scopeAll        = "all"
)

// UseCase use case для поиска свободных столиков
type UseCase struct {
	bookingRepo BookingRepository
	catalog     RestaurantCatalog
	txManager   TxManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog RestaurantCatalog,
	txManager TxManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute возвращает свободные столики одного ресторана на слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTables: restaurant=%s, date=%s, time=%s, party=%d",
		req.RestaurantID, req.Date, req.Time, req.PartySize)

	// 1. Валидация входных данных
	slotTime, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableTables: validation failed: %v", err)
		uc.metrics.RecordAvailabilityQuery(scopeRestaurant, metrics.ResultInvalid)
		return nil, err
	}

	// 2. Получаем ресторан
	restaurant, err := uc.catalog.Get(req.RestaurantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.Warn("GetAvailableTables: restaurant id=%s not found", req.RestaurantID)
			uc.metrics.RecordAvailabilityQuery(scopeRestaurant, metrics.ResultNotFound)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("GetAvailableTables: failed to get restaurant id=%s: %v", req.RestaurantID, err)
		uc.metrics.RecordAvailabilityQuery(scopeRestaurant, metrics.ResultError)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 3. Проверяем часы работы (границы включительно)
	open, err := restaurant.IsOpenAt(slotTime)
	if err != nil {
		uc.logger.Error("GetAvailableTables: failed to check hours of restaurant id=%s: %v", restaurant.ID, err)
		uc.metrics.RecordAvailabilityQuery(scopeRestaurant, metrics.ResultError)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !open {
		uc.logger.Warn("GetAvailableTables: restaurant id=%s is closed at %s (hours %s-%s)",
			restaurant.ID, slotTime, restaurant.OpeningHours, restaurant.ClosingHours)
		uc.metrics.RecordAvailabilityQuery(scopeRestaurant, metrics.ResultInvalid)
		return nil, fmt.Errorf("%w: open %s-%s", ErrRestaurantClosed, restaurant.OpeningHours, restaurant.ClosingHours)
	}

	// 4. Читаем занятые столики и вычисляем свободные
	var tables []string
	err = uc.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		bookings, err := uc.bookingRepo.GetBySlot(ctx, restaurant.ID, req.Date, slotTime)
		if err != nil {
			return fmt.Errorf("failed to get bookings: %w", err)
		}

		tables, err = availableTables(restaurant, bookedTables(bookings, restaurant.ID, req.Date, slotTime), req.PartySize)
		return err
	})
	if err != nil {
		uc.logger.Error("GetAvailableTables: restaurant id=%s: %v", restaurant.ID, err)
		uc.metrics.RecordAvailabilityQuery(scopeRestaurant, metrics.ResultError)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableTables: restaurant=%s has %d free tables at %s %s",
		restaurant.ID, len(tables), req.Date, slotTime)
	uc.metrics.RecordAvailabilityQuery(scopeRestaurant, metrics.ResultSuccess)

	return &Response{
		RestaurantID: restaurant.ID,
		Date:         req.Date,
		Time:         slotTime,
		PartySize:    req.PartySize,
		Tables:       tables,
	}, nil
}

// ExecuteAll возвращает рестораны, открытые в указанное время, у которых есть свободные столики.
// Журнал читается один раз.
func (uc *UseCase) ExecuteAll(ctx context.Context, req *AllRequest) (*AllResponse, error) {
	uc.logger.Info("GetAvailableTables: all restaurants, date=%s, time=%s, party=%d",
		req.Date, req.Time, req.PartySize)

	// 1. Валидация входных данных
	slotTime, err := validateSlot(req.Date, req.Time, req.PartySize)
	if err != nil {
		uc.logger.Warn("GetAvailableTables: validation failed: %v", err)
		uc.metrics.RecordAvailabilityQuery(scopeAll, metrics.ResultInvalid)
		return nil, err
	}

	result := make([]RestaurantTables, 0)
	err = uc.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		// 2. Читаем журнал
		bookings, err := uc.bookingRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to get bookings: %w", err)
		}

		// 3. Проходим по каталогу в его порядке
		for _, restaurant := range uc.catalog.List() {
			open, err := restaurant.IsOpenAt(slotTime)
			if err != nil {
				return err
			}
			if !open {
				continue
			}

			tables, err := availableTables(restaurant, bookedTables(bookings, restaurant.ID, req.Date, slotTime), req.PartySize)
			if err != nil {
				return fmt.Errorf("restaurant %s: %w", restaurant.ID, err)
			}
			if len(tables) == 0 {
				continue
			}
			result = append(result, RestaurantTables{Restaurant: restaurant, Tables: tables})
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("GetAvailableTables: all restaurants: %v", err)
		uc.metrics.RecordAvailabilityQuery(scopeAll, metrics.ResultError)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableTables: %d restaurants have free tables at %s %s", len(result), req.Date, slotTime)
	uc.metrics.RecordAvailabilityQuery(scopeAll, metrics.ResultSuccess)

	return &AllResponse{
		Date:        req.Date,
		Time:        slotTime,
		PartySize:   req.PartySize,
		Restaurants: result,
	}, nil
}
