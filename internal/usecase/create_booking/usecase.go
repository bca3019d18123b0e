package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/notifier"
	"github.com/m04kA/SMC-TableBooking/pkg/metrics"
)

const operationCreate = "create"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      RestaurantCatalog
	sessions     SessionStore
	notifier     Notifier
	txManager    TransactionManager
	metrics      Metrics
	idGenerator  IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog RestaurantCatalog,
	sessions SessionStore,
	notifier Notifier,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		sessions:     sessions,
		notifier:     notifier,
		txManager:    txManager,
		metrics:      metrics,
		idGenerator:  UUIDGenerator{},
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка занятости и запись выполняются под одной эксклюзивной блокировкой журнала.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, restaurant=%s, table=%s, date=%s, time=%s, party=%d",
		req.UserID, req.RestaurantID, req.TableID, req.Date, req.Time, req.PartySize)

	// 1. Валидация входных данных
	slotTime, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.RecordLedgerOperation(operationCreate, metrics.ResultInvalid)
		return nil, err
	}

	// 2. Пользователь должен быть залогинен
	if !uc.sessions.IsLoggedIn(req.UserID) {
		uc.logger.Warn("CreateBooking: user=%s is not logged in", req.UserID)
		uc.metrics.RecordLedgerOperation(operationCreate, metrics.ResultNotFound)
		return nil, ErrUserNotLoggedIn
	}

	// 3. Получаем ресторан
	restaurant, err := uc.catalog.Get(req.RestaurantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.Warn("CreateBooking: restaurant id=%s not found", req.RestaurantID)
			uc.metrics.RecordLedgerOperation(operationCreate, metrics.ResultNotFound)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("CreateBooking: failed to get restaurant id=%s: %v", req.RestaurantID, err)
		uc.metrics.RecordLedgerOperation(operationCreate, metrics.ResultError)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 4. Проверяем часы работы
	open, err := restaurant.IsOpenAt(slotTime)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check hours of restaurant id=%s: %v", restaurant.ID, err)
		uc.metrics.RecordLedgerOperation(operationCreate, metrics.ResultError)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !open {
		uc.logger.Warn("CreateBooking: restaurant id=%s is closed at %s", restaurant.ID, slotTime)
		uc.metrics.RecordLedgerOperation(operationCreate, metrics.ResultInvalid)
		return nil, fmt.Errorf("%w: open %s-%s", ErrRestaurantClosed, restaurant.OpeningHours, restaurant.ClosingHours)
	}

	// 5. Проверяем столик и его вместимость
	if err := validateTable(restaurant, req.TableID, req.PartySize); err != nil {
		uc.logger.Warn("CreateBooking: table check failed: %v", err)
		if errors.Is(err, ErrInternal) {
			uc.metrics.RecordLedgerOperation(operationCreate, metrics.ResultError)
		} else {
			uc.metrics.RecordLedgerOperation(operationCreate, metrics.ResultInvalid)
		}
		return nil, err
	}

	booking := &domain.Booking{
		ID:           uc.idGenerator.NewID(),
		UserID:       req.UserID,
		RestaurantID: restaurant.ID,
		TableID:      req.TableID,
		Date:         req.Date,
		Time:         slotTime,
		PartySize:    req.PartySize,
	}

	// 6. Проверяем занятость и пишем в журнал под эксклюзивной блокировкой
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Бронирования на этот слот
		slotBookings, err := uc.bookingRepo.GetBySlot(txCtx, restaurant.ID, req.Date, slotTime)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Столик должен быть свободен
		if isTableBooked(slotBookings, req.TableID) {
			uc.logger.Warn("CreateBooking: table=%s of restaurant=%s already booked at %s %s",
				req.TableID, restaurant.ID, req.Date, slotTime)
			return ErrTableNotAvailable
		}

		// 6.3. Дописываем запись
		if _, err := uc.bookingRepo.Create(txCtx, booking); err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrTableNotAvailable):
			uc.metrics.RecordLedgerOperation(operationCreate, metrics.ResultConflict)
		default:
			uc.metrics.RecordLedgerOperation(operationCreate, metrics.ResultError)
			if !errors.Is(err, ErrInternal) {
				err = fmt.Errorf("%w: %v", ErrInternal, err)
			}
		}
		return nil, err
	}

	// 7. Обновляем кэш бронирований в сессии
	if err := uc.sessions.RecordBooking(req.UserID, booking.Summary()); err != nil {
		uc.logger.Warn("CreateBooking: booking id=%s saved, but session cache of user=%s not updated: %v",
			booking.ID, req.UserID, err)
	}

	// 8. Публикуем событие
	event := notifier.NewBookingEvent(notifier.EventBookingCreated, booking, uc.timeProvider.Now())
	if err := uc.notifier.Publish(ctx, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish %s for booking id=%s: %v", event.Type, booking.ID, err)
	}

	uc.metrics.RecordLedgerOperation(operationCreate, metrics.ResultSuccess)
	uc.logger.Info("CreateBooking: successfully created booking id=%s", booking.ID)

	return &Response{
		BookingID:    booking.ID,
		UserID:       booking.UserID,
		RestaurantID: booking.RestaurantID,
		TableID:      booking.TableID,
		Date:         booking.Date,
		Time:         booking.Time,
		PartySize:    booking.PartySize,
	}, nil
}
