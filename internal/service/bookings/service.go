package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TableBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/notifier"
	"github.com/m04kA/SMC-TableBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-TableBooking/pkg/metrics"
)

const operationCancel = "cancel"

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	catalog      RestaurantCatalog
	sessions     SessionStore
	notifier     Notifier
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	catalog RestaurantCatalog,
	sessions SessionStore,
	notifier Notifier,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		sessions:     sessions,
		notifier:     notifier,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	var booking *domain.Booking
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		booking, err = s.bookingRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя из журнала.
// Журнал первичен, кэш сессии здесь не используется.
func (s *Service) GetUserBookings(ctx context.Context, userID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s", userID)

	var bookings []*domain.Booking
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		bookings, err = s.bookingRepo.GetByUserID(ctx, userID)
		return err
	})
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: found %d bookings for user=%s", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// GetRestaurantBookings получает бронирования ресторана, опционально за дату
func (s *Service) GetRestaurantBookings(ctx context.Context, req *models.GetRestaurantBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetRestaurantBookings: fetching bookings for restaurant=%s", req.RestaurantID)
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", *req.Date)
	}
	s.logger.Info(logMsg)

	if req.Date != nil {
		if _, err := time.Parse(domain.DateFormat, *req.Date); err != nil {
			s.logger.Warn("GetRestaurantBookings: invalid date=%q", *req.Date)
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}

	if _, err := s.catalog.Get(req.RestaurantID); err != nil {
		s.logger.Warn("GetRestaurantBookings: restaurant id=%s not found", req.RestaurantID)
		return nil, ErrRestaurantNotFound
	}

	var bookings []*domain.Booking
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		bookings, err = s.bookingRepo.GetByRestaurant(ctx, req.RestaurantID, req.Date)
		return err
	})
	if err != nil {
		s.logger.Error("GetRestaurantBookings: repository error for restaurant=%s: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: GetRestaurantBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRestaurantBookings: found %d bookings for restaurant=%s", len(bookings), req.RestaurantID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование: запись удаляется из журнала.
// Повторная отмена того же ID возвращает ErrBookingNotFound, файл при этом не меняется.
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", bookingID, req.UserID)

	if strings.TrimSpace(bookingID) == "" {
		s.metrics.RecordLedgerOperation(operationCancel, metrics.ResultInvalid)
		return nil, fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	// 1. Удаляем запись под эксклюзивной блокировкой
	var deleted *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		var err error
		deleted, err = s.bookingRepo.Delete(ctx, bookingID)
		return err
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", bookingID)
			s.metrics.RecordLedgerOperation(operationCancel, metrics.ResultNotFound)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		s.metrics.RecordLedgerOperation(operationCancel, metrics.ResultError)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// 2. Убираем бронирование из кэша владельца (по booking_id)
	if !s.sessions.ForgetBooking(deleted.UserID, deleted.ID) {
		s.logger.Info("Cancel: booking id=%s was not cached in a session of user=%s", deleted.ID, deleted.UserID)
	}

	// 3. Публикуем событие
	event := notifier.NewBookingEvent(notifier.EventBookingCancelled, deleted, s.timeProvider.Now())
	if err := s.notifier.Publish(ctx, event); err != nil {
		s.logger.Warn("Cancel: failed to publish %s for booking id=%s: %v", event.Type, deleted.ID, err)
	}

	s.metrics.RecordLedgerOperation(operationCancel, metrics.ResultSuccess)
	s.logger.Info("Cancel: successfully cancelled booking id=%s", deleted.ID)
	return models.FromDomainBooking(deleted), nil
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
