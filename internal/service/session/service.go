package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/service/session/models"
)

// Service хранит сессии вошедших пользователей в памяти процесса.
// Кэш бронирований пользователя (current_bookings) живет только в сессии,
// users.csv не перезаписывается.
type Service struct {
	users     UserRepository
	bookings  BookingRepository
	txManager TransactionManager
	metrics   Metrics
	logger    Logger

	mu       sync.RWMutex
	sessions map[string]*domain.User
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	users UserRepository,
	bookings BookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		users:     users,
		bookings:  bookings,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
		sessions:  make(map[string]*domain.User),
	}
}

// Login загружает пользователя из каталога (файл перечитывается на каждый вход)
// и открывает сессию. Повторный вход заменяет сессию свежими данными.
func (s *Service) Login(ctx context.Context, userID string) (*models.UserResponse, error) {
	s.logger.Info("Login: user=%s", userID)

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("Login: user=%s not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Login: failed to load user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	s.mu.Lock()
	s.sessions[user.ID] = user.Clone()
	active := len(s.sessions)
	s.mu.Unlock()

	s.metrics.SetActiveSessions(active)
	s.logger.Info("Login: user=%s logged in with %d cached bookings", user.ID, len(user.CurrentBookings))
	return models.FromDomainUser(user), nil
}

// Logout закрывает сессию пользователя
func (s *Service) Logout(userID string) error {
	s.mu.Lock()
	_, ok := s.sessions[userID]
	delete(s.sessions, userID)
	active := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		s.logger.Warn("Logout: user=%s has no session", userID)
		return ErrNotLoggedIn
	}

	s.metrics.SetActiveSessions(active)
	s.logger.Info("Logout: user=%s logged out", userID)
	return nil
}

// Current возвращает копию пользователя активной сессии
func (s *Service) Current(userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNotLoggedIn
	}
	return user.Clone(), nil
}

// IsLoggedIn проверяет наличие активной сессии
func (s *Service) IsLoggedIn(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.sessions[userID]
	return ok
}

// RecordBooking добавляет бронирование в кэш пользователя
func (s *Service) RecordBooking(userID string, summary domain.BookingSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.sessions[userID]
	if !ok {
		return ErrNotLoggedIn
	}
	user.AddBooking(summary)
	return nil
}

// ForgetBooking удаляет бронирование из кэша пользователя по booking_id.
// Возвращает false, если сессии нет или бронирования не было в кэше.
func (s *Service) ForgetBooking(userID, bookingID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.sessions[userID]
	if !ok {
		return false
	}
	return user.RemoveBooking(bookingID)
}

// Reconcile сравнивает кэш сессии с журналом.
// Расхождение - это отчет, а не ошибка.
func (s *Service) Reconcile(ctx context.Context, userID string) (*models.ReconcileResponse, error) {
	s.logger.Info("Reconcile: user=%s", userID)

	user, err := s.Current(userID)
	if err != nil {
		s.logger.Warn("Reconcile: user=%s has no session", userID)
		return nil, err
	}

	var ledger []*domain.Booking
	err = s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		ledger, err = s.bookings.GetByUserID(ctx, userID)
		return err
	})
	if err != nil {
		s.logger.Error("Reconcile: failed to read ledger for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Reconcile - repository error: %v", ErrInternal, err)
	}

	report := reconcile(user, ledger)
	if !report.Consistent {
		s.logger.Warn("Reconcile: user=%s cache diverges from ledger: missing=%v stale=%v legacy=%d",
			userID, report.MissingFromCache, report.StaleInCache, report.LegacyEntries)
	}
	return report, nil
}

func reconcile(user *domain.User, ledger []*domain.Booking) *models.ReconcileResponse {
	inLedger := make(map[string]struct{}, len(ledger))
	for _, b := range ledger {
		inLedger[b.ID] = struct{}{}
	}

	inCache := make(map[string]struct{}, len(user.CurrentBookings))
	stale := make([]string, 0)
	legacy := 0
	for _, summary := range user.CurrentBookings {
		if summary.BookingID == "" {
			legacy++
			continue
		}
		inCache[summary.BookingID] = struct{}{}
		if _, ok := inLedger[summary.BookingID]; !ok {
			stale = append(stale, summary.BookingID)
		}
	}

	missing := make([]string, 0)
	for _, b := range ledger {
		if _, ok := inCache[b.ID]; !ok {
			missing = append(missing, b.ID)
		}
	}
	sort.Strings(stale)
	sort.Strings(missing)

	return &models.ReconcileResponse{
		UserID:           user.ID,
		Consistent:       len(stale) == 0 && len(missing) == 0 && legacy == 0,
		MissingFromCache: missing,
		StaleInCache:     stale,
		LegacyEntries:    legacy,
	}
}
