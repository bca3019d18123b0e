package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	browseRestaurantsHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/browse_restaurants"
	cancelBookingHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/create_booking"
	filterRestaurantsHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/filter_restaurants"
	getAvailableTablesHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/get_available_tables"
	getBookingHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/get_booking"
	getCuisinesHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/get_cuisines"
	getCurrentUserHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/get_current_user"
	getRestaurantHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/get_restaurant"
	getRestaurantBookingsHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/get_restaurant_bookings"
	getUserBookingsHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/get_user_bookings"
	listRestaurantsHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/list_restaurants"
	loginHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/logout"
	reconcileBookingsHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/reconcile_bookings"
	searchRestaurantsHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/search_restaurants"
	"github.com/m04kA/SMC-TableBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TableBooking/internal/config"
	bookingRepo "github.com/m04kA/SMC-TableBooking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-TableBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/notifier"
	bookingsService "github.com/m04kA/SMC-TableBooking/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-TableBooking/internal/service/catalog"
	sessionService "github.com/m04kA/SMC-TableBooking/internal/service/session"
	createBookingUC "github.com/m04kA/SMC-TableBooking/internal/usecase/create_booking"
	getAvailableTablesUC "github.com/m04kA/SMC-TableBooking/internal/usecase/get_available_tables"
	"github.com/m04kA/SMC-TableBooking/pkg/logger"
	"github.com/m04kA/SMC-TableBooking/pkg/metrics"
	"github.com/m04kA/SMC-TableBooking/pkg/txmanager"
)

type eventPublisher interface {
	Publish(ctx context.Context, event notifier.Event) error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TableBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены).
	// nil *metrics.Metrics безопасен: методы записи ничего не делают.
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ctx := context.Background()

	// Загружаем каталог ресторанов. Без него сервис работать не может.
	catalogRepository := catalogRepo.NewRepository(cfg.Storage.RestaurantsFile, cfg.Storage.UsersFile, log)
	catalogSvc, err := catalogService.NewService(ctx, catalogRepository, log)
	if err != nil {
		log.Fatal("Failed to load restaurant catalog from %s: %v", cfg.Storage.RestaurantsFile, err)
	}

	// Пользователи перечитываются при каждом входе, здесь только проверяем файл
	users, err := catalogRepository.GetUsers(ctx)
	if err != nil {
		log.Fatal("Failed to load users from %s: %v", cfg.Storage.UsersFile, err)
	}
	log.Info("Catalogs loaded (restaurants=%d, users=%d)", len(catalogSvc.List()), len(users))

	// Журнал бронирований и файловая блокировка
	bookingRepository := bookingRepo.NewRepository(cfg.Storage.BookingsFile)
	txMgr := txmanager.NewTransactionManager(
		cfg.Storage.LockFile,
		time.Duration(cfg.Storage.LockTimeout)*time.Millisecond,
	)
	log.Info("Booking ledger at %s (lock=%s)", bookingRepository.Path(), cfg.Storage.LockFile)

	// Публикация событий
	var publisher eventPublisher = notifier.Noop{}
	if cfg.Notifier.Enabled {
		publisher = notifier.NewPublisher(cfg.Notifier.URL, time.Duration(cfg.Notifier.Timeout)*time.Second)
		log.Info("Booking events are published to RabbitMQ (timeout=%ds)", cfg.Notifier.Timeout)
	}

	// Инициализируем сервисы
	sessionSvc := sessionService.NewService(
		catalogRepository,
		bookingRepository,
		txMgr,
		metricsCollector,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		catalogSvc,
		sessionSvc,
		publisher,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogSvc,
		sessionSvc,
		publisher,
		txMgr,
		metricsCollector,
		log,
	)
	getAvailableTablesUseCase := getAvailableTablesUC.NewUseCase(
		bookingRepository,
		catalogSvc,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	listRestaurants := listRestaurantsHandler.NewHandler(catalogSvc, log)
	searchRestaurants := searchRestaurantsHandler.NewHandler(catalogSvc, log)
	filterRestaurants := filterRestaurantsHandler.NewHandler(catalogSvc, log)
	browseRestaurants := browseRestaurantsHandler.NewHandler(catalogSvc, log)
	getCuisines := getCuisinesHandler.NewHandler(catalogSvc, log)
	getRestaurant := getRestaurantHandler.NewHandler(catalogSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(getAvailableTablesUseCase, log)
	getAvailableTables := getAvailableTablesHandler.NewHandler(getAvailableTablesUseCase, log)
	login := loginHandler.NewHandler(sessionSvc, log)
	logout := logoutHandler.NewHandler(sessionSvc, log)
	getCurrentUser := getCurrentUserHandler.NewHandler(sessionSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getRestaurantBookings := getRestaurantBookingsHandler.NewHandler(bookingSvc, log)
	reconcileBookings := reconcileBookingsHandler.NewHandler(sessionSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	// --- Каталог ---
	// Статические пути регистрируются раньше /restaurants/{restaurantId}
	api.HandleFunc("/restaurants", listRestaurants.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/search", searchRestaurants.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/filter", filterRestaurants.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/browse", browseRestaurants.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/cuisines", getCuisines.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{restaurantId}", getRestaurant.Handle).Methods(http.MethodGet)

	// --- Доступность ---
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{restaurantId}/availability", getAvailableTables.Handle).Methods(http.MethodGet)

	// --- Бронирования (чтение) ---
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{restaurantId}/bookings", getRestaurantBookings.Handle).Methods(http.MethodGet)

	// --- Вход ---
	api.HandleFunc("/sessions", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID с активной сессией)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessionSvc))

	// --- Сессия ---
	protected.HandleFunc("/sessions/me", getCurrentUser.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/sessions/{userId}", logout.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- История пользователя ---
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/bookings/reconcile", reconcileBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
