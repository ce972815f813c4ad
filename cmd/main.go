package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/create_appointment"
	createMechanicHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/create_mechanic"
	createServiceHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/create_service"
	generateSlotsHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/generate_slots"
	getAvailableWindowsHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/get_available_windows"
	getMechanicHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/get_mechanic"
	listMechanicsHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/list_mechanics"
	listServicesHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/list_services"
	registerMechanicHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/register_mechanic"
	registerUserHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/register_user"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	"github.com/m04kA/SMC-GarageService/internal/config"
	appointmentsRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/appointments"
	mechanicsRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/mechanics"
	servicesRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/services"
	slotsRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/slots"
	usersRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/users"
	accountsService "github.com/m04kA/SMC-GarageService/internal/service/accounts"
	catalogService "github.com/m04kA/SMC-GarageService/internal/service/catalog"
	createAppointmentUC "github.com/m04kA/SMC-GarageService/internal/usecase/create_appointment"
	generateSlotsUC "github.com/m04kA/SMC-GarageService/internal/usecase/generate_slots"
	getAvailableWindowsUC "github.com/m04kA/SMC-GarageService/internal/usecase/get_available_windows"
	"github.com/m04kA/SMC-GarageService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GarageService/pkg/logger"
	"github.com/m04kA/SMC-GarageService/pkg/metrics"
	"github.com/m04kA/SMC-GarageService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-GarageService/pkg/txmanager"
)

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

	log.Info("Starting SMC-GarageService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect: %v", err)
	}
	if err := goose.UpContext(context.Background(), db, cfg.Database.MigrationsDir); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied from %s", cfg.Database.MigrationsDir)

	// Инициализируем репозитории (с метриками или без)
	var (
		userRepository        *usersRepo.Repository
		mechanicRepository    *mechanicsRepo.Repository
		serviceRepository     *servicesRepo.Repository
		slotRepository        *slotsRepo.Repository
		appointmentRepository *appointmentsRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		userRepository = usersRepo.NewRepository(wrappedDB)
		mechanicRepository = mechanicsRepo.NewRepository(wrappedDB)
		serviceRepository = servicesRepo.NewRepository(wrappedDB)
		slotRepository = slotsRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		userRepository = usersRepo.NewRepository(db)
		mechanicRepository = mechanicsRepo.NewRepository(db)
		serviceRepository = servicesRepo.NewRepository(db)
		slotRepository = slotsRepo.NewRepository(db)
		appointmentRepository = appointmentsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	accountsSvc := accountsService.NewService(
		userRepository,
		mechanicRepository,
		txMgr,
		log,
	)
	catalogSvc := catalogService.NewService(
		serviceRepository,
		mechanicRepository,
		log,
	)

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		slotRepository,
		mechanicRepository,
		txMgr,
		log,
	)

	getAvailableWindowsUseCase := getAvailableWindowsUC.NewUseCase(
		slotRepository,
		serviceRepository,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		slotRepository,
		serviceRepository,
		appointmentRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	registerUser := registerUserHandler.NewHandler(accountsSvc, log)
	registerMechanic := registerMechanicHandler.NewHandler(accountsSvc, log)
	createMechanic := createMechanicHandler.NewHandler(accountsSvc, log)
	getMechanic := getMechanicHandler.NewHandler(accountsSvc, log)
	listMechanics := listMechanicsHandler.NewHandler(accountsSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	getAvailableWindows := getAvailableWindowsHandler.NewHandler(getAvailableWindowsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация клиента или механика
	api.HandleFunc("/users", registerUser.Handle).Methods(http.MethodPost)

	// Регистрация механика вместе с профилем гаража
	api.HandleFunc("/mechanics/register", registerMechanic.Handle).Methods(http.MethodPost)

	// Создание профиля гаража для существующего механика
	api.HandleFunc("/mechanics", createMechanic.Handle).Methods(http.MethodPost)

	// Список гаражей (по убыванию рейтинга)
	api.HandleFunc("/mechanics", listMechanics.Handle).Methods(http.MethodGet)

	// Профиль гаража
	api.HandleFunc("/mechanics/{mechanicId}", getMechanic.Handle).Methods(http.MethodGet)

	// --- Каталог услуг ---
	api.HandleFunc("/mechanics/{mechanicId}/services", createService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/mechanics/{mechanicId}/services", listServices.Handle).Methods(http.MethodGet)

	// --- Слоты доступности ---
	// Публикация окна доступности (нарезается на атомарные слоты)
	api.HandleFunc("/mechanics/{mechanicId}/time_slots", generateSlots.Handle).Methods(http.MethodPost)

	// Доступные окна для записи на услугу
	api.HandleFunc("/mechanics/{mechanicId}/services/{serviceId}/available_time_slots",
		getAvailableWindows.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Запись на услугу от выбранного слота
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
