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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkAvailabilityHandler "github.com/clubelmeta/CEM-SalonService/internal/api/handlers/check_availability"
	createBlackoutHandler "github.com/clubelmeta/CEM-SalonService/internal/api/handlers/create_blackout"
	deactivateBlackoutHandler "github.com/clubelmeta/CEM-SalonService/internal/api/handlers/deactivate_blackout"
	getAddonsHandler "github.com/clubelmeta/CEM-SalonService/internal/api/handlers/get_addons"
	getBlackoutsHandler "github.com/clubelmeta/CEM-SalonService/internal/api/handlers/get_blackouts"
	getReservationHandler "github.com/clubelmeta/CEM-SalonService/internal/api/handlers/get_reservation"
	getReservationsHandler "github.com/clubelmeta/CEM-SalonService/internal/api/handlers/get_reservations"
	getVenuesHandler "github.com/clubelmeta/CEM-SalonService/internal/api/handlers/get_venues"
	quotePriceHandler "github.com/clubelmeta/CEM-SalonService/internal/api/handlers/quote_price"
	submitReservationHandler "github.com/clubelmeta/CEM-SalonService/internal/api/handlers/submit_reservation"
	transitionReservationHandler "github.com/clubelmeta/CEM-SalonService/internal/api/handlers/transition_reservation"
	updateNotesHandler "github.com/clubelmeta/CEM-SalonService/internal/api/handlers/update_reservation_notes"
	validateMembershipHandler "github.com/clubelmeta/CEM-SalonService/internal/api/handlers/validate_membership"
	"github.com/clubelmeta/CEM-SalonService/internal/api/middleware"
	"github.com/clubelmeta/CEM-SalonService/internal/config"
	blackoutRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/blackout"
	catalogRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/catalog"
	reservationRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/reservation"
	venueRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/venue"
	"github.com/clubelmeta/CEM-SalonService/internal/integrations/notifier"
	availabilityService "github.com/clubelmeta/CEM-SalonService/internal/service/availability"
	pricingService "github.com/clubelmeta/CEM-SalonService/internal/service/pricing"
	reservationsService "github.com/clubelmeta/CEM-SalonService/internal/service/reservations"
	venuesService "github.com/clubelmeta/CEM-SalonService/internal/service/venues"
	submitReservationUC "github.com/clubelmeta/CEM-SalonService/internal/usecase/submit_reservation"
	transitionReservationUC "github.com/clubelmeta/CEM-SalonService/internal/usecase/transition_reservation"
	"github.com/clubelmeta/CEM-SalonService/pkg/logger"
	"github.com/clubelmeta/CEM-SalonService/pkg/metrics"
	"github.com/clubelmeta/CEM-SalonService/pkg/txmanager"
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

	log.Info("Starting CEM-SalonService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем репозитории
	venueRepository := venueRepo.NewRepository(db)
	blackoutRepository := blackoutRepo.NewRepository(db)
	reservationRepository := reservationRepo.NewRepository(db)
	catalogRepository := catalogRepo.NewRepository(db)
	txManager := txmanager.NewTransactionManager(db)

	// Инициализируем издателя уведомлений
	notifierClient := notifier.NewClient(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, cfg.Notifications.AdminEmail, metricsCollector, log)
	log.Info("Notification publisher initialized (queue=%s)", cfg.RabbitMQ.Queue)

	// Инициализируем сервисы
	pricingSvc := pricingService.NewService(catalogRepository, venueRepository, log)
	availabilitySvc := availabilityService.NewService(blackoutRepository, venueRepository, log)
	venuesSvc := venuesService.NewService(venueRepository, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, catalogRepository, log)

	// Инициализируем use cases
	submitReservationUseCase := submitReservationUC.NewUseCase(
		venueRepository,
		reservationRepository,
		catalogRepository,
		availabilitySvc,
		pricingSvc,
		notifierClient,
		txManager,
		log,
	)

	transitionReservationUseCase := transitionReservationUC.NewUseCase(
		reservationRepository,
		venueRepository,
		notifierClient,
		txManager,
		log,
	)

	// Инициализируем handlers
	submitReservation := submitReservationHandler.NewHandler(submitReservationUseCase, metricsCollector, log)
	transitionReservation := transitionReservationHandler.NewHandler(transitionReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getReservations := getReservationsHandler.NewHandler(reservationsSvc, log)
	updateNotes := updateNotesHandler.NewHandler(reservationsSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(availabilitySvc, log)
	getBlackouts := getBlackoutsHandler.NewHandler(availabilitySvc, log)
	createBlackout := createBlackoutHandler.NewHandler(availabilitySvc, log)
	deactivateBlackout := deactivateBlackoutHandler.NewHandler(availabilitySvc, log)
	quotePrice := quotePriceHandler.NewHandler(pricingSvc, log)
	getVenues := getVenuesHandler.NewHandler(venuesSvc, log)
	getAddons := getAddonsHandler.NewHandler(pricingSvc, log)
	validateMembership := validateMembershipHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог салонов и услуг
	api.HandleFunc("/venues", getVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}", getVenues.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}/blackouts", getBlackouts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/addons", getAddons.Handle).Methods(http.MethodGet)

	// Доступность и расчёт стоимости
	api.HandleFunc("/configurations/{configurationId}/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/quotes", quotePrice.Handle).Methods(http.MethodPost)

	// Проверка кода членства
	api.HandleFunc("/membership/validate", validateMembership.Handle).Methods(http.MethodPost)

	// Подача заявки на резервацию
	api.HandleFunc("/reservations", submitReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// STAFF ROUTES (требуют X-Staff-ID и X-Staff-Role)
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.StaffAuth)

	// --- Резервации ---
	// Агрегаты регистрируются раньше маршрута с параметром
	staff.HandleFunc("/reservations/stats", getReservations.HandleStats).Methods(http.MethodGet)
	staff.HandleFunc("/reservations", getReservations.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/reservations/{reservationId}/notes", updateNotes.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/reservations/{reservationId}/status", transitionReservation.Handle).Methods(http.MethodPatch)

	// --- Блокировки салонов ---
	staff.HandleFunc("/venues/{venueId}/blackouts", createBlackout.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/blackouts/{blackoutId}", deactivateBlackout.Handle).Methods(http.MethodDelete)

	// Запускаем фонового потребителя уведомлений (если включен)
	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()

	if cfg.Notifications.ConsumerEnabled {
		consumer := notifier.NewConsumer(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, cfg.Notifications.AuditLog, log)
		go consumer.Run(consumerCtx)
		log.Info("Notification consumer started (queue=%s, audit=%s)", cfg.RabbitMQ.Queue, cfg.Notifications.AuditLog)
	}

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

	// Останавливаем потребителя уведомлений
	stopConsumer()

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
