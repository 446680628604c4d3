package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	bookFacilityHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/book_facility"
	getAvailableSlotsHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/get_available_slots"
	getFacilityHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/get_facility"
	getFacilityReservationsHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/get_facility_reservations"
	getReservationHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/get_reservation"
	listFacilitiesHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/list_facilities"
	"github.com/m04kA/SMC-FacilityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBooking/internal/cli"
	"github.com/m04kA/SMC-FacilityBooking/internal/config"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/ratetable"
	facilitiesService "github.com/m04kA/SMC-FacilityBooking/internal/service/facilities"
	bookFacilityUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/book_facility"
	getAvailableSlotsUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
	"github.com/m04kA/SMC-FacilityBooking/pkg/metrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

// publisher публикует события и освобождает соединения при остановке
type publisher interface {
	bookFacilityUC.EventPublisher
	Close() error
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-FacilityBooking in %s mode...", cfg.App.Mode)
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.BookingLocation()
	if err != nil {
		log.Fatal("Invalid booking location: %v", err)
	}
	policy := cfg.BookingPolicy()
	log.Info("Booking policy: conflict=%s, pricing=%s, location=%s", policy.Conflict, policy.Pricing, location)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var bookingMetrics bookFacilityUC.MetricsRecorder = bookFacilityUC.NoopMetrics{}
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		bookingMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем публикацию событий
	var eventPublisher publisher = events.NoopPublisher{}
	if cfg.Kafka.Enabled {
		kafkaPublisher, err := events.NewKafkaPublisher(events.KafkaConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			Source:       cfg.Metrics.ServiceName,
			RequireAcks:  cfg.Kafka.RequireAcks,
			Compression:  cfg.Kafka.Compression,
			MaxAttempts:  cfg.Kafka.MaxAttempts,
			BatchTimeout: time.Duration(cfg.Kafka.BatchTimeoutMs) * time.Millisecond,
			Async:        cfg.Kafka.Async,
		}, log)
		if err != nil {
			log.Fatal("Failed to initialize Kafka publisher: %v", err)
		}
		eventPublisher = kafkaPublisher
		log.Info("Kafka publisher initialized (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}
	defer func() {
		if err := eventPublisher.Close(); err != nil {
			log.Error("Failed to close event publisher: %v", err)
		}
	}()

	// Инициализируем репозитории
	rateTable, err := ratetable.NewRepository(cfg.RateTable())
	if err != nil {
		log.Fatal("Invalid rate table: %v", err)
	}
	reservationRepository := bookingRepo.NewRepository()
	txMgr := txmanager.NewTransactionManager()

	// Инициализируем сервисы
	facilitiesSvc := facilitiesService.NewService(rateTable, reservationRepository, log)

	// Инициализируем use cases
	bookFacilityUseCase := bookFacilityUC.NewUseCase(
		rateTable,
		reservationRepository,
		txMgr,
		eventPublisher,
		bookingMetrics,
		bookFacilityUC.Config{Policy: policy, Location: location},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		rateTable,
		reservationRepository,
		getAvailableSlotsUC.Config{Policy: policy, Location: location},
		log,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Запускаем HTTP сервер
	var srv *http.Server
	serverErr := make(chan error, 1)
	if cfg.RunsHTTP() {
		r := newRouter(cfg, log, metricsCollector, facilitiesSvc, bookFacilityUseCase, getAvailableSlotsUseCase, location)

		addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
		srv = &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
			IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		}

		go func() {
			log.Info("Starting server on %s", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
		}()
	}

	// Запускаем интерактивный цикл
	cliDone := make(chan error, 1)
	if cfg.RunsCLI() {
		prompt := cli.NewPrompt(bookFacilityUseCase, facilitiesSvc, os.Stdin, os.Stdout, log)
		go func() {
			cliDone <- prompt.Run(ctx)
		}()
	}

	// Ожидаем сигнал завершения, выход из цикла ввода или падение сервера
	exitCode := 0
	select {
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	case err := <-cliDone:
		if err != nil {
			log.Error("Interactive session failed: %v", err)
			exitCode = 1
		}
	case err := <-serverErr:
		log.Error("Server failed: %v", err)
		exitCode = 1
	}

	if srv != nil {
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server forced to shutdown: %v", err)
		}
		cancel()

		log.Info("Server stopped gracefully")
	}

	if exitCode != 0 {
		_ = eventPublisher.Close()
		_ = log.Close()
		os.Exit(exitCode)
	}
}

func newRouter(
	cfg *config.Config,
	log *logger.Logger,
	metricsCollector *metrics.Metrics,
	facilitiesSvc *facilitiesService.Service,
	bookFacilityUseCase *bookFacilityUC.UseCase,
	getAvailableSlotsUseCase *getAvailableSlotsUC.UseCase,
	location *time.Location,
) *mux.Router {
	// Инициализируем handlers
	bookFacility := bookFacilityHandler.NewHandler(bookFacilityUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	listFacilities := listFacilitiesHandler.NewHandler(facilitiesSvc, log)
	getFacility := getFacilityHandler.NewHandler(facilitiesSvc, log)
	getFacilityReservations := getFacilityReservationsHandler.NewHandler(facilitiesSvc, location, log)
	getReservation := getReservationHandler.NewHandler(facilitiesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Recovery(log), middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Площадки ---
	api.HandleFunc("/facilities", listFacilities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facility}", getFacility.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facility}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facility}/reservations", getFacilityReservations.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", bookFacility.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	return r
}
