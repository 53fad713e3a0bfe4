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
	"github.com/redis/go-redis/v9"

	confirmAppointmentHandler "github.com/m04kA/SMC-ServicePortal/internal/api/handlers/confirm_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-ServicePortal/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-ServicePortal/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ServicePortal/internal/api/handlers/get_available_slots"
	getCustomerAppointmentsHandler "github.com/m04kA/SMC-ServicePortal/internal/api/handlers/get_customer_appointments"
	getNotificationsHandler "github.com/m04kA/SMC-ServicePortal/internal/api/handlers/get_notifications"
	getStaffAppointmentsHandler "github.com/m04kA/SMC-ServicePortal/internal/api/handlers/get_staff_appointments"
	getStaffScheduleHandler "github.com/m04kA/SMC-ServicePortal/internal/api/handlers/get_staff_schedule"
	getTimeslotsHandler "github.com/m04kA/SMC-ServicePortal/internal/api/handlers/get_timeslots"
	markNotificationReadHandler "github.com/m04kA/SMC-ServicePortal/internal/api/handlers/mark_notification_read"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-ServicePortal/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/SMC-ServicePortal/internal/api/middleware"
	"github.com/m04kA/SMC-ServicePortal/internal/config"
	"github.com/m04kA/SMC-ServicePortal/internal/infra/cache/notificationcache"
	appointmentRepo "github.com/m04kA/SMC-ServicePortal/internal/infra/storage/appointment"
	notificationRepo "github.com/m04kA/SMC-ServicePortal/internal/infra/storage/notification"
	referenceRepo "github.com/m04kA/SMC-ServicePortal/internal/infra/storage/reference"
	staffRepo "github.com/m04kA/SMC-ServicePortal/internal/infra/storage/staff"
	timeslotRepo "github.com/m04kA/SMC-ServicePortal/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-ServicePortal/internal/integrations/mailer"
	appointmentsService "github.com/m04kA/SMC-ServicePortal/internal/service/appointments"
	notificationsService "github.com/m04kA/SMC-ServicePortal/internal/service/notifications"
	confirmAppointmentUC "github.com/m04kA/SMC-ServicePortal/internal/usecase/confirm_appointment"
	createAppointmentUC "github.com/m04kA/SMC-ServicePortal/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-ServicePortal/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ServicePortal/pkg/dbmetrics"
	"github.com/m04kA/SMC-ServicePortal/pkg/logger"
	"github.com/m04kA/SMC-ServicePortal/pkg/metrics"
	"github.com/m04kA/SMC-ServicePortal/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ServicePortal/pkg/txmanager"
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

	log.Info("Starting SMC-ServicePortal...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		timeslotRepository     *timeslotRepo.Repository
		staffRepository        *staffRepo.Repository
		referenceRepository    *referenceRepo.Repository
		notificationRepository *notificationRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		timeslotRepository = timeslotRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		referenceRepository = referenceRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		timeslotRepository = timeslotRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		referenceRepository = referenceRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем кэш уведомлений (если включен)
	var notificationCache notificationsService.NotificationCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis unavailable, notification cache disabled: %v", err)
		} else {
			notificationCache = notificationcache.New(redisClient)
			log.Info("Notification cache connected (addr=%s)", cfg.Redis.Addr)
		}
		defer redisClient.Close()
	}

	// Инициализируем почтовый клиент (если включен)
	var mailClient notificationsService.Mailer
	if cfg.SMTP.Enabled {
		mailClient = mailer.New(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From)
		log.Info("SMTP mailer initialized (host=%s, port=%s)", cfg.SMTP.Host, cfg.SMTP.Port)
	}

	// Инициализируем сервисы
	notificationSvc := notificationsService.NewService(
		notificationRepository,
		notificationCache,
		mailClient,
		log,
	)
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		staffRepository,
		referenceRepository,
		notificationSvc,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		staffRepository,
		timeslotRepository,
		referenceRepository,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		timeslotRepository,
		referenceRepository,
		notificationSvc,
		txMgr,
		log,
	)
	confirmAppointmentUseCase := confirmAppointmentUC.NewUseCase(
		appointmentRepository,
		staffRepository,
		referenceRepository,
		notificationSvc,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getTimeslots := getTimeslotsHandler.NewHandler(timeslotRepository, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	confirmAppointment := confirmAppointmentHandler.NewHandler(confirmAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentSvc, log)
	getStaffAppointments := getStaffAppointmentsHandler.NewHandler(appointmentSvc, log)
	getStaffSchedule := getStaffScheduleHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	getNotifications := getNotificationsHandler.NewHandler(notificationSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты сервисного центра
	api.HandleFunc("/outlets/{outletId}/available-timeslots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Сохраненные слоты на дату
	api.HandleFunc("/timeslots", getTimeslots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи на обслуживание ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/confirm", confirmAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}/status", updateAppointmentStatus.Handle).Methods(http.MethodPut)

	// История записей клиента
	protected.HandleFunc("/customers/{custId}/appointments", getCustomerAppointments.Handle).Methods(http.MethodGet)

	// Записи и расписание сотрудника
	protected.HandleFunc("/staff/{staffId}/appointments", getStaffAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId}/schedule", getStaffSchedule.Handle).Methods(http.MethodGet)

	// --- Уведомления ---
	protected.HandleFunc("/users/{userId}/notifications", getNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{id}/read", markNotificationRead.Handle).Methods(http.MethodPut)

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

	// Дожидаемся фоновых уведомлений, запущенных уже принятыми запросами
	appointmentSvc.Wait()
	createAppointmentUseCase.Wait()
	confirmAppointmentUseCase.Wait()
	log.Info("Background notifications drained")

	log.Info("Server stopped gracefully")
}
