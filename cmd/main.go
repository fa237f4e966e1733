package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-travel-reminders/internal/config"
	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
	"github.com/KasumiMercury/primind-travel-reminders/internal/handler"
	"github.com/KasumiMercury/primind-travel-reminders/internal/health"
	"github.com/KasumiMercury/primind-travel-reminders/internal/infra/crm"
	"github.com/KasumiMercury/primind-travel-reminders/internal/infra/notifier"
	"github.com/KasumiMercury/primind-travel-reminders/internal/infra/passrecorder"
	"github.com/KasumiMercury/primind-travel-reminders/internal/infra/push"
	"github.com/KasumiMercury/primind-travel-reminders/internal/infra/repository"
	"github.com/KasumiMercury/primind-travel-reminders/internal/observability/logging"
	"github.com/KasumiMercury/primind-travel-reminders/internal/observability/metrics"
	"github.com/KasumiMercury/primind-travel-reminders/internal/observability/middleware"
	"github.com/KasumiMercury/primind-travel-reminders/internal/service/delivery"
	"github.com/KasumiMercury/primind-travel-reminders/internal/service/refresh"
	"github.com/KasumiMercury/primind-travel-reminders/internal/service/reminder"
)

// Version is set via ldflags at build time
var Version = "dev"

const serviceModule = logging.Module("travel-reminders")

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logLevel := new(slog.LevelVar)

	obs, err := initObservability(ctx, logLevel)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}
	logLevel.Set(cfg.LogLevel)

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	if err := cfg.TaskQueue.Validate(); err != nil {
		slog.Error("task queue configuration error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	reminderMetrics, err := metrics.NewReminderMetrics()
	if err != nil {
		slog.Error("failed to initialize reminder metrics", slog.String("error", err.Error()))
		return 1
	}

	// Pass recorder: InfluxDB locally, BigQuery on gcloud
	passRecorder, err := passrecorder.NewRecorder(ctx, passrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize pass recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := passRecorder.Close(); err != nil {
			slog.Warn("failed to close pass recorder", slog.String("error", err.Error()))
		}
	}()

	taskQueue, cleanup, err := initTaskQueue(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize task queue", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("task queue cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	redisOpts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.TLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	db, err := crm.Open(ctx, cfg.Database.URL, cfg.Database.MaxOpenConns)
	if err != nil {
		slog.Error("failed to connect crm database",
			slog.String("event", "crm.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if err := crm.Close(db); err != nil {
			slog.Warn("failed to close crm database", slog.String("error", err.Error()))
		}
	}()

	slog.Info("crm database connected",
		slog.Int("page_size", cfg.Database.PageSize),
		slog.Int("horizon_days", cfg.Database.HorizonDays),
	)

	preferenceStore := repository.NewPreferenceRepository(redisClient)
	scheduleLedger := repository.NewScheduleLedger(redisClient)
	deviceRepo := repository.NewDeviceRepository(redisClient)

	facility := notifier.NewFacility(taskQueue, scheduleLedger)
	planner := reminder.NewPlanner(cfg.Reminder.Hours, cfg.Reminder.Location)
	scheduler := reminder.NewScheduler(
		facility,
		preferenceStore,
		planner,
		passRecorder,
		reminderMetrics,
		cfg.Reminder.SubmitTimeout,
	)

	eventSource := crm.NewSource(db, cfg.Database.PageSize, cfg.Database.HorizonDays, cfg.Reminder.Location)
	refresher := refresh.NewRefresher(eventSource, scheduler, cfg.Reminder.Location, reminderMetrics)

	var pushSender domain.PushSender
	if cfg.Push.FirebaseCredentialsFile != "" {
		fcmSender, err := push.NewFCMSender(ctx, cfg.Push.FirebaseCredentialsFile)
		if err != nil {
			slog.Error("failed to initialize FCM sender", slog.String("error", err.Error()))
			return 1
		}
		pushSender = fcmSender
	} else {
		slog.Warn("FIREBASE_CREDENTIALS_FILE not set, push delivery disabled")
	}

	deliveryService := delivery.NewService(deviceRepo, pushSender, reminderMetrics).
		WithSendTimeout(time.Duration(cfg.Push.DeliveryTimeoutSeconds) * time.Second)

	go refresher.Run(ctx)

	if cfg.Refresh.Enabled() {
		refreshCron, err := refresh.StartCron(cfg.Refresh.Cron, cfg.Reminder.Location, refresher)
		if err != nil {
			slog.Error("failed to start refresh cron", slog.String("error", err.Error()))
			return 1
		}
		defer refreshCron.Stop()
	}

	if cfg.Refresh.OnStartup {
		refresher.Request(reminder.TriggerStartup)
	}

	reminderHandler := handler.NewReminderHandler(refresher, scheduler)
	preferenceHandler := handler.NewPreferenceHandler(preferenceStore, refresher)
	deviceHandler := handler.NewDeviceHandler(deviceRepo)
	deliveryHandler := handler.NewDeliveryHandler(deliveryService)

	// Setup router with observability middleware
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:  []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:     serviceModule,
		Worker:     true,
		TracerName: "github.com/KasumiMercury/primind-travel-reminders/internal/observability/middleware",
		JobNameResolver: func(c *gin.Context) string {
			if taskName := c.GetHeader("X-CloudTasks-TaskName"); taskName != "" {
				return taskName
			}
			return c.Request.URL.Path
		},
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	// Health check endpoints
	healthChecker := health.NewChecker(redisClient, db, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	// API routes
	v1 := r.Group("/api/v1")
	{
		v1.POST("/reminders/refresh", reminderHandler.HandleRefresh)
		v1.POST("/reminders/refresh/async", reminderHandler.HandleRefreshAsync)
		v1.GET("/reminders/preview", reminderHandler.HandlePreview)

		v1.GET("/preferences", preferenceHandler.HandleGet)
		v1.PUT("/preferences", preferenceHandler.HandlePut)

		v1.POST("/devices", deviceHandler.HandleRegister)
		v1.DELETE("/devices", deviceHandler.HandleUnregister)

		v1.POST("/notifications/deliver", deliveryHandler.HandleDeliver)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("timezone", cfg.Reminder.Location.String()),
			slog.String("refresh_cron", cfg.Refresh.Cron),
			slog.Bool("task_queue_enabled", facility.Enabled()),
			slog.Bool("push_enabled", pushSender != nil),
		)
		serverErr <- srv.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
