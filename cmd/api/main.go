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

	// Application Layer
	"interview-scheduler/internal/app"
	appService "interview-scheduler/internal/application/service"

	// Infrastructure Layer
	"interview-scheduler/internal/infrastructure/scheduler"

	// Interfaces Layer
	"interview-scheduler/internal/interfaces/api/handler"
	apiMiddleware "interview-scheduler/internal/interfaces/api/middleware"
	"interview-scheduler/internal/interfaces/api/router"

	// Packages
	"interview-scheduler/internal/pkg/auth"
	"interview-scheduler/internal/pkg/config"
	appLogger "interview-scheduler/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
)

func gracefulShutdown(ctx context.Context, apiServer *http.Server, schedulerService appService.SchedulerService, container *app.Container, log appLogger.Logger, done chan bool) {
	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Info("Shutting down gracefully, press Ctrl+C again to force")

	// Stop accepting requests first so no mutation races the closing store.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err)
	}

	log.Info("Stopping scheduler...")
	schedulerService.Stop()
	log.Info("Scheduler stopped.")

	log.Info("Closing database connection...")
	if err := container.Close(); err != nil {
		log.Error("Error closing database", err)
	} else {
		log.Info("Database connection closed.")
	}

	log.Info("Server exiting")
	done <- true
}

func main() {
	// --- Initialization ---
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	appLog := appLogger.New(cfg.LogLevel)
	appLog.Info("Logger initialized.")

	if cfg.JWTSecret == "" {
		appLog.Warn("⚠️ WARN: JWT_SECRET not set, every bearer token will be rejected")
	}
	if cfg.CronSecret == "" {
		appLog.Warn("⚠️ WARN: CRON_SECRET not set, /api/cron/reminders is disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := app.Build(ctx, cfg, appLog)
	if err != nil {
		appLog.Error("Failed to initialize application", err)
		os.Exit(1)
	}

	// --- Scheduler ---
	cronScheduler := scheduler.NewScheduler(appLog)
	schedulerSvc := appService.NewSchedulerService(cronScheduler, container.Reminder, cfg.ReminderSweepSpec, appLog)
	if err := schedulerSvc.Start(ctx); err != nil {
		// the cron endpoint still works
		appLog.Error("Failed to start reminder schedule", err)
	}

	// --- API Handlers ---
	routerCfg := &router.Config{
		AppointmentHandler:  handler.NewAppointmentHandler(container.Appointment, appLog),
		CandidateHandler:    handler.NewCandidateHandler(container.Candidate, appLog),
		SettingsHandler:     handler.NewSettingsHandler(container.Policy, appLog),
		NotificationHandler: handler.NewNotificationHandler(container.Notification, appLog),
		CronHandler:         handler.NewCronHandler(container.Reminder, appLog),
		Resolver:            auth.NewResolver(cfg.JWTSecret, cfg.RecruiterEmails),
		CronSecret:          cfg.CronSecret,
		CronLimiter:         apiMiddleware.NewRateLimiter(ctx, cfg.CronRatePerSec, cfg.CronRateBurst),
		Logger:              appLog,
	}
	appLog.Info("API handlers initialized.")

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router.NewRouter(routerCfg),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// --- Start Server & Shutdown Handling ---
	done := make(chan bool, 1)
	go gracefulShutdown(ctx, apiServer, schedulerSvc, container, appLog, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", cfg.Port))
	if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		appLog.Error("HTTP server ListenAndServe error", err)
		os.Exit(1)
	}

	// Wait for graceful shutdown signal
	<-done
	appLog.Info("Graceful shutdown complete.")
}
