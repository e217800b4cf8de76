package app

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	appService "interview-scheduler/internal/application/service"
	"interview-scheduler/internal/infrastructure/database"
	"interview-scheduler/internal/infrastructure/email"
	lineClient "interview-scheduler/internal/infrastructure/line"
	"interview-scheduler/internal/infrastructure/lock"
	"interview-scheduler/internal/pkg/config"
	appLogger "interview-scheduler/internal/pkg/logger"
)

// Container holds the wired application services shared by the API server
// and the schedctl tool.
type Container struct {
	DB           *gorm.DB
	Policy       appService.PolicyService
	Candidate    appService.CandidateService
	Notification appService.NotificationService
	Reminder     appService.ReminderService
	Appointment  appService.AppointmentService

	redis *lock.Redis
}

// Build opens the store and wires every service.
func Build(ctx context.Context, cfg *config.Config, log appLogger.Logger) (*Container, error) {
	// --- Infrastructure ---
	db, err := database.Open(cfg.DBDriver, cfg.DatabaseURL, log)
	if err != nil {
		return nil, err
	}
	appointmentRepo := database.NewAppointmentRepository(db)
	candidateRepo := database.NewCandidateRepository(db)
	notificationRepo := database.NewNotificationRepository(db)
	auditRepo := database.NewAuditRepository(db)
	policyRepo := database.NewPolicyRepository(db)
	log.Info("Database and repositories initialized.")

	c := &Container{DB: db}

	var locker lock.Locker = lock.NewLocal()
	if cfg.RedisURL != "" {
		r, err := lock.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			_ = database.Close(db)
			return nil, fmt.Errorf("redis lock: %w", err)
		}
		c.redis = r
		locker = r
		log.Info("Using Redis for candidate locks.")
	} else {
		log.Warn("⚠️ WARN: REDIS_URL not set, candidate locks are process-local")
	}

	mailer := email.NewClient(cfg.Mail, log)

	var alerter appService.Alerter
	if cfg.LineAlertsEnabled() {
		lc, err := lineClient.NewClient(cfg.LineChannelSecret, cfg.LineChannelToken, cfg.AlertLineUserID, log)
		if err != nil {
			log.Error("LINE alerts disabled", err)
		} else {
			alerter = lc
		}
	}

	// --- Application Services ---
	c.Policy = appService.NewPolicyService(policyRepo, auditRepo, log)
	c.Candidate = appService.NewCandidateService(candidateRepo, appointmentRepo, notificationRepo, auditRepo, log)
	c.Notification = appService.NewNotificationService(notificationRepo, mailer, alerter, locker, cfg.Mail.Sender(), cfg.Mail.Timeout, log)
	c.Reminder = appService.NewReminderService(appointmentRepo, candidateRepo, c.Policy, c.Notification, log)
	c.Appointment = appService.NewAppointmentService(appointmentRepo, c.Candidate, c.Policy, c.Notification, locker, auditRepo, log)
	log.Info("Application services initialized.")

	// --- Policy ---
	if cfg.PolicySeedFile != "" {
		seeded, err := c.Policy.SeedFromFile(ctx, cfg.PolicySeedFile)
		if err != nil {
			log.Error(fmt.Sprintf("Failed to seed policy from %s", cfg.PolicySeedFile), err)
		} else if seeded {
			log.Info(fmt.Sprintf("Policy seeded from %s", cfg.PolicySeedFile))
		}
	}
	if _, err := c.Policy.GetPolicy(ctx); err != nil {
		// engines fall back to the permissive nil policy
		log.Error("Failed to initialize scheduling policy", err)
	}

	return c, nil
}

// Close releases the store and the lock backend.
func (c *Container) Close() error {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			_ = database.Close(c.DB)
			return err
		}
	}
	return database.Close(c.DB)
}
