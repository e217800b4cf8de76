package router

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"interview-scheduler/internal/interfaces/api/handler"
	apiMiddleware "interview-scheduler/internal/interfaces/api/middleware"
	"interview-scheduler/internal/pkg/auth"
	"interview-scheduler/internal/pkg/logger"
)

// Config holds the dependencies for the router.
type Config struct {
	AppointmentHandler  *handler.AppointmentHandler
	CandidateHandler    *handler.CandidateHandler
	SettingsHandler     *handler.SettingsHandler
	NotificationHandler *handler.NotificationHandler
	CronHandler         *handler.CronHandler
	Resolver            *auth.Resolver
	CronSecret          string
	CronLimiter         *apiMiddleware.RateLimiter
	Logger              logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogHost:      true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s, req_id=%s",
				v.Method, v.URI, v.Status, v.Latency, v.RequestID,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept,
			echo.HeaderAuthorization, apiMiddleware.HeaderCronKey,
		},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	e.Use(apiMiddleware.Authenticate(cfg.Resolver, cfg.Logger))

	// Routes
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Interview scheduler is running")
	})

	api := e.Group("/api")
	recruiter := apiMiddleware.RequireRecruiter

	api.GET("/events", cfg.AppointmentHandler.List, apiMiddleware.RequireAuth)
	api.POST("/events", cfg.AppointmentHandler.Create, recruiter)
	api.PATCH("/events/:id", cfg.AppointmentHandler.Update, recruiter)
	api.DELETE("/events/:id", cfg.AppointmentHandler.Delete, recruiter)

	api.GET("/candidates", cfg.CandidateHandler.List, recruiter)
	api.GET("/candidates/:email", cfg.CandidateHandler.Get, recruiter)
	api.PUT("/candidates", cfg.CandidateHandler.Upsert, recruiter)

	api.GET("/settings", cfg.SettingsHandler.Get)
	api.PUT("/settings", cfg.SettingsHandler.Update, recruiter)

	api.GET("/notifications", cfg.NotificationHandler.List, recruiter)

	// Rate limit before the key check so guessing is throttled too.
	api.GET("/cron/reminders", cfg.CronHandler.Reminders,
		cfg.CronLimiter.Middleware(), apiMiddleware.RequireCronKey(cfg.CronSecret))

	cfg.Logger.Info("Router initialized with routes.")
	return e
}
