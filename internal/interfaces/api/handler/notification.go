package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"interview-scheduler/internal/application/service"
	"interview-scheduler/internal/pkg/logger"
)

// NotificationHandler serves the notification log.
type NotificationHandler struct {
	notificationService service.NotificationService
	log                 logger.Logger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService service.NotificationService, log logger.Logger) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService, log: log}
}

// List returns the log, newest first, optionally filtered by ?to=.
func (h *NotificationHandler) List(c echo.Context) error {
	recs, err := h.notificationService.ListRecords(c.Request().Context(), c.QueryParam("to"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, recs)
}
