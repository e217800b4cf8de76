package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"interview-scheduler/internal/application/dto"
	"interview-scheduler/internal/application/service"
	"interview-scheduler/internal/pkg/logger"
)

// CronHandler lets an external scheduler trigger the reminder sweep.
type CronHandler struct {
	reminderService service.ReminderService
	log             logger.Logger
}

// NewCronHandler creates a new CronHandler.
func NewCronHandler(reminderService service.ReminderService, log logger.Logger) *CronHandler {
	return &CronHandler{reminderService: reminderService, log: log}
}

type sweepResponse struct {
	OK bool `json:"ok"`
	dto.SweepResult
}

// Reminders runs one sweep from the current time.
func (h *CronHandler) Reminders(c echo.Context) error {
	res, err := h.reminderService.RunSweep(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.Info(fmt.Sprintf("Cron sweep from %s: due=%d sent=%d", c.RealIP(), res.Due, res.Sent))
	return c.JSON(http.StatusOK, sweepResponse{OK: true, SweepResult: res})
}
