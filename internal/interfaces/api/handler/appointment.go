package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"interview-scheduler/internal/application/dto"
	"interview-scheduler/internal/application/service"
	"interview-scheduler/internal/interfaces/api/middleware"
	"interview-scheduler/internal/pkg/logger"
)

// AppointmentHandler serves /api/events.
type AppointmentHandler struct {
	appointmentService service.AppointmentService
	log                logger.Logger
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointmentService service.AppointmentService, log logger.Logger) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService, log: log}
}

// List returns every appointment to recruiters and only their own to candidates.
func (h *AppointmentHandler) List(c echo.Context) error {
	id, _ := middleware.IdentityFrom(c)
	list, err := h.appointmentService.List(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, list)
}

// Create schedules an interview.
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req dto.CreateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	id, _ := middleware.IdentityFrom(c)
	res, err := h.appointmentService.Create(c.Request().Context(), id.Email, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, res)
}

// Update reschedules or edits an interview.
func (h *AppointmentHandler) Update(c echo.Context) error {
	var req dto.UpdateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	id, _ := middleware.IdentityFrom(c)
	res, err := h.appointmentService.Update(c.Request().Context(), id.Email, c.Param("id"), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, res)
}

// Delete cancels an interview.
func (h *AppointmentHandler) Delete(c echo.Context) error {
	id, _ := middleware.IdentityFrom(c)
	res, err := h.appointmentService.Delete(c.Request().Context(), id.Email, c.Param("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, res)
}
