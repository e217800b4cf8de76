package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"interview-scheduler/internal/application/dto"
	"interview-scheduler/internal/application/service"
	"interview-scheduler/internal/interfaces/api/middleware"
	"interview-scheduler/internal/pkg/logger"
)

// SettingsHandler serves the scheduling policy.
type SettingsHandler struct {
	policyService service.PolicyService
	log           logger.Logger
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(policyService service.PolicyService, log logger.Logger) *SettingsHandler {
	return &SettingsHandler{policyService: policyService, log: log}
}

// Get returns the current policy, initialising it with defaults if absent.
func (h *SettingsHandler) Get(c echo.Context) error {
	p, err := h.policyService.GetPolicy(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto.ToPolicyDocument(p))
}

// Update applies a whitelisted update to the policy.
func (h *SettingsHandler) Update(c echo.Context) error {
	var req dto.UpdatePolicyRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	id, _ := middleware.IdentityFrom(c)
	p, err := h.policyService.UpdatePolicy(c.Request().Context(), id.Email, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto.ToPolicyDocument(p))
}
