package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"interview-scheduler/internal/application/dto"
	"interview-scheduler/internal/application/service"
	"interview-scheduler/internal/interfaces/api/middleware"
	"interview-scheduler/internal/pkg/logger"
)

// CandidateHandler serves /api/candidates.
type CandidateHandler struct {
	candidateService service.CandidateService
	log              logger.Logger
}

// NewCandidateHandler creates a new CandidateHandler.
func NewCandidateHandler(candidateService service.CandidateService, log logger.Logger) *CandidateHandler {
	return &CandidateHandler{candidateService: candidateService, log: log}
}

func (h *CandidateHandler) List(c echo.Context) error {
	list, err := h.candidateService.List(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, list)
}

// Get returns the candidate with their interviews and email history.
func (h *CandidateHandler) Get(c echo.Context) error {
	email, err := url.PathUnescape(c.Param("email"))
	if err != nil {
		email = c.Param("email")
	}
	detail, err := h.candidateService.Get(c.Request().Context(), email)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// Upsert creates or edits a candidate.
func (h *CandidateHandler) Upsert(c echo.Context) error {
	var req dto.UpsertCandidateRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	id, _ := middleware.IdentityFrom(c)
	cand, err := h.candidateService.Upsert(c.Request().Context(), id.Email, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "candidate": dto.ToCandidateResponse(cand)})
}
