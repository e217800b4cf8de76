package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	appErrors "interview-scheduler/internal/pkg/errors"
	"interview-scheduler/internal/pkg/logger"
)

// errorResponse is the body of every failed API call.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps service errors to HTTP statuses. Client errors carry their
// message verbatim; anything unexpected is logged and reported as 500.
func writeError(c echo.Context, log logger.Logger, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, appErrors.ErrOverlap), errors.Is(err, appErrors.ErrCandidateBusy):
		status = http.StatusConflict
	case appErrors.IsRejection(err),
		errors.Is(err, appErrors.ErrMissingFields),
		errors.Is(err, appErrors.ErrInvalidEmail),
		errors.Is(err, appErrors.ErrInvalidInput),
		errors.Is(err, appErrors.ErrInvalidPolicy):
		status = http.StatusBadRequest
	case errors.Is(err, appErrors.ErrAppointmentNotFound),
		errors.Is(err, appErrors.ErrCandidateNotFound),
		errors.Is(err, appErrors.ErrPolicyNotFound):
		status = http.StatusNotFound
	case errors.Is(err, appErrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, appErrors.ErrForbidden):
		status = http.StatusForbidden
	}

	if status == http.StatusInternalServerError {
		log.Error("Request failed", err)
		return c.JSON(status, errorResponse{Error: appErrors.ErrInternalServer.Error()})
	}
	return c.JSON(status, errorResponse{Error: err.Error()})
}

// badBody answers a request whose JSON body could not be decoded.
func badBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
}
