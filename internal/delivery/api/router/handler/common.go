// Package handler implements the HTTP handlers of the storefront API.
package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const codeValidationError = "VALIDATION_ERROR"

// validationFailed renders validator errors with per-field details.
func validationFailed(c echo.Context, err error) error {
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return response.BadRequestWithDetails(c, codeValidationError, "Input validation failed", verr.Fields)
	}

	return response.BadRequest(c, codeValidationError, err.Error())
}

// HealthCheck answers liveness probes.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
