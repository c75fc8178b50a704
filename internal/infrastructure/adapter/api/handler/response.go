package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/payledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/api/dto"
)

// statusFor maps a domain error to its HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidSyncPayload):
		return http.StatusUnprocessableEntity
	case errs.IsValidationError(err), errs.IsInsufficientFundsError(err), errors.Is(err, errs.ErrInvalidRequest):
		return http.StatusBadRequest
	case errs.IsSyncError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the error's code. Internal failure details are
// logged but not exposed.
func writeError(c *gin.Context, logger coreport.Logger, op string, err error) {
	status := statusFor(err)
	message := err.Error()

	fields := map[string]any{
		"operation": op,
		"error":     err.Error(),
		"code":      errs.ErrorCode(err),
	}
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		logger.Error("Request failed", fields)
		message = "Internal server error"
	} else {
		logger.Warn("Request rejected", fields)
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: message,
	})
}

// badRequest answers a malformed request body or parameter
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.ErrorCode(errs.ErrInvalidRequest),
		Message: message,
	})
}
