package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"editorial-workflow/internal/domain"
	"editorial-workflow/internal/logger"
	"editorial-workflow/internal/middleware"
)

// ErrorResponse is the common error body.
type ErrorResponse struct {
	Error  string `json:"error"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// writeError maps a service error onto an HTTP status and body. The
// mapping is the single source of truth for the whole API surface.
func writeError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "conflict: the article changed underneath this request"})
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Field:  validationErr.Field,
			Reason: validationErr.Reason,
		})
	default:
		logger.Error("request failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// auditWarning extracts the non-fatal audit failure from err, if that is
// what err is. The operation itself succeeded in that case; the response
// carries the result plus a warning instead of an error status.
func auditWarning(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	if errors.Is(err, domain.ErrAuditWrite) {
		return "audit_write_failed", true
	}
	return "", false
}
