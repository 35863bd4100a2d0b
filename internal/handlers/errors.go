package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fin_api/internal/apperrors"
	"github.com/SscSPs/fin_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

// respondWithError writes err with the status apperrors maps it to.
// Internal errors are logged and replaced by fallback so nothing leaks to the client.
func respondWithError(c *gin.Context, err error, fallback string) {
	status := apperrors.StatusCode(err)
	switch {
	case apperrors.IsRetryable(err):
		c.Header("Retry-After", "1")
		c.JSON(status, ErrorResponse{Error: "Service temporarily unavailable, please retry", Retryable: true})
		return
	case status >= http.StatusInternalServerError:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: fallback})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// requireUserID reads the authenticated user or aborts with 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}
