package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vero4ka/botutils/application/usecase"
	"github.com/vero4ka/botutils/domain/delivery"
	"github.com/vero4ka/botutils/domain/messenger"
	"github.com/vero4ka/botutils/pkg/logger"
)

func statusForError(err error) int {
	switch {
	case errors.Is(err, messenger.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, messenger.ErrSendFailed):
		return http.StatusBadGateway
	case errors.Is(err, delivery.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrTelegramDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps use case errors to a JSON error response. Internal
// errors are logged and hidden from the caller.
func writeError(c *gin.Context, log *slog.Logger, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(c.Request.Context(), log).Error("Request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func writeBindError(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "detail": err.Error()})
}
