package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vero4ka/botutils/application/dto"
)

type TelegramExecutor interface {
	Execute(ctx context.Context, input dto.TelegramMessageInput) error
}

type TelegramHandler struct {
	sendTelegram TelegramExecutor
	logger       *slog.Logger
}

func NewTelegramHandler(sendTelegram TelegramExecutor, logger *slog.Logger) *TelegramHandler {
	return &TelegramHandler{sendTelegram: sendTelegram, logger: logger}
}

func (h *TelegramHandler) SendMessage(c *gin.Context) {
	var input dto.TelegramMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), sendTimeout)
	defer cancel()

	if err := h.sendTelegram.Execute(ctx, input); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}
