package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vero4ka/botutils/application/dto"
)

const sendTimeout = 30 * time.Second

type MessengerSender interface {
	SendText(ctx context.Context, input dto.TextMessageInput) (*dto.SendOutput, error)
	SendAttachment(ctx context.Context, input dto.AttachmentInput) (*dto.SendOutput, error)
	SendButtons(ctx context.Context, input dto.ButtonsMessageInput) (*dto.SendOutput, error)
	SendQuickReplies(ctx context.Context, input dto.QuickRepliesMessageInput) (*dto.SendOutput, error)
	SendSenderAction(ctx context.Context, input dto.SenderActionInput) (*dto.SendOutput, error)
}

type MessengerHandler struct {
	sender MessengerSender
	logger *slog.Logger
}

func NewMessengerHandler(sender MessengerSender, logger *slog.Logger) *MessengerHandler {
	return &MessengerHandler{sender: sender, logger: logger}
}

func (h *MessengerHandler) SendText(c *gin.Context) {
	handleSend(c, h, h.sender.SendText)
}

func (h *MessengerHandler) SendAttachment(c *gin.Context) {
	handleSend(c, h, h.sender.SendAttachment)
}

func (h *MessengerHandler) SendButtons(c *gin.Context) {
	handleSend(c, h, h.sender.SendButtons)
}

func (h *MessengerHandler) SendQuickReplies(c *gin.Context) {
	handleSend(c, h, h.sender.SendQuickReplies)
}

func (h *MessengerHandler) SendSenderAction(c *gin.Context) {
	handleSend(c, h, h.sender.SendSenderAction)
}

func handleSend[T any](c *gin.Context, h *MessengerHandler, send func(context.Context, T) (*dto.SendOutput, error)) {
	var input T
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), sendTimeout)
	defer cancel()

	output, err := send(ctx, input)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, output)
}
