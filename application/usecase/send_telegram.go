package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/vero4ka/botutils/application/dto"
	"github.com/vero4ka/botutils/application/port"
	"github.com/vero4ka/botutils/domain/delivery"
	"github.com/vero4ka/botutils/pkg/logger"
)

const channelTelegram = "telegram"

var ErrTelegramDisabled = errors.New("telegram is not configured")

// TelegramRecipientID is the delivery key for a Telegram chat. The prefix
// keeps chat IDs apart from Messenger page-scoped IDs.
func TelegramRecipientID(chatID int64) string {
	return "telegram:" + strconv.FormatInt(chatID, 10)
}

type SendTelegramUseCase struct {
	sender port.TelegramSender
	repo   delivery.Repository
	logger *slog.Logger
}

// NewSendTelegramUseCase accepts a nil sender; Execute then reports
// ErrTelegramDisabled.
func NewSendTelegramUseCase(sender port.TelegramSender, repo delivery.Repository, logger *slog.Logger) *SendTelegramUseCase {
	return &SendTelegramUseCase{
		sender: sender,
		repo:   repo,
		logger: logger,
	}
}

func (uc *SendTelegramUseCase) Execute(ctx context.Context, input dto.TelegramMessageInput) error {
	if uc.sender == nil {
		return ErrTelegramDisabled
	}

	log := logger.FromContext(ctx, uc.logger)
	kind := string(delivery.KindTelegram)

	if err := uc.sender.SendMarkdown(input.ChatID, input.Text); err != nil {
		sendsCounter(channelTelegram, kind, "error").Inc()
		log.Error("Telegram send failed",
			slog.Int64("chat_id", input.ChatID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("send telegram message: %w", err)
	}
	sendsCounter(channelTelegram, kind, "ok").Inc()

	recipientID := TelegramRecipientID(input.ChatID)
	log.Info("Telegram message sent",
		logger.SendFields(channelTelegram, recipientID, kind, ""),
	)

	recordDelivery(ctx, uc.repo, log, delivery.NewDelivery(recipientID, "", delivery.KindTelegram))
	return nil
}
