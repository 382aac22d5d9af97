package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vero4ka/botutils/application/dto"
	"github.com/vero4ka/botutils/application/port"
	"github.com/vero4ka/botutils/domain/delivery"
	"github.com/vero4ka/botutils/domain/messenger"
	"github.com/vero4ka/botutils/pkg/logger"
)

const channelMessenger = "messenger"

type SendMessengerUseCase struct {
	client     port.MessengerClient
	msgBuilder port.MessageBuilder
	repo       delivery.Repository
	logger     *slog.Logger
}

func NewSendMessengerUseCase(
	client port.MessengerClient,
	msgBuilder port.MessageBuilder,
	repo delivery.Repository,
	logger *slog.Logger,
) *SendMessengerUseCase {
	return &SendMessengerUseCase{
		client:     client,
		msgBuilder: msgBuilder,
		repo:       repo,
		logger:     logger,
	}
}

func (uc *SendMessengerUseCase) SendText(ctx context.Context, input dto.TextMessageInput) (*dto.SendOutput, error) {
	result, err := uc.client.SendMessage(ctx, input.RecipientID, input.Text)
	return uc.finish(ctx, input.RecipientID, delivery.KindText, result, err)
}

func (uc *SendMessengerUseCase) SendAttachment(ctx context.Context, input dto.AttachmentInput) (*dto.SendOutput, error) {
	result, err := uc.client.SendAttachment(ctx, input.RecipientID, input.Type, input.URL)
	return uc.finish(ctx, input.RecipientID, delivery.KindAttachment, result, err)
}

func (uc *SendMessengerUseCase) SendButtons(ctx context.Context, input dto.ButtonsMessageInput) (*dto.SendOutput, error) {
	buttons, err := uc.msgBuilder.BuildButtons(input.Buttons)
	if err != nil {
		return nil, fmt.Errorf("build buttons: %w", err)
	}

	result, err := uc.client.SendButton(ctx, input.RecipientID, input.Text, buttons)
	return uc.finish(ctx, input.RecipientID, delivery.KindButtons, result, err)
}

func (uc *SendMessengerUseCase) SendQuickReplies(ctx context.Context, input dto.QuickRepliesMessageInput) (*dto.SendOutput, error) {
	replies, err := uc.msgBuilder.BuildQuickReplies(input.QuickReplies)
	if err != nil {
		return nil, fmt.Errorf("build quick replies: %w", err)
	}

	result, err := uc.client.SendQuickReply(ctx, input.RecipientID, input.Text, replies)
	return uc.finish(ctx, input.RecipientID, delivery.KindQuickReplies, result, err)
}

func (uc *SendMessengerUseCase) SendSenderAction(ctx context.Context, input dto.SenderActionInput) (*dto.SendOutput, error) {
	result, err := uc.client.SendSenderAction(ctx, input.RecipientID, input.SenderAction)
	return uc.finish(ctx, input.RecipientID, delivery.KindSenderAction, result, err)
}

func (uc *SendMessengerUseCase) finish(
	ctx context.Context,
	recipientID string,
	kind delivery.Kind,
	result *messenger.SendResult,
	sendErr error,
) (*dto.SendOutput, error) {
	log := logger.FromContext(ctx, uc.logger)

	if sendErr != nil {
		sendsCounter(channelMessenger, string(kind), "error").Inc()
		return nil, fmt.Errorf("send %s: %w", kind, sendErr)
	}
	sendsCounter(channelMessenger, string(kind), "ok").Inc()

	if result == nil {
		result = &messenger.SendResult{}
	}
	if result.RecipientID == "" {
		result.RecipientID = recipientID
	}

	log.Info("Messenger message sent",
		logger.SendFields(channelMessenger, result.RecipientID, string(kind), result.MessageID),
	)

	recordDelivery(ctx, uc.repo, log, delivery.NewDelivery(result.RecipientID, result.MessageID, kind))

	output := dto.NewSendOutput(result)
	return &output, nil
}

// recordDelivery logs repository failures instead of returning them.
func recordDelivery(ctx context.Context, repo delivery.Repository, log *slog.Logger, d *delivery.Delivery) {
	if err := repo.Save(ctx, d); err != nil {
		deliverySaveFailures.Inc()
		log.Warn("Failed to save delivery",
			slog.String("recipient_id", d.RecipientID()),
			slog.String("error", err.Error()),
		)
	}
}
