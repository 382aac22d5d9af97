package port

import (
	"context"

	"github.com/vero4ka/botutils/domain/messenger"
)

type MessengerClient interface {
	SendMessage(ctx context.Context, recipientID, text string) (*messenger.SendResult, error)
	SendAttachment(ctx context.Context, recipientID, attachmentType, url string) (*messenger.SendResult, error)
	SendButton(ctx context.Context, recipientID, text string, buttons []messenger.Button) (*messenger.SendResult, error)
	SendQuickReply(ctx context.Context, recipientID, text string, replies []messenger.QuickReply) (*messenger.SendResult, error)
	SendSenderAction(ctx context.Context, recipientID, action string) (*messenger.SendResult, error)
}
