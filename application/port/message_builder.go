package port

import (
	"github.com/vero4ka/botutils/application/dto"
	"github.com/vero4ka/botutils/domain/messenger"
)

type MessageBuilder interface {
	BuildButtons(inputs []dto.ButtonInput) ([]messenger.Button, error)
	BuildQuickReplies(inputs []dto.QuickReplyInput) ([]messenger.QuickReply, error)
}
