package dto

import (
	"time"

	"github.com/vero4ka/botutils/domain/delivery"
)

type DeliveryOutput struct {
	RecipientID string    `json:"recipient_id"`
	MessageID   string    `json:"message_id,omitempty"`
	Kind        string    `json:"kind"`
	SentAt      time.Time `json:"sent_at"`
}

func NewDeliveryOutput(d *delivery.Delivery) DeliveryOutput {
	return DeliveryOutput{
		RecipientID: d.RecipientID(),
		MessageID:   d.MessageID(),
		Kind:        string(d.Kind()),
		SentAt:      d.SentAt(),
	}
}
