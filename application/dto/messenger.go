package dto

import "github.com/vero4ka/botutils/domain/messenger"

type TextMessageInput struct {
	RecipientID string `json:"recipient_id" binding:"required"`
	Text        string `json:"text"         binding:"required"`
}

type AttachmentInput struct {
	RecipientID string `json:"recipient_id" binding:"required"`
	Type        string `json:"type"         binding:"required,oneof=image file audio video"`
	URL         string `json:"url"          binding:"required"`
}

// ButtonInput carries the fields of every button kind; which of them are
// required depends on Type.
type ButtonInput struct {
	Type                string         `json:"type"                 binding:"required"`
	Title               string         `json:"title"`
	URL                 string         `json:"url"`
	Payload             string         `json:"payload"`
	WebviewHeightRatio  string         `json:"webview_height_ratio"`
	MessengerExtensions *bool          `json:"messenger_extensions"`
	PaymentSummary      map[string]any `json:"payment_summary"`
}

type ButtonsMessageInput struct {
	RecipientID string        `json:"recipient_id" binding:"required"`
	Text        string        `json:"text"         binding:"required"`
	Buttons     []ButtonInput `json:"buttons"      binding:"required,min=1,dive"`
}

type QuickReplyInput struct {
	ContentType string `json:"content_type" binding:"required"`
	Title       string `json:"title"`
	Payload     string `json:"payload"`
	ImageURL    string `json:"image_url"`
}

type QuickRepliesMessageInput struct {
	RecipientID  string            `json:"recipient_id"  binding:"required"`
	Text         string            `json:"text"          binding:"required"`
	QuickReplies []QuickReplyInput `json:"quick_replies" binding:"required,min=1,dive"`
}

type SenderActionInput struct {
	RecipientID  string `json:"recipient_id"  binding:"required"`
	SenderAction string `json:"sender_action" binding:"required"`
}

type SendOutput struct {
	RecipientID string `json:"recipient_id"`
	MessageID   string `json:"message_id,omitempty"`
}

func NewSendOutput(r *messenger.SendResult) SendOutput {
	if r == nil {
		return SendOutput{}
	}
	return SendOutput{
		RecipientID: r.RecipientID,
		MessageID:   r.MessageID,
	}
}
