package delivery

import "time"

type Kind string

const (
	KindText         Kind = "text"
	KindAttachment   Kind = "attachment"
	KindButtons      Kind = "buttons"
	KindQuickReplies Kind = "quick_replies"
	KindSenderAction Kind = "sender_action"
	KindTelegram     Kind = "telegram"
)

type Delivery struct {
	recipientID string
	messageID   string
	kind        Kind
	sentAt      time.Time
}

func NewDelivery(recipientID, messageID string, kind Kind) *Delivery {
	return &Delivery{
		recipientID: recipientID,
		messageID:   messageID,
		kind:        kind,
		sentAt:      time.Now(),
	}
}

func RestoreDelivery(recipientID, messageID string, kind Kind, sentAt time.Time) *Delivery {
	return &Delivery{
		recipientID: recipientID,
		messageID:   messageID,
		kind:        kind,
		sentAt:      sentAt,
	}
}

func (d *Delivery) RecipientID() string { return d.recipientID }
func (d *Delivery) MessageID() string   { return d.messageID }
func (d *Delivery) Kind() Kind          { return d.kind }
func (d *Delivery) SentAt() time.Time   { return d.sentAt }
