package messenger

import "maps"

// TextMessage wraps plain UTF-8 text (640 character limit).
func TextMessage(text string) Payload {
	return Payload{
		"message": Payload{
			"text": text,
		},
	}
}

// AttachmentMessage shares media by URL. The attachment type is one of
// image, file, audio or video and is not checked.
func AttachmentMessage(attachmentType, url string) Payload {
	return Payload{
		"message": Payload{
			"attachment": Payload{
				"type": attachmentType,
				"payload": Payload{
					"url": url,
				},
			},
		},
	}
}

// ButtonTemplateMessage sends text with up to three buttons underneath.
func ButtonTemplateMessage(text string, buttons []Button) Payload {
	serialized := make([]Payload, len(buttons))
	for i, b := range buttons {
		serialized[i] = b.Payload()
	}

	return Payload{
		"message": Payload{
			"attachment": Payload{
				"type": AttachmentTypeTemplate,
				"payload": Payload{
					"template_type": TemplateTypeButton,
					"text":          text,
					"buttons":       serialized,
				},
			},
		},
	}
}

func QuickReplyMessage(text string, replies []QuickReply) Payload {
	serialized := make([]Payload, len(replies))
	for i, q := range replies {
		serialized[i] = q.Payload()
	}

	return Payload{
		"message": Payload{
			"text":          text,
			"quick_replies": serialized,
		},
	}
}

// SenderActionMessage sets the typing indicator or marks the last message
// as seen. Typing indicators turn off by themselves after 20 seconds.
func SenderActionMessage(action SenderAction) Payload {
	return Payload{"sender_action": action.String()}
}

// WithRecipient returns a copy of p addressed to recipientID. p is left untouched.
func WithRecipient(p Payload, recipientID string) Payload {
	out := maps.Clone(p)
	if out == nil {
		out = Payload{}
	}
	out["recipient"] = Payload{"id": recipientID}
	return out
}
