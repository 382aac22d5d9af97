package messenger

// SendResult is the Send API response for an accepted request. MessageID is
// empty for sender actions.
type SendResult struct {
	RecipientID string `json:"recipient_id"`
	MessageID   string `json:"message_id"`
}
