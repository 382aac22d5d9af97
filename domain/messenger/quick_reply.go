package messenger

import "fmt"

// QuickReply is a button shown above the composer. Title and payload are
// only used for text replies; the title is truncated by Messenger after
// 20 characters and the payload is limited to 1000.
type QuickReply struct {
	contentType string
	title       string
	payload     string
	imageURL    string
}

func NewQuickReply(contentType, title, payload, imageURL string) (QuickReply, error) {
	if contentType == ContentTypeText && title == "" && payload != "" {
		return QuickReply{}, fmt.Errorf("%w: you should specify title and payload", ErrValidation)
	}
	return QuickReply{
		contentType: contentType,
		title:       title,
		payload:     payload,
		imageURL:    imageURL,
	}, nil
}

func (q QuickReply) ContentType() string { return q.contentType }
func (q QuickReply) Title() string       { return q.title }
func (q QuickReply) ImageURL() string    { return q.imageURL }

func (q QuickReply) Payload() Payload {
	p := Payload{"content_type": q.contentType}
	if q.contentType == ContentTypeText {
		p["title"] = q.title
		p["payload"] = q.payload
	}
	if q.imageURL != "" {
		p["image_url"] = q.imageURL
	}
	return p
}
