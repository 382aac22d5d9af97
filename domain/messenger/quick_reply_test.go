package messenger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuickReply(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		title       string
		payload     string
		imageURL    string
		expected    Payload
	}{
		{
			name:        "text with title only",
			contentType: ContentTypeText,
			title:       "Hi",
			expected:    Payload{"content_type": "text", "title": "Hi", "payload": ""},
		},
		{
			name:        "text with title and payload",
			contentType: ContentTypeText,
			title:       "Red",
			payload:     "PICK_RED",
			expected:    Payload{"content_type": "text", "title": "Red", "payload": "PICK_RED"},
		},
		{
			name:        "text with image",
			contentType: ContentTypeText,
			title:       "Red",
			payload:     "PICK_RED",
			imageURL:    "https://example.com/red.png",
			expected: Payload{
				"content_type": "text",
				"title":        "Red",
				"payload":      "PICK_RED",
				"image_url":    "https://example.com/red.png",
			},
		},
		{
			name:        "location",
			contentType: ContentTypeLocation,
			expected:    Payload{"content_type": "location"},
		},
		{
			name:        "location ignores title and payload",
			contentType: ContentTypeLocation,
			title:       "ignored",
			payload:     "ignored",
			expected:    Payload{"content_type": "location"},
		},
		{
			name:        "image attached regardless of content type",
			contentType: ContentTypeLocation,
			imageURL:    "https://example.com/pin.png",
			expected:    Payload{"content_type": "location", "image_url": "https://example.com/pin.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuickReply(tt.contentType, tt.title, tt.payload, tt.imageURL)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, q.Payload())
		})
	}
}

func TestNewQuickReplyPayloadWithoutTitle(t *testing.T) {
	q, err := NewQuickReply(ContentTypeText, "", "x", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "you should specify title and payload")
	assert.Equal(t, QuickReply{}, q)
}

func TestNewQuickReplyEmptyText(t *testing.T) {
	q, err := NewQuickReply(ContentTypeText, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, Payload{"content_type": "text", "title": "", "payload": ""}, q.Payload())
}
