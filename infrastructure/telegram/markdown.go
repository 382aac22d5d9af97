package telegram

import (
	"github.com/VictoriaMetrics/metrics"
	"github.com/enescakir/emoji"
)

const ParseModeMarkdown = "Markdown"

var (
	telegramSendOK  = metrics.NewCounter(`telegram_messages_total{status="ok"}`)
	telegramSendErr = metrics.NewCounter(`telegram_messages_total{status="error"}`)
)

// MessageSender delivers text to a Telegram chat using the given parse mode.
type MessageSender interface {
	SendMessage(chatID int64, text, parseMode string) error
}

// SendMarkdownMessage expands emoji aliases such as :smile: and sends the
// result with Markdown formatting. Errors from sender are returned as is.
func SendMarkdownMessage(sender MessageSender, chatID int64, message string) error {
	err := sender.SendMessage(chatID, emoji.Parse(message), ParseModeMarkdown)
	if err != nil {
		telegramSendErr.Inc()
		return err
	}
	telegramSendOK.Inc()
	return nil
}

// MarkdownSender binds SendMarkdownMessage to one MessageSender.
type MarkdownSender struct {
	sender MessageSender
}

func NewMarkdownSender(sender MessageSender) *MarkdownSender {
	return &MarkdownSender{sender: sender}
}

func (m *MarkdownSender) SendMarkdown(chatID int64, message string) error {
	return SendMarkdownMessage(m.sender, chatID, message)
}
