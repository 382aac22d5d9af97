package telegram

import (
	"fmt"

	"gopkg.in/telebot.v3"
)

// TelebotAdapter implements MessageSender on top of gopkg.in/telebot.v3.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// NewBot creates a bot for outbound messages only; nothing polls for
// updates. An empty apiURL selects the public Bot API.
func NewBot(token, apiURL string) (*telebot.Bot, error) {
	b, err := telebot.NewBot(telebot.Settings{
		URL:     apiURL,
		Token:   token,
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return b, nil
}

func (a *TelebotAdapter) SendMessage(chatID int64, text, parseMode string) error {
	_, err := a.bot.Send(&telebot.Chat{ID: chatID}, text, &telebot.SendOptions{
		ParseMode: telebot.ParseMode(parseMode),
	})
	if err != nil {
		return fmt.Errorf("telegram send message: %w", err)
	}
	return nil
}
