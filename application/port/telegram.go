package port

type TelegramSender interface {
	SendMarkdown(chatID int64, message string) error
}
