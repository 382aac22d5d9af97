package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/vero4ka/botutils/application/dto"
	"github.com/vero4ka/botutils/domain/delivery"
	"github.com/vero4ka/botutils/domain/messenger"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type mockDeliveryRepository struct {
	deliveries map[string]*delivery.Delivery
	saveErr    error
	findErr    error
	pingErr    error
	saveCalls  int
}

func newMockDeliveryRepository() *mockDeliveryRepository {
	return &mockDeliveryRepository{
		deliveries: make(map[string]*delivery.Delivery),
	}
}

func (m *mockDeliveryRepository) Save(ctx context.Context, d *delivery.Delivery) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.deliveries[d.RecipientID()] = d
	return nil
}

func (m *mockDeliveryRepository) FindLatest(ctx context.Context, recipientID string) (*delivery.Delivery, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	d, ok := m.deliveries[recipientID]
	if !ok {
		return nil, delivery.ErrNotFound
	}
	return d, nil
}

func (m *mockDeliveryRepository) Ping(ctx context.Context) error {
	return m.pingErr
}

type sendCall struct {
	method      string
	recipientID string
	text        string
	extra       string
	buttons     []messenger.Button
	replies     []messenger.QuickReply
}

type mockMessengerClient struct {
	calls  []sendCall
	result *messenger.SendResult
	err    error
}

func (m *mockMessengerClient) respond() (*messenger.SendResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockMessengerClient) SendMessage(ctx context.Context, recipientID, text string) (*messenger.SendResult, error) {
	m.calls = append(m.calls, sendCall{method: "SendMessage", recipientID: recipientID, text: text})
	return m.respond()
}

func (m *mockMessengerClient) SendAttachment(ctx context.Context, recipientID, attachmentType, url string) (*messenger.SendResult, error) {
	m.calls = append(m.calls, sendCall{method: "SendAttachment", recipientID: recipientID, text: url, extra: attachmentType})
	return m.respond()
}

func (m *mockMessengerClient) SendButton(ctx context.Context, recipientID, text string, buttons []messenger.Button) (*messenger.SendResult, error) {
	m.calls = append(m.calls, sendCall{method: "SendButton", recipientID: recipientID, text: text, buttons: buttons})
	return m.respond()
}

func (m *mockMessengerClient) SendQuickReply(ctx context.Context, recipientID, text string, replies []messenger.QuickReply) (*messenger.SendResult, error) {
	m.calls = append(m.calls, sendCall{method: "SendQuickReply", recipientID: recipientID, text: text, replies: replies})
	return m.respond()
}

func (m *mockMessengerClient) SendSenderAction(ctx context.Context, recipientID, action string) (*messenger.SendResult, error) {
	m.calls = append(m.calls, sendCall{method: "SendSenderAction", recipientID: recipientID, extra: action})
	return m.respond()
}

type mockMessageBuilder struct {
	buttons    []messenger.Button
	replies    []messenger.QuickReply
	buttonsErr error
	repliesErr error
}

func (m *mockMessageBuilder) BuildButtons(inputs []dto.ButtonInput) ([]messenger.Button, error) {
	if m.buttonsErr != nil {
		return nil, m.buttonsErr
	}
	return m.buttons, nil
}

func (m *mockMessageBuilder) BuildQuickReplies(inputs []dto.QuickReplyInput) ([]messenger.QuickReply, error) {
	if m.repliesErr != nil {
		return nil, m.repliesErr
	}
	return m.replies, nil
}

type markdownCall struct {
	chatID  int64
	message string
}

type mockTelegramSender struct {
	calls []markdownCall
	err   error
}

func (m *mockTelegramSender) SendMarkdown(chatID int64, message string) error {
	m.calls = append(m.calls, markdownCall{chatID: chatID, message: message})
	return m.err
}
