package messagebuilder

import (
	"fmt"

	"github.com/vero4ka/botutils/application/dto"
	"github.com/vero4ka/botutils/application/port"
	"github.com/vero4ka/botutils/domain/messenger"
)

// Builder turns gateway request items into domain buttons and quick
// replies. URL buttons that leave out the webview options get the
// configured defaults.
type Builder struct {
	defaults port.ButtonDefaults
}

func NewBuilder(defaults port.ButtonDefaults) *Builder {
	return &Builder{defaults: defaults}
}

func (b *Builder) BuildButton(in dto.ButtonInput) (messenger.Button, error) {
	button, err := b.newButton(in)
	if err != nil {
		return nil, err
	}
	return button, nil
}

// newButton may return a typed nil pointer alongside an error.
func (b *Builder) newButton(in dto.ButtonInput) (messenger.Button, error) {
	switch messenger.ButtonType(in.Type) {
	case messenger.ButtonTypeURL:
		return b.buildURLButton(in)
	case messenger.ButtonTypePostback:
		return messenger.NewPostbackButton(in.Title, in.Payload)
	case messenger.ButtonTypeCall:
		return messenger.NewCallButton(in.Title, in.Payload)
	case messenger.ButtonTypeShare:
		return messenger.NewShareButton(), nil
	case messenger.ButtonTypeBuy:
		return messenger.NewBuyButton(in.Title, in.Payload, in.PaymentSummary)
	case messenger.ButtonTypeLogIn:
		return messenger.NewLogInButton(in.URL)
	case messenger.ButtonTypeLogOut:
		return messenger.NewLogOutButton(), nil
	default:
		return nil, fmt.Errorf("%w: unknown button type %q", messenger.ErrValidation, in.Type)
	}
}

func (b *Builder) buildURLButton(in dto.ButtonInput) (messenger.Button, error) {
	ratio := in.WebviewHeightRatio
	if ratio == "" {
		ratio = b.defaults.DefaultWebviewHeightRatio()
	}
	if !isWebviewHeightRatio(ratio) {
		return nil, fmt.Errorf("%w: unknown webview height ratio %q", messenger.ErrValidation, ratio)
	}

	extensions := b.defaults.DefaultMessengerExtensions()
	if in.MessengerExtensions != nil {
		extensions = *in.MessengerExtensions
	}

	return messenger.NewURLButton(in.Title, in.URL,
		messenger.WithWebviewHeightRatio(ratio),
		messenger.WithMessengerExtensions(extensions),
	)
}

func isWebviewHeightRatio(ratio string) bool {
	switch ratio {
	case messenger.WebviewHeightCompact, messenger.WebviewHeightTall, messenger.WebviewHeightFull:
		return true
	}
	return false
}

func (b *Builder) BuildButtons(inputs []dto.ButtonInput) ([]messenger.Button, error) {
	buttons := make([]messenger.Button, 0, len(inputs))
	for i, in := range inputs {
		button, err := b.BuildButton(in)
		if err != nil {
			return nil, fmt.Errorf("button %d: %w", i, err)
		}
		buttons = append(buttons, button)
	}
	return buttons, nil
}

func (b *Builder) BuildQuickReplies(inputs []dto.QuickReplyInput) ([]messenger.QuickReply, error) {
	replies := make([]messenger.QuickReply, 0, len(inputs))
	for i, in := range inputs {
		if in.ContentType != messenger.ContentTypeText && in.ContentType != messenger.ContentTypeLocation {
			return nil, fmt.Errorf("quick reply %d: %w: unknown content type %q", i, messenger.ErrValidation, in.ContentType)
		}
		reply, err := messenger.NewQuickReply(in.ContentType, in.Title, in.Payload, in.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("quick reply %d: %w", i, err)
		}
		replies = append(replies, reply)
	}
	return replies, nil
}
