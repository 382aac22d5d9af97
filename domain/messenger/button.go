package messenger

import (
	"fmt"
	"maps"
)

// Payload is a JSON-ready fragment of a Send API request.
type Payload map[string]any

// Button is implemented only by the button kinds in this package.
// Payload returns a new map on every call.
type Button interface {
	Type() ButtonType
	Payload() Payload
	isButton()
}

// URLButton opens a webpage in the in-app browser.
type URLButton struct {
	title               string
	url                 string
	webviewHeightRatio  string
	messengerExtensions bool
}

type URLButtonOption func(*URLButton)

// WithWebviewHeightRatio sets the webview height: compact, tall or full.
func WithWebviewHeightRatio(ratio string) URLButtonOption {
	return func(b *URLButton) {
		b.webviewHeightRatio = ratio
	}
}

// WithMessengerExtensions must be enabled when the page uses Messenger Extensions.
func WithMessengerExtensions(enabled bool) URLButtonOption {
	return func(b *URLButton) {
		b.messengerExtensions = enabled
	}
}

func NewURLButton(title, url string, opts ...URLButtonOption) (*URLButton, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: url button requires a title", ErrValidation)
	}
	if url == "" {
		return nil, fmt.Errorf("%w: url button requires a url", ErrValidation)
	}

	b := &URLButton{
		title:               title,
		url:                 url,
		webviewHeightRatio:  WebviewHeightFull,
		messengerExtensions: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

func (b *URLButton) Type() ButtonType { return ButtonTypeURL }
func (b *URLButton) isButton()        {}

func (b *URLButton) Payload() Payload {
	return Payload{
		"type":                 string(ButtonTypeURL),
		"title":                b.title,
		"url":                  b.url,
		"webview_height_ratio": b.webviewHeightRatio,
		"messenger_extensions": b.messengerExtensions,
	}
}

// PostbackButton sends the developer-defined payload back to the webhook.
type PostbackButton struct {
	title   string
	payload string
}

func NewPostbackButton(title, payload string) (*PostbackButton, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: postback button requires a title", ErrValidation)
	}
	if payload == "" {
		return nil, fmt.Errorf("%w: postback button requires a payload", ErrValidation)
	}
	return &PostbackButton{title: title, payload: payload}, nil
}

func (b *PostbackButton) Type() ButtonType { return ButtonTypePostback }
func (b *PostbackButton) isButton()        {}

func (b *PostbackButton) Payload() Payload {
	return Payload{
		"type":    string(ButtonTypePostback),
		"title":   b.title,
		"payload": b.payload,
	}
}

// CallButton dials a phone number when tapped. The number is expected in
// +<country><area><local> form, e.g. +16505551234; the format is not checked.
type CallButton struct {
	title   string
	payload string
}

func NewCallButton(title, phoneNumber string) (*CallButton, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: call button requires a title", ErrValidation)
	}
	if phoneNumber == "" {
		return nil, fmt.Errorf("%w: call button requires a phone number", ErrValidation)
	}
	return &CallButton{title: title, payload: phoneNumber}, nil
}

func (b *CallButton) Type() ButtonType { return ButtonTypeCall }
func (b *CallButton) isButton()        {}

func (b *CallButton) Payload() Payload {
	return Payload{
		"type":    string(ButtonTypeCall),
		"title":   b.title,
		"payload": b.payload,
	}
}

// ShareButton opens the share dialog for the message bubble.
type ShareButton struct{}

func NewShareButton() *ShareButton {
	return &ShareButton{}
}

func (b *ShareButton) Type() ButtonType { return ButtonTypeShare }
func (b *ShareButton) isButton()        {}

func (b *ShareButton) Payload() Payload {
	return Payload{"type": string(ButtonTypeShare)}
}

// BuyButton opens a checkout dialog.
type BuyButton struct {
	title          string
	payload        string
	paymentSummary map[string]any
}

func NewBuyButton(title, payload string, paymentSummary map[string]any) (*BuyButton, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: buy button requires a title", ErrValidation)
	}
	if payload == "" {
		return nil, fmt.Errorf("%w: buy button requires a payload", ErrValidation)
	}
	if paymentSummary == nil {
		return nil, fmt.Errorf("%w: buy button requires a payment summary", ErrValidation)
	}
	return &BuyButton{
		title:          title,
		payload:        payload,
		paymentSummary: maps.Clone(paymentSummary),
	}, nil
}

func (b *BuyButton) Type() ButtonType { return ButtonTypeBuy }
func (b *BuyButton) isButton()        {}

func (b *BuyButton) Payload() Payload {
	return Payload{
		"type":            string(ButtonTypeBuy),
		"title":           b.title,
		"payload":         b.payload,
		"payment_summary": maps.Clone(b.paymentSummary),
	}
}

// LogInButton starts the account linking flow. The url is the
// authentication callback and must use https.
type LogInButton struct {
	url string
}

func NewLogInButton(url string) (*LogInButton, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: log in button requires a url", ErrValidation)
	}
	return &LogInButton{url: url}, nil
}

func (b *LogInButton) Type() ButtonType { return ButtonTypeLogIn }
func (b *LogInButton) isButton()        {}

func (b *LogInButton) Payload() Payload {
	return Payload{
		"type": string(ButtonTypeLogIn),
		"url":  b.url,
	}
}

// LogOutButton unlinks the account.
type LogOutButton struct{}

func NewLogOutButton() *LogOutButton {
	return &LogOutButton{}
}

func (b *LogOutButton) Type() ButtonType { return ButtonTypeLogOut }
func (b *LogOutButton) isButton()        {}

func (b *LogOutButton) Payload() Payload {
	return Payload{"type": string(ButtonTypeLogOut)}
}
