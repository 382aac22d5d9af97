package facebook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/VictoriaMetrics/metrics"

	"github.com/vero4ka/botutils/domain/messenger"
	"github.com/vero4ka/botutils/pkg/logger"
)

const (
	DefaultBaseURL    = "https://graph.facebook.com"
	DefaultAPIVersion = "v2.6"
	DefaultTimeout    = 30 * time.Second

	maxErrorBodyBytes = 4096
)

var (
	graphSendOK  = metrics.NewCounter(`messenger_api_calls_total{operation="send",status="ok"}`)
	graphSendErr = metrics.NewCounter(`messenger_api_calls_total{operation="send",status="error"}`)
	graphSendDur = metrics.NewHistogram(`messenger_api_duration_seconds{operation="send"}`)
)

// Client sends messages on behalf of one page. It is never modified after
// NewClient returns and may be shared between goroutines.
type Client struct {
	baseURL    string
	apiVersion string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

func WithAPIVersion(version string) Option {
	return func(c *Client) {
		c.apiVersion = version
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func NewClient(baseURL, pageAccessToken string, logger *slog.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:    baseURL,
		apiVersion: DefaultAPIVersion,
		token:      pageAccessToken,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) endpoint() string {
	return c.baseURL + "/" + c.apiVersion + "/me/messages"
}

// CallSendAPI addresses payload to recipientID and posts it to the Send API.
// payload itself is not modified.
func (c *Client) CallSendAPI(ctx context.Context, recipientID string, payload messenger.Payload) (*messenger.SendResult, error) {
	start := time.Now()
	endpoint := c.endpoint()
	reqURL := endpoint + "?" + url.Values{"access_token": {c.token}}.Encode()

	jsonBody, err := json.Marshal(messenger.WithRecipient(payload, recipientID))
	if err != nil {
		return nil, fmt.Errorf("marshal send body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		duration := time.Since(start).Milliseconds()
		c.logger.Error("Messenger SendAPI failed",
			logger.ExternalFieldsWithError("messenger", endpoint, "POST", 0, duration, redact(err.Error(), c.token)),
		)
		graphSendErr.Inc()
		return nil, fmt.Errorf("%w: %s", messenger.ErrSendFailed, redact(err.Error(), c.token))
	}
	defer func() { _ = resp.Body.Close() }()

	duration := time.Since(start).Milliseconds()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		c.logger.Error("Messenger SendAPI non-200",
			logger.ExternalFieldsWithError("messenger", endpoint, "POST", resp.StatusCode, duration, string(respBody)),
		)
		graphSendErr.Inc()
		return nil, newAPIError(resp.StatusCode, respBody)
	}

	var result messenger.SendResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode send response: %w", err)
	}

	c.logger.Debug("Messenger SendAPI completed",
		logger.ExternalFields("messenger", endpoint, "POST", resp.StatusCode, duration),
	)
	graphSendOK.Inc()
	graphSendDur.Update(float64(duration) / 1000)

	return &result, nil
}

// redact hides the access token that net/http echoes back in url.Error messages.
func redact(msg, token string) string {
	if token == "" {
		return msg
	}
	return strings.ReplaceAll(msg, url.QueryEscape(token), "REDACTED")
}

// SendMessage sends plain text. Text must be UTF-8, up to 640 characters.
func (c *Client) SendMessage(ctx context.Context, recipientID, text string) (*messenger.SendResult, error) {
	return c.CallSendAPI(ctx, recipientID, messenger.TextMessage(text))
}

func (c *Client) SendAttachment(ctx context.Context, recipientID, attachmentType, url string) (*messenger.SendResult, error) {
	return c.CallSendAPI(ctx, recipientID, messenger.AttachmentMessage(attachmentType, url))
}

func (c *Client) SendAudio(ctx context.Context, recipientID, url string) (*messenger.SendResult, error) {
	return c.SendAttachment(ctx, recipientID, messenger.AttachmentTypeAudio, url)
}

func (c *Client) SendFile(ctx context.Context, recipientID, url string) (*messenger.SendResult, error) {
	return c.SendAttachment(ctx, recipientID, messenger.AttachmentTypeFile, url)
}

// SendImage shares an image by URL. Supported formats are jpg, png and gif.
func (c *Client) SendImage(ctx context.Context, recipientID, url string) (*messenger.SendResult, error) {
	return c.SendAttachment(ctx, recipientID, messenger.AttachmentTypeImage, url)
}

func (c *Client) SendVideo(ctx context.Context, recipientID, url string) (*messenger.SendResult, error) {
	return c.SendAttachment(ctx, recipientID, messenger.AttachmentTypeVideo, url)
}

// SendButton sends text with buttons that open a URL or call back the webhook.
func (c *Client) SendButton(ctx context.Context, recipientID, text string, buttons []messenger.Button) (*messenger.SendResult, error) {
	return c.CallSendAPI(ctx, recipientID, messenger.ButtonTemplateMessage(text, buttons))
}

func (c *Client) SendQuickReply(ctx context.Context, recipientID, text string, replies []messenger.QuickReply) (*messenger.SendResult, error) {
	return c.CallSendAPI(ctx, recipientID, messenger.QuickReplyMessage(text, replies))
}

// SendSenderAction rejects unknown actions before touching the network.
func (c *Client) SendSenderAction(ctx context.Context, recipientID, action string) (*messenger.SendResult, error) {
	senderAction, err := messenger.ParseSenderAction(action)
	if err != nil {
		return nil, err
	}
	return c.CallSendAPI(ctx, recipientID, messenger.SenderActionMessage(senderAction))
}
