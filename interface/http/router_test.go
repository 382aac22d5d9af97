package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vero4ka/botutils/application/dto"
	"github.com/vero4ka/botutils/domain/delivery"
	"github.com/vero4ka/botutils/interface/http/handler"
)

type stubDeliveryFinder struct{}

func (stubDeliveryFinder) Execute(ctx context.Context, recipientID string) (*dto.DeliveryOutput, error) {
	return nil, delivery.ErrNotFound
}

type stubMessengerSender struct{}

func (stubMessengerSender) SendText(ctx context.Context, input dto.TextMessageInput) (*dto.SendOutput, error) {
	return &dto.SendOutput{}, nil
}

func (stubMessengerSender) SendAttachment(ctx context.Context, input dto.AttachmentInput) (*dto.SendOutput, error) {
	return &dto.SendOutput{}, nil
}

func (stubMessengerSender) SendButtons(ctx context.Context, input dto.ButtonsMessageInput) (*dto.SendOutput, error) {
	return &dto.SendOutput{}, nil
}

func (stubMessengerSender) SendQuickReplies(ctx context.Context, input dto.QuickRepliesMessageInput) (*dto.SendOutput, error) {
	return &dto.SendOutput{}, nil
}

func (stubMessengerSender) SendSenderAction(ctx context.Context, input dto.SenderActionInput) (*dto.SendOutput, error) {
	return &dto.SendOutput{}, nil
}

type stubTelegramExecutor struct{}

func (stubTelegramExecutor) Execute(ctx context.Context, input dto.TelegramMessageInput) error {
	return nil
}

type stubPinger struct{}

func (stubPinger) Ping(ctx context.Context) error { return nil }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	router := NewRouter(
		logger,
		handler.NewMessengerHandler(stubMessengerSender{}, logger),
		handler.NewTelegramHandler(stubTelegramExecutor{}, logger),
		handler.NewDeliveryHandler(stubDeliveryFinder{}, logger),
		handler.NewHealthHandler(stubPinger{}),
	)
	require.NotNil(t, router)
	return router
}

func TestNewRouter(t *testing.T) {
	router := newTestRouter(t)

	routes := make(map[string]string)
	for _, route := range router.Routes() {
		routes[route.Method+" "+route.Path] = route.Handler
	}

	expected := []string{
		"GET /health/live",
		"GET /health/ready",
		"GET /metrics",
		"POST /api/v1/messenger/messages",
		"POST /api/v1/messenger/attachments",
		"POST /api/v1/messenger/buttons",
		"POST /api/v1/messenger/quick-replies",
		"POST /api/v1/messenger/sender-actions",
		"GET /api/v1/messenger/deliveries/:recipient_id",
		"POST /api/v1/telegram/messages",
	}
	for _, route := range expected {
		assert.Contains(t, routes, route)
	}
	assert.Len(t, routes, len(expected))
}

func TestRouterHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, path, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Empty(t, w.Header().Get("X-Request-ID"), "probes skip the API middleware")
		})
	}
}

func TestRouterAPIv1Endpoints(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "messages", method: http.MethodPost, path: "/api/v1/messenger/messages", expectedStatus: http.StatusBadRequest},
		{name: "attachments", method: http.MethodPost, path: "/api/v1/messenger/attachments", expectedStatus: http.StatusBadRequest},
		{name: "buttons", method: http.MethodPost, path: "/api/v1/messenger/buttons", expectedStatus: http.StatusBadRequest},
		{name: "quick replies", method: http.MethodPost, path: "/api/v1/messenger/quick-replies", expectedStatus: http.StatusBadRequest},
		{name: "sender actions", method: http.MethodPost, path: "/api/v1/messenger/sender-actions", expectedStatus: http.StatusBadRequest},
		{name: "telegram", method: http.MethodPost, path: "/api/v1/telegram/messages", expectedStatus: http.StatusBadRequest},
		{name: "deliveries", method: http.MethodGet, path: "/api/v1/messenger/deliveries/123", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "RequestID middleware should run on API routes")
		})
	}
}

func TestRouterNotFoundRoute(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/health/live", nil)

	router.ServeHTTP(w, req)

	assert.True(t, w.Code == http.StatusNotFound || w.Code == http.StatusMethodNotAllowed,
		"should return 404 or 405 for wrong HTTP method")
}
