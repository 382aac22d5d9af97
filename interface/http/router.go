package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/vero4ka/botutils/interface/http/handler"
	"github.com/vero4ka/botutils/interface/http/middleware"
)

const maxBodyBytes = 1 << 20

func NewRouter(
	log *slog.Logger,
	messengerHandler *handler.MessengerHandler,
	telegramHandler *handler.TelegramHandler,
	deliveryHandler *handler.DeliveryHandler,
	healthHandler *handler.HealthHandler,
) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery(log))

	// Probes and metrics skip the API middleware.
	router.GET("/health/live", healthHandler.Live)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/metrics", healthHandler.Metrics)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequestID())
	v1.Use(middleware.BodyLimit(maxBodyBytes))
	v1.Use(middleware.Metrics())
	v1.Use(middleware.Logging(log))

	fb := v1.Group("/messenger")
	{
		fb.POST("/messages", messengerHandler.SendText)
		fb.POST("/attachments", messengerHandler.SendAttachment)
		fb.POST("/buttons", messengerHandler.SendButtons)
		fb.POST("/quick-replies", messengerHandler.SendQuickReplies)
		fb.POST("/sender-actions", messengerHandler.SendSenderAction)
		fb.GET("/deliveries/:recipient_id", deliveryHandler.GetLatest)
	}

	v1.POST("/telegram/messages", telegramHandler.SendMessage)

	return router
}
