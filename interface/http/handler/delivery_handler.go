package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vero4ka/botutils/application/dto"
)

type DeliveryFinder interface {
	Execute(ctx context.Context, recipientID string) (*dto.DeliveryOutput, error)
}

type DeliveryHandler struct {
	getDelivery DeliveryFinder
	logger      *slog.Logger
}

func NewDeliveryHandler(getDelivery DeliveryFinder, logger *slog.Logger) *DeliveryHandler {
	return &DeliveryHandler{getDelivery: getDelivery, logger: logger}
}

func (h *DeliveryHandler) GetLatest(c *gin.Context) {
	output, err := h.getDelivery.Execute(c.Request.Context(), c.Param("recipient_id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, output)
}
