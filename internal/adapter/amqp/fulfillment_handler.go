package amqp

import (
	"context"
	"encoding/json"

	"github.com/askaruly/dastarhan/internal/adapter/logger"
	"github.com/askaruly/dastarhan/internal/interfaces"
)

type FulfillmentHandler struct {
	service interfaces.FulfillmentService
	logger  logger.Logger
}

func NewFulfillmentHandler(service interfaces.FulfillmentService, logger logger.Logger) *FulfillmentHandler {
	return &FulfillmentHandler{
		service: service,
		logger:  logger,
	}
}

func (h *FulfillmentHandler) HandleJob(ctx context.Context, body []byte) error {
	var msg interfaces.FulfillmentMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		h.logger.Error("message_parse_failed", "Failed to parse fulfillment message", "", nil, err)
		return err
	}

	return h.service.ProcessOrder(ctx, msg.OrderID)
}
