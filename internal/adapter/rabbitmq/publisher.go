package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/askaruly/dastarhan/internal/interfaces"
)

const (
	ordersExchange      = "orders_direct"
	fulfillmentQueue    = "fulfillment_queue"
	fulfillmentKey      = "fulfillment"
	dlqExchange         = "orders_dlq"
	fulfillmentQueueDLQ = "fulfillment_queue_dlq"
)

type publisher struct {
	conn Connection
}

func NewPublisher(conn Connection) interfaces.JobPublisher {
	return &publisher{conn: conn}
}

// PublishFulfillment submits a fulfillment job for a committed order. The
// message carries only the order id; durability and delivery are the broker's
// concern from here on.
func (p *publisher) PublishFulfillment(ctx context.Context, msg interfaces.FulfillmentMessage) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(ordersExchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = ch.Publish(ordersExchange, fulfillmentKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}
