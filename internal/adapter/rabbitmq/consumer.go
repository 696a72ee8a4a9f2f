package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/askaruly/dastarhan/internal/interfaces"
)

type consumer struct {
	conn       Connection
	prefetch   int
	jobTimeout time.Duration
}

// NewConsumer builds the fulfillment job consumer. prefetch caps the number of
// concurrently executing jobs (deliveries are acked only after the handler
// returns); jobTimeout is the hard wall-clock budget applied to every job.
func NewConsumer(conn Connection, prefetch int, jobTimeout time.Duration) interfaces.JobConsumer {
	return &consumer{conn: conn, prefetch: prefetch, jobTimeout: jobTimeout}
}

func (c *consumer) ConsumeFulfillment(ctx context.Context, handler interfaces.FulfillmentHandler) error {
	for {
		err := c.consumeWithReconnect(ctx, handler)

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err == nil {
			return nil
		}

		log.Printf("Fulfillment consumer disconnected: %v. Reconnecting in 5 seconds...", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
			if rErr := c.conn.Reconnect(); rErr != nil {
				log.Printf("Reconnect failed: %v", rErr)
			}
		}
	}
}

func (c *consumer) consumeWithReconnect(ctx context.Context, handler interfaces.FulfillmentHandler) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	closeChan := ch.NotifyClose()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	if err := c.setupTopology(ch); err != nil {
		return err
	}

	msgs, err := ch.Consume(fulfillmentQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-closeChan:
			if err != nil {
				return fmt.Errorf("channel closed: %w", err)
			}
			return fmt.Errorf("channel closed gracefully")

		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("messages channel closed")
			}

			wg.Add(1)
			go func(msg amqp.Delivery) {
				defer wg.Done()
				c.handleDelivery(ctx, msg, handler)
			}(msg)
		}
	}
}

// handleDelivery runs one job under the hard timeout. Handler errors other
// than shutdown are dead-lettered, never requeued: the pipeline performs no
// automatic remediation beyond the broker's redelivery of unacked messages.
func (c *consumer) handleDelivery(ctx context.Context, msg amqp.Delivery, handler interfaces.FulfillmentHandler) {
	jobCtx, cancel := context.WithTimeout(ctx, c.jobTimeout)
	defer cancel()

	if err := handler(jobCtx, msg.Body); err != nil {
		if errors.Is(err, context.Canceled) {
			// Worker shutting down mid-job; hand it back to the queue.
			msg.Nack(false, true)
		} else {
			msg.Nack(false, false)
		}
		return
	}

	msg.Ack(false)
}

func (c *consumer) setupTopology(ch Channel) error {
	if err := ch.ExchangeDeclare(ordersExchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare orders exchange: %w", err)
	}

	if err := ch.ExchangeDeclare(dlqExchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare DLQ exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(fulfillmentQueueDLQ, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare DLQ: %w", err)
	}

	if err := ch.QueueBind(fulfillmentQueueDLQ, "#", dlqExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind DLQ: %w", err)
	}

	args := amqp.Table{
		"x-dead-letter-exchange": dlqExchange,
	}

	q, err := ch.QueueDeclare(fulfillmentQueue, true, false, false, false, args)
	if err != nil {
		return fmt.Errorf("failed to declare fulfillment queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, fulfillmentKey, ordersExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind fulfillment queue: %w", err)
	}

	return nil
}
