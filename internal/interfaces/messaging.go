package interfaces

import "context"

// FulfillmentMessage is the job payload carried by the queue. The order's
// progress is never stored in the message; the scheduler re-derives it from
// the persisted status, which is what makes redelivery harmless.
type FulfillmentMessage struct {
	OrderID int `json:"order_id"`
}

// Messaging interfaces (Adapter/RabbitMQ)

type JobPublisher interface {
	PublishFulfillment(ctx context.Context, msg FulfillmentMessage) error
}

type JobConsumer interface {
	ConsumeFulfillment(ctx context.Context, handler FulfillmentHandler) error
}

type FulfillmentHandler func(ctx context.Context, body []byte) error
