package notify

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationsExchange is the durable topic exchange order notifications
// are broadcast on.
const NotificationsExchange = "storefront.notifications"

// Target selects the push addressing mode: a topic for broadcast or a
// phone number for a direct message. Exactly one should be set per call.
type Target struct {
	Topic string
	Phone string
}

// routingKey maps a target onto the exchange. Empty means no delivery.
func (t Target) routingKey() string {
	switch {
	case t.Topic != "":
		return "orders." + t.Topic
	case t.Phone != "":
		return "sms." + t.Phone
	default:
		return ""
	}
}

// Push publishes a notification message toward a target.
type Push interface {
	Send(ctx context.Context, target Target, message string) error
}

// PushPublisher sends notifications through a RabbitMQ topic exchange.
type PushPublisher struct {
	ch *amqp.Channel
}

func NewPushPublisher(conn *amqp.Connection) (*PushPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	// Declare the exchange up front so publish never fails on missing infra
	err = ch.ExchangeDeclare(NotificationsExchange, "topic", true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("declare %s: %w", NotificationsExchange, err)
	}

	return &PushPublisher{ch: ch}, nil
}

func (p *PushPublisher) Close() error {
	return p.ch.Close()
}

// Send publishes the message under the target's routing key. A target with
// neither topic nor phone is a no-op, not an error.
func (p *PushPublisher) Send(ctx context.Context, target Target, message string) error {
	key := target.routingKey()
	if key == "" {
		return nil
	}

	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		NotificationsExchange,
		key,
		false,
		false,
		amqp.Publishing{
			ContentType:  "text/plain",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         []byte(message),
		},
	)
}
