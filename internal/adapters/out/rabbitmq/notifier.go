// Package rabbitmq provides the RabbitMQ-backed implementation of the
// ready-for-pickup notification port. Messages are published as persistent
// JSON to a durable queue; the downstream notification service owns channel
// selection (push, SMS) and message content.
package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"fulfillment/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationsQueue is the durable queue the notification service consumes.
const NotificationsQueue = "order_notifications.q"

// readyForPickupMessage is the wire payload for a pickup-ready event.
type readyForPickupMessage struct {
	Event          string `json:"event"`
	OrderID        string `json:"order_id"`
	CustomerName   string `json:"customer_name"`
	CustomerPhone  string `json:"customer_phone"`
	PickupLocation string `json:"pickup_location,omitempty"`
}

// ReadyNotifier implements ports.ReadyNotifier over an AMQP channel.
type ReadyNotifier struct {
	ch *amqp.Channel
}

// NewReadyNotifier creates a notifier on the given connection and declares
// the durable notifications queue.
func NewReadyNotifier(conn *amqp.Connection) (*ReadyNotifier, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(NotificationsQueue, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		return nil, err
	}

	return &ReadyNotifier{ch: ch}, nil
}

// SendReadyForPickup publishes the pickup-ready event. The caller treats the
// send as fire-and-forget; this method only reports the publish outcome.
func (n *ReadyNotifier) SendReadyForPickup(
	ctx context.Context,
	notification ports.ReadyForPickupNotification,
) error {
	body, err := json.Marshal(readyForPickupMessage{
		Event:          "order_ready_for_pickup",
		OrderID:        notification.OrderID.String(),
		CustomerName:   notification.CustomerName,
		CustomerPhone:  notification.CustomerPhone,
		PickupLocation: notification.PickupLocationName,
	})
	if err != nil {
		return err
	}

	return n.ch.PublishWithContext(ctx, "", NotificationsQueue, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		ContentType:  "application/json",
		Body:         body,
	})
}

// Close releases the notifier's channel.
func (n *ReadyNotifier) Close() {
	if n != nil && n.ch != nil {
		_ = n.ch.Close()
	}
}
