// Package amqp provides the RabbitMQ implementation of the order event
// publisher. Events fan out to the operator notification stream; publishing
// is best-effort from the caller's point of view, so the publisher reports
// errors but command handlers never fail a committed operation on them.
package amqp

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

// orderPlacedEvent is the wire shape of a checkout announcement.
type orderPlacedEvent struct {
	Event       string    `json:"event"`
	OrderNumber string    `json:"orderNumber"`
	OrderType   string    `json:"orderType"`
	Region      string    `json:"region"`
	GrandTotal  float64   `json:"grandTotal"`
	Date        time.Time `json:"date"`
}

// orderStatusChangedEvent is the wire shape of an admin status change.
type orderStatusChangedEvent struct {
	Event       string `json:"event"`
	OrderNumber string `json:"orderNumber"`
	Status      string `json:"status"`
}

// Publisher implements commands.OrderEventPublisher over a RabbitMQ fanout
// exchange.
type Publisher struct {
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger
}

// NewPublisher dials the broker, declares the durable fanout exchange and
// returns a ready publisher. Close releases the connection.
func NewPublisher(url string, exchange string, logger *slog.Logger) (*Publisher, func(), error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	err = channel.ExchangeDeclare(
		exchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, nil, err
	}

	closer := func() {
		_ = channel.Close()
		_ = conn.Close()
	}

	return &Publisher{
		channel:  channel,
		exchange: exchange,
		logger:   logger,
	}, closer, nil
}

// PublishOrderPlaced announces a freshly placed order.
func (p *Publisher) PublishOrderPlaced(ctx context.Context, placed *order.Order) error {
	return p.publish(ctx, orderPlacedEvent{
		Event:       "order.placed",
		OrderNumber: placed.OrderNumber(),
		OrderType:   placed.OrderType().String(),
		Region:      placed.Destination().Region(),
		GrandTotal:  placed.GrandTotal(),
		Date:        placed.Date(),
	})
}

// PublishOrderStatusChanged announces an admin status change.
func (p *Publisher) PublishOrderStatusChanged(
	ctx context.Context,
	orderNumber string,
	status order.Status,
) error {
	return p.publish(ctx, orderStatusChangedEvent{
		Event:       "order.status_changed",
		OrderNumber: orderNumber,
		Status:      status.String(),
	})
}

func (p *Publisher) publish(ctx context.Context, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		"", // routing key ignored by fanout
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			ContentType:  "application/json",
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Warn("order event publish failed",
			slog.String("exchange", p.exchange),
			slog.String("error", err.Error()))
		return err
	}

	return nil
}
