// Package mq holds the RabbitMQ producer used to dispatch asynchronous jobs.
// The service only publishes; consumers live in a separate worker.
package mq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends persistent messages to durable queues.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// New dials the broker and opens a channel.
func New(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to message broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open broker channel: %w", err)
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

// Publish declares queue as durable and sends body to it. Declaring on every
// publish is idempotent and keeps the producer independent of consumer
// startup order.
func (p *Publisher) Publish(ctx context.Context, queue string, body []byte) error {
	if _, err := p.channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %q: %w", queue, err)
	}

	if err := p.channel.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}); err != nil {
		return fmt.Errorf("publish to %q: %w", queue, err)
	}
	return nil
}

// Close shuts down the channel and connection.
func (p *Publisher) Close() error {
	if err := p.channel.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}
