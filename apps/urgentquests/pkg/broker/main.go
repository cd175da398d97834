// Package broker publishes schedule changes to RabbitMQ queues.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type client struct {
	logger *slog.Logger
	url    string
}

// New returns a client for the broker at url, or a client that drops every
// message when url is empty.
func New(logger *slog.Logger, url string) Client {
	if url == "" {
		return nopClient{}
	}

	return client{
		logger: logger,
		url:    url,
	}
}

// Publish sends every message as persistent JSON to queue over one
// connection. The queue is declared durable first.
func (client client) Publish(ctx context.Context, queue string, messages ...any) error {
	if len(messages) == 0 {
		return nil
	}

	conn, err := amqp.Dial(client.url)
	if err != nil {
		return fmt.Errorf("dialing broker: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("opening channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	_, err = ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declaring queue %s: %w", queue, err)
	}

	for _, message := range messages {
		var body []byte
		body, err = json.Marshal(message)
		if err != nil {
			return err
		}

		//nolint:exhaustruct //other fields are optional
		publishing := amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		}

		err = ch.PublishWithContext(ctx, "", queue, false, false, publishing)
		if err != nil {
			return fmt.Errorf("publishing to %s: %w", queue, err)
		}
	}

	client.logger.Debug(fmt.Sprintf("published %d messages to %s", len(messages), queue))

	return nil
}

type nopClient struct{}

func (nopClient) Publish(_ context.Context, _ string, _ ...any) error {
	return nil
}
