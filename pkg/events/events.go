// Package events publishes record lifecycle events to RabbitMQ. Publishing is
// best-effort: record management never waits on the broker.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	amqp "github.com/streadway/amqp"
)

// QueueName is the durable queue all record lifecycle events go to.
const QueueName = "inventory_events"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ and declares the inventory events queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		QueueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s queue: %w", QueueName, err)
	}

	log.Infof("RabbitMQ client connected and %s queue declared", QueueName)

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

// Close closes the channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// PublishRecordEvent publishes a record lifecycle event (e.g. product.created,
// garage.deleted) for the given entity and record identifier.
func (c *Client) PublishRecordEvent(event, entity, id string) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := json.Marshal(map[string]interface{}{
		"event_id":    uuid.New().String(),
		"event":       event,
		"entity":      entity,
		"record_id":   id,
		"occurred_at": time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	err = c.channel.Publish(
		"",        // exchange: default exchange
		QueueName, // routing key: the queue name
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	log.Debugf(" [x] Sent record event: %s", body)
	return nil
}
