package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublisherClosed = errors.New("publisher closed")

// dial opens a connection and channel and declares queue as durable.
func dial(url, queue string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err == nil {
		_, err = ch.QueueDeclare(queue, true, false, false, false, nil)
	}
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("amqp queue %s: %w", queue, err)
	}
	return conn, ch, nil
}

// RabbitPublisher publishes persistent JSON messages to one queue through the
// default exchange. Publishes are serialized since an amqp.Channel is not
// safe for concurrent use.
type RabbitPublisher struct {
	mu    sync.Mutex
	conn  *amqp.Connection
	ch    *amqp.Channel
	Queue string
}

func NewRabbitPublisher(url, queue string) (*RabbitPublisher, error) {
	conn, ch, err := dial(url, queue)
	if err != nil {
		return nil, err
	}
	return &RabbitPublisher{conn: conn, ch: ch, Queue: queue}, nil
}

func (p *RabbitPublisher) PublishJSON(ctx context.Context, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil {
		return ErrPublisherClosed
	}
	return p.ch.PublishWithContext(ctx, "", p.Queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         b,
	})
}

func (p *RabbitPublisher) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	closeAMQP(p.conn, p.ch)
	p.conn, p.ch = nil, nil
}

// RabbitConsumer delivers messages of one queue with manual acknowledgement.
type RabbitConsumer struct {
	conn       *amqp.Connection
	ch         *amqp.Channel
	Deliveries <-chan amqp.Delivery
}

// OpenConsumer starts consuming queue with at most prefetch unacked messages.
func OpenConsumer(url, queue string, prefetch int) (*RabbitConsumer, error) {
	conn, ch, err := dial(url, queue)
	if err != nil {
		return nil, err
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		closeAMQP(conn, ch)
		return nil, fmt.Errorf("amqp qos: %w", err)
	}
	msgs, err := ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		closeAMQP(conn, ch)
		return nil, fmt.Errorf("amqp consume %s: %w", queue, err)
	}
	return &RabbitConsumer{conn: conn, ch: ch, Deliveries: msgs}, nil
}

// Close stops the consumer; Deliveries is closed by the client afterwards.
func (c *RabbitConsumer) Close() {
	if c != nil {
		closeAMQP(c.conn, c.ch)
	}
}

func closeAMQP(conn *amqp.Connection, ch *amqp.Channel) {
	if ch != nil {
		_ = ch.Close()
	}
	if conn != nil {
		_ = conn.Close()
	}
}
