// Package notifier публикует события журнала бронирований в RabbitMQ.
// Публикация best effort: вызывающий код логирует ошибку и продолжает работу.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	defaultPublishTimeout = 3 * time.Second

	// Значения по умолчанию amqp.Dial
	amqpHeartbeat = 10 * time.Second
	amqpLocale    = "en_US"
)

// Dialer открывает соединение с брокером. timeout ограничивает TCP подключение и AMQP handshake.
type Dialer func(url string, timeout time.Duration) (Connection, error)

// Connection соединение с брокером
type Connection interface {
	Channel() (Channel, error)
	Close() error
}

// Channel канал AMQP (подмножество *amqp.Channel)
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher публикует события в durable очереди с именем типа события
type Publisher struct {
	url     string
	timeout time.Duration
	dial    Dialer
}

// NewPublisher создает публикатор для брокера по url
func NewPublisher(url string, timeout time.Duration) *Publisher {
	return NewPublisherWithDialer(url, timeout, dialAMQP)
}

// NewPublisherWithDialer создает публикатор с собственным способом подключения
func NewPublisherWithDialer(url string, timeout time.Duration, dial Dialer) *Publisher {
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	return &Publisher{url: url, timeout: timeout, dial: dial}
}

// Publish отправляет событие. Соединение открывается на каждую публикацию.
func (p *Publisher) Publish(ctx context.Context, event Event) error {
	if event.Type == "" {
		return ErrUnknownEvent
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}

	conn, err := p.dial(p.url, p.timeout)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: open channel: %v", ErrConnection, err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		event.Type, // name
		true,       // durable
		false,      // autoDelete
		false,      // exclusive
		false,      // noWait
		nil,        // args
	); err != nil {
		return fmt.Errorf("%w: declare queue %s: %v", ErrPublish, event.Type, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", event.Type, false, false, msg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPublish, event.Type, err)
	}
	return nil
}

// Noop публикатор для запуска без брокера
type Noop struct{}

// Publish ничего не делает
func (Noop) Publish(context.Context, Event) error {
	return nil
}

type amqpConnection struct {
	conn *amqp.Connection
}

func (c *amqpConnection) Channel() (Channel, error) {
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func (c *amqpConnection) Close() error {
	return c.conn.Close()
}

func dialAMQP(url string, timeout time.Duration) (Connection, error) {
	conn, err := amqp.DialConfig(url, amqp.Config{
		Heartbeat: amqpHeartbeat,
		Locale:    amqpLocale,
		Dial:      amqp.DefaultDial(timeout),
	})
	if err != nil {
		return nil, err
	}
	return &amqpConnection{conn: conn}, nil
}
