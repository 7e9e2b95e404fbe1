package events

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const publishTimeout = 5 * time.Second

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes events to a durable topic exchange.
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  amqpChannel
	exchange string
	logger   *logrus.Logger
}

// NewAMQPPublisher dials url and declares exchange.
func NewAMQPPublisher(url, exchange string, logger *logrus.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	publisher := newAMQPPublisher(channel, exchange, logger)
	publisher.conn = conn
	return publisher, nil
}

func newAMQPPublisher(channel amqpChannel, exchange string, logger *logrus.Logger) *AMQPPublisher {
	return &AMQPPublisher{
		channel:  channel,
		exchange: exchange,
		logger:   logger,
	}
}

func (p *AMQPPublisher) Publish(ctx context.Context, event Event) error {
	body, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,         // exchange
		event.RoutingKey(), // routing key
		false,              // mandatory
		false,              // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
			MessageId:    event.ID.String(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	p.logger.WithFields(logrus.Fields{
		"exchange":   p.exchange,
		"routingKey": event.RoutingKey(),
		"id":         event.ID.String(),
	}).Debug("Events.Publish.Complete")
	return nil
}

func (p *AMQPPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		return err
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
