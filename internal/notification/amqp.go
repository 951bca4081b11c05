package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPGateway publishes email and SMS jobs to a RabbitMQ topic exchange.
type AMQPGateway struct {
	channel  publisher
	exchange string
	logger   *slog.Logger
	close    func() error
	now      func() time.Time
}

// DialAMQP connects to the broker and declares the notification exchange.
func DialAMQP(url, exchange string, logger *slog.Logger) (*AMQPGateway, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	gw := newAMQPGateway(ch, exchange, logger)
	gw.close = func() error {
		return errors.Join(ch.Close(), conn.Close())
	}
	return gw, nil
}

func newAMQPGateway(ch publisher, exchange string, logger *slog.Logger) *AMQPGateway {
	return &AMQPGateway{
		channel:  ch,
		exchange: exchange,
		logger:   logger,
		close:    func() error { return nil },
		now:      time.Now,
	}
}

// SendEmail publishes an email job referencing a provider template.
func (g *AMQPGateway) SendEmail(ctx context.Context, template, recipient string, substitutions map[string]string) error {
	if recipient == "" {
		return ErrNoRecipient
	}
	return g.publish(ctx, Message{
		Channel:       ChannelEmail,
		Template:      template,
		Recipient:     recipient,
		Substitutions: substitutions,
	})
}

// SendSMS publishes a text message job.
func (g *AMQPGateway) SendSMS(ctx context.Context, message, phone string) error {
	if phone == "" {
		return ErrNoRecipient
	}
	return g.publish(ctx, Message{
		Channel:   ChannelSMS,
		Recipient: phone,
		Text:      message,
	})
}

func (g *AMQPGateway) publish(ctx context.Context, msg Message) error {
	msg.ID = uuid.NewString()
	msg.CreatedAt = g.now().UTC()

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	routingKey := "notification." + msg.Channel
	err = g.channel.PublishWithContext(ctx, g.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID,
		Timestamp:    msg.CreatedAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s notification: %w", msg.Channel, err)
	}

	g.logger.Debug("notification published",
		slog.String("id", msg.ID),
		slog.String("channel", msg.Channel),
		slog.String("routing_key", routingKey),
	)
	return nil
}

// Close releases the channel and connection.
func (g *AMQPGateway) Close() error {
	return g.close()
}
