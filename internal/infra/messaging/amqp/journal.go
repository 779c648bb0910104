// Package amqp publishes delivered alerts to a RabbitMQ topic exchange.
// Alerts are routed as "alert.<source>".
package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"github.com/gabapcia/starwatch/internal/alerting"

	"github.com/rabbitmq/amqp091-go"
)

var ErrInvalidScheme = errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")

// publisher is the part of *amqp091.Channel the journal uses.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type journal struct {
	conn     *amqp091.Connection
	channel  publisher
	exchange string
}

var _ alerting.Journal = (*journal)(nil)

func routingKey(alert alerting.Alert) string {
	return "alert." + string(alert.Source)
}

func (j *journal) Publish(ctx context.Context, alert alerting.Alert) error {
	body, err := json.Marshal(alert)
	if err != nil {
		return err
	}

	return j.channel.PublishWithContext(ctx,
		j.exchange,
		routingKey(alert),
		false,
		false,
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    alert.ID,
			Timestamp:    alert.SentAt,
			Body:         body,
		},
	)
}

func (j *journal) Close() error {
	err := j.channel.Close()
	if j.conn != nil {
		err = errors.Join(err, j.conn.Close())
	}
	return err
}

func sanitizeURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	if !strings.HasSuffix(clean, "/") {
		clean += "/"
	}

	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}

	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", ErrInvalidScheme
	}

	return clean, nil
}

// Dial connects to the broker and declares the durable topic exchange.
func Dial(amqpURL, exchange string) (*journal, error) {
	cleanURL, err := sanitizeURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp091.Dial(cleanURL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(exchange, amqp091.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &journal{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
	}, nil
}
