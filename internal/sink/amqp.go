package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/wambiru/forge/internal/report"
)

// ReportMessage is the wire form of a delivered report. Content travels
// inline; json encodes it as base64.
type ReportMessage struct {
	Filename    string    `json:"filename"`
	GeneratedAt time.Time `json:"generated_at"`
	Content     []byte    `json:"content"`
}

func (m *ReportMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ReportMessageFromJSON(data []byte) (*ReportMessage, error) {
	var msg ReportMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// AMQPSink shares report documents by publishing them to a durable
// direct exchange. The forge-worker binary consumes the queue and
// spools documents to disk (the print side of the share sink).
type AMQPSink struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
}

func NewAMQPSink(url, exchangeName, queueName string) (*AMQPSink, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	s := &AMQPSink{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
	}

	if err := s.setup(); err != nil {
		s.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return s, nil
}

func (s *AMQPSink) setup() error {
	err := s.channel.ExchangeDeclare(
		s.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = s.channel.QueueDeclare(
		s.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = s.channel.QueueBind(
		s.queueName,    // queue name
		s.queueName,    // routing key (same as queue name for direct exchange)
		s.exchangeName, // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// Deliver publishes the document as a persistent JSON message.
func (s *AMQPSink) Deliver(ctx context.Context, doc report.Document) error {
	msg := ReportMessage{
		Filename:    doc.Filename,
		GeneratedAt: doc.GeneratedAt,
		Content:     doc.Content,
	}
	body, err := msg.ToJSON()
	if err != nil {
		return &DeliveryError{Sink: AMQPType.String(), Err: fmt.Errorf("marshal message: %w", err)}
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = s.channel.PublishWithContext(
		ctx,
		s.exchangeName, // exchange
		s.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    doc.GeneratedAt,
			Body:         body,
		},
	)
	if err != nil {
		return &DeliveryError{Sink: AMQPType.String(), Err: err}
	}

	slog.InfoContext(ctx, "Published report message",
		"filename", doc.Filename,
		"exchange", s.exchangeName,
		"queue", s.queueName)

	return nil
}

// Consume feeds received report messages to the handler until the
// context ends. Handler failures nack with requeue; undecodable
// messages are dropped.
func (s *AMQPSink) Consume(ctx context.Context, handler func(*ReportMessage) error) error {
	msgs, err := s.channel.Consume(
		s.queueName, // queue
		"",          // consumer
		false,       // auto-ack (we want manual ack)
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	slog.InfoContext(ctx, "Started consuming report messages", "queue", s.queueName)

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Stopping message consumption", "reason", ctx.Err())
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return fmt.Errorf("message channel closed")
			}

			msg, err := ReportMessageFromJSON(delivery.Body)
			if err != nil {
				slog.ErrorContext(ctx, "Failed to unmarshal report message", "error", err)
				delivery.Nack(false, false)
				continue
			}

			if err := handler(msg); err != nil {
				slog.ErrorContext(ctx, "Failed to handle report message",
					"error", err,
					"filename", msg.Filename)
				delivery.Nack(false, true)
				continue
			}

			delivery.Ack(false)
			slog.InfoContext(ctx, "Report message processed", "filename", msg.Filename)
		}
	}
}

func (s *AMQPSink) Close() error {
	if s.channel != nil {
		s.channel.Close()
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
