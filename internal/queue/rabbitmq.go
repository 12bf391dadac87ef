package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrConsumerClosed = errors.New("consumer channel closed")

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	queue      string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
	Prefetch   int
}

// JobMessage announces a rewind job that is ready to run.
type JobMessage struct {
	JobID     string    `json:"job_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Handler processes one job. A nil error acks the delivery, any other error
// returns it to the queue.
type Handler func(ctx context.Context, jobID string) error

// NewRabbitMQ connects and declares the durable direct exchange and job
// queue. Publishing and consuming share the same channel.
func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger = logger.With("component", "queue")
	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"prefetch", cfg.Prefetch,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		queue:      cfg.QueueName,
		logger:     logger,
	}, nil
}

func declareTopology(ch *amqp.Channel, cfg Config) error {
	const (
		durable    = true
		autoDelete = false
		internal   = false
		exclusive  = false
		noWait     = false
	)

	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeDirect, durable, autoDelete, internal, noWait, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}
	if _, err := ch.QueueDeclare(cfg.QueueName, durable, autoDelete, exclusive, noWait, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", cfg.QueueName, err)
	}
	if err := ch.QueueBind(cfg.QueueName, cfg.RoutingKey, cfg.Exchange, noWait, nil); err != nil {
		return fmt.Errorf("bind queue %s: %w", cfg.QueueName, err)
	}
	if cfg.Prefetch > 0 {
		if err := ch.Qos(cfg.Prefetch, 0, false); err != nil {
			return fmt.Errorf("set prefetch: %w", err)
		}
	}
	return nil
}

func (r *RabbitMQ) Publish(ctx context.Context, jobID string) error {
	now := time.Now().UTC()
	body, err := json.Marshal(JobMessage{JobID: jobID, Timestamp: now})
	if err != nil {
		return fmt.Errorf("marshal job message: %w", err)
	}

	msg := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    jobID,
		Timestamp:    now,
		Body:         body,
	}
	if err := r.channel.PublishWithContext(ctx, r.exchange, r.routingKey, false, false, msg); err != nil {
		return fmt.Errorf("publish job %s: %w", jobID, err)
	}

	r.logger.Debug("job published", "job_id", jobID)
	return nil
}

// Consume hands every delivery to handler until ctx is done or the channel
// closes. Deliveries are processed one at a time.
func (r *RabbitMQ) Consume(ctx context.Context, consumer string, handler Handler) error {
	deliveries, err := r.channel.ConsumeWithContext(ctx,
		r.queue,
		consumer,
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("start consumer: %w", err)
	}

	r.logger.Info("consumer started", "queue", r.queue, "consumer", consumer)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("consumer stopped", "consumer", consumer)
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return ErrConsumerClosed
			}
			r.handle(ctx, d, handler)
		}
	}
}

func (r *RabbitMQ) handle(ctx context.Context, d amqp.Delivery, handler Handler) {
	var msg JobMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil || msg.JobID == "" {
		r.logger.Error("dropping malformed message", "message_id", d.MessageId, "error", err)
		_ = d.Nack(false, false)
		return
	}

	if err := handler(ctx, msg.JobID); err != nil {
		r.logger.Warn("job handling failed, requeueing", "job_id", msg.JobID, "error", err)
		if nackErr := d.Nack(false, true); nackErr != nil {
			r.logger.Error("failed to nack message", "job_id", msg.JobID, "error", nackErr)
		}
		return
	}

	if err := d.Ack(false); err != nil {
		r.logger.Error("failed to ack message", "job_id", msg.JobID, "error", err)
	}
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
