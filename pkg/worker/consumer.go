package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/fangbc5/flare/pkg/logger"
	"github.com/fangbc5/flare/pkg/notification"
)

// Config holds the broker connection settings. Queue names the queue
// group: workers sharing it split the subject so each message is
// processed by exactly one node.
type Config struct {
	URL     string `env:"NATS_URL" envDefault:"nats://127.0.0.1:4222"`
	Subject string `env:"NATS_SUBJECT" envDefault:"flare.notifications"`
	Queue   string `env:"NATS_QUEUE" envDefault:"flare-workers"`
}

// Consumer subscribes to the notification subject and feeds messages to
// a Handler. Each message is dispatched on its own goroutine; there is
// no ordering guarantee and no redelivery, matching the at-most-once
// contract of the dispatcher.
type Consumer struct {
	cfg     Config
	conn    *nats.Conn
	handler *Handler
	log     *slog.Logger
	sub     *nats.Subscription
	ownConn bool
}

// ConsumerOption configures a Consumer.
type ConsumerOption func(*Consumer)

// WithConn reuses an existing NATS connection instead of dialing
// Config.URL. The caller keeps ownership and is responsible for closing
// it.
func WithConn(conn *nats.Conn) ConsumerOption {
	return func(c *Consumer) {
		if conn != nil {
			c.conn = conn
			c.ownConn = false
		}
	}
}

// WithConsumerLogger sets the logger for the Consumer.
func WithConsumerLogger(l *slog.Logger) ConsumerOption {
	return func(c *Consumer) {
		if l != nil {
			c.log = l
		}
	}
}

// NewConsumer creates a consumer and establishes the broker connection
// unless one was supplied.
func NewConsumer(cfg Config, handler *Handler, opts ...ConsumerOption) (*Consumer, error) {
	if handler == nil {
		return nil, fmt.Errorf("%w: consumer handler is required", notification.ErrInvalidConfig)
	}

	c := &Consumer{
		cfg:     cfg,
		handler: handler,
		log:     slog.Default(),
		ownConn: true,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.conn == nil {
		conn, err := nats.Connect(cfg.URL, nats.Name("flare-worker"))
		if err != nil {
			return nil, fmt.Errorf("connect to nats %s: %w", cfg.URL, err)
		}
		c.conn = conn
	}
	return c, nil
}

// Start begins consuming. It returns once the subscription is
// established; message handling continues in the background until Close.
func (c *Consumer) Start(ctx context.Context) error {
	sub, err := c.conn.QueueSubscribe(c.cfg.Subject, c.cfg.Queue, func(m *nats.Msg) {
		// One goroutine per message: sends are independent and may run
		// fully in parallel.
		go func() {
			if err := c.handler.Handle(ctx, m.Data); err != nil {
				c.log.LogAttrs(ctx, slog.LevelError, "notification dispatch failed",
					slog.String("subject", m.Subject),
					logger.Error(err),
				)
			}
		}()
	})
	if err != nil {
		return fmt.Errorf("subscribe to %q: %w", c.cfg.Subject, err)
	}
	c.sub = sub

	c.log.LogAttrs(ctx, slog.LevelInfo, "worker started",
		slog.String("subject", c.cfg.Subject),
		slog.String("queue", c.cfg.Queue),
	)
	return nil
}

// Close drains the subscription and, when the consumer owns the
// connection, closes it.
func (c *Consumer) Close() {
	if c.sub != nil {
		_ = c.sub.Drain()
	}
	if c.ownConn && c.conn != nil {
		c.conn.Close()
	}
}
