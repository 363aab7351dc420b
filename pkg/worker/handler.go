package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/fangbc5/flare/pkg/logger"
	"github.com/fangbc5/flare/pkg/notification"
)

// Handler turns raw queue messages into notifications and routes them.
// It owns the per-channel payload extraction rules; everything after
// that is the router's job.
type Handler struct {
	router      *notification.Router
	defaultFrom string
	log         *slog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithDefaultFrom sets the From address used for email messages, which
// carry no sender of their own. Typically the SMTP user.
func WithDefaultFrom(from string) HandlerOption {
	return func(h *Handler) { h.defaultFrom = from }
}

// WithHandlerLogger sets the logger for the Handler.
func WithHandlerLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// NewHandler creates a queue message handler dispatching through router.
func NewHandler(router *notification.Router, opts ...HandlerOption) *Handler {
	h := &Handler{
		router: router,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle decodes one queue message, builds the channel notification, and
// routes it. Errors are scoped to the single message; the consumer
// decides whether to log or surface them.
func (h *Handler) Handle(ctx context.Context, data []byte) error {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return fmt.Errorf("%w: decode queue message: %w", notification.ErrInvalidConfig, err)
	}

	h.log.LogAttrs(ctx, slog.LevelDebug, "queue message received",
		slog.String("message_id", msg.ID),
		slog.String("source", msg.Source),
		logger.Channel(msg.Channel),
	)

	n, err := h.notificationFor(msg)
	if err != nil {
		return fmt.Errorf("message %s: %w", msg.ID, err)
	}
	return h.router.Route(ctx, n)
}

// notificationFor applies the per-channel payload extraction rules.
// Channels without rules pass through with an empty body so the router
// can report them as unsupported.
func (h *Handler) notificationFor(msg Message) (notification.Notification, error) {
	n := notification.Notification{Channel: msg.Channel}

	switch msg.Channel {
	case notification.ChannelEmail:
		to, err := requireString(msg.Payload, "to")
		if err != nil {
			return n, err
		}
		subject, err := requireString(msg.Payload, "subject")
		if err != nil {
			return n, err
		}
		body, err := requireString(msg.Payload, "body")
		if err != nil {
			return n, err
		}
		n.From, n.To, n.Subject, n.Body = h.defaultFrom, to, subject, body

	case notification.ChannelSMS:
		to, err := requireString(msg.Payload, "to")
		if err != nil {
			return n, err
		}
		param, err := stringOr(msg.Payload, "param", "body")
		if err != nil {
			return n, err
		}
		n.To, n.Body = to, param

	case notification.ChannelIMFeishu, notification.ChannelIMDingding:
		text, err := stringOr(msg.Payload, "text", "body")
		if err != nil {
			return n, err
		}
		n.Body = text
	}

	return n, nil
}
