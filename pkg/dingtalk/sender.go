package dingtalk

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fangbc5/flare/pkg/notification"
	"github.com/fangbc5/flare/pkg/webhook"
)

// Sender delivers notifications to a DingTalk robot webhook. The robot
// verifies signatures over millisecond timestamps.
type Sender struct {
	cfg    Config
	client *webhook.Client
	now    func() time.Time
}

// Option configures a Sender.
type Option func(*Sender)

// WithWebhookClient shares a webhook client across senders. Nil clients
// are ignored.
func WithWebhookClient(c *webhook.Client) Option {
	return func(s *Sender) {
		if c != nil {
			s.client = c
		}
	}
}

// WithClock replaces the signing timestamp source, for deterministic
// signatures in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Sender) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSender creates a DingTalk webhook sender.
func NewSender(cfg Config, opts ...Option) (*Sender, error) {
	if cfg.Webhook == "" {
		return nil, fmt.Errorf("%w: dingtalk webhook URL is required", notification.ErrInvalidConfig)
	}

	s := &Sender{
		cfg:    cfg,
		client: webhook.NewClient(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Send signs the webhook URL (skipped when no secret is configured),
// shapes the body through BuildPayload, and posts the result.
func (s *Sender) Send(ctx context.Context, n notification.Notification) error {
	signedURL := webhook.SignURL(s.cfg.Webhook, s.cfg.Secret, s.now().UnixMilli(), false)

	if err := s.client.Post(ctx, signedURL, BuildPayload(n.Body)); err != nil {
		if errors.Is(err, webhook.ErrRejected) {
			return fmt.Errorf("%w: dingtalk: %w", notification.ErrProviderRejected, err)
		}
		return fmt.Errorf("%w: dingtalk: %w", notification.ErrSendFailed, err)
	}
	return nil
}
