package sms

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fangbc5/flare/pkg/notification"
)

// Fixed protocol parameters for the SendSms API.
const (
	actionSendSMS    = "SendSms"
	apiVersion       = "2017-05-25"
	regionID         = "cn-hangzhou"
	signatureMethod  = "HMAC-SHA1"
	signatureVersion = "1.0"

	// ISO-8601 UTC, second precision. The provider rejects any other shape.
	timestampLayout = "2006-01-02T15:04:05Z"
)

// Sender delivers notifications through the cloud SMS API. It treats
// Notification.To as the destination phone number and Notification.Body
// as a pre-serialized template parameter JSON string.
type Sender struct {
	cfg    Config
	client *http.Client
	log    *slog.Logger
	now    func() time.Time
	nonce  func() string
}

// Option configures a Sender.
type Option func(*Sender)

// WithHTTPClient replaces the default pooled HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Sender) {
		if c != nil {
			s.client = c
		}
	}
}

// WithLogger sets the logger used for response diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sender) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock replaces the timestamp source. Signatures are only
// deterministic for a fixed timestamp, so tests inject a frozen clock.
func WithClock(now func() time.Time) Option {
	return func(s *Sender) {
		if now != nil {
			s.now = now
		}
	}
}

// WithNonceSource replaces the SignatureNonce generator, for the same
// reason as WithClock. The default draws a fresh UUID per request.
func WithNonceSource(nonce func() string) Option {
	return func(s *Sender) {
		if nonce != nil {
			s.nonce = nonce
		}
	}
}

// NewSender creates a cloud SMS sender, failing fast on incomplete
// credentials.
func NewSender(cfg Config, opts ...Option) (*Sender, error) {
	for field, v := range map[string]string{
		"Endpoint":        cfg.Endpoint,
		"AccessKeyID":     cfg.AccessKeyID,
		"AccessKeySecret": cfg.AccessKeySecret,
		"SignName":        cfg.SignName,
		"TemplateCode":    cfg.TemplateCode,
	} {
		if v == "" {
			return nil, fmt.Errorf("%w: sms %s is required", notification.ErrInvalidConfig, field)
		}
	}

	s := &Sender{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log:   slog.Default(),
		now:   time.Now,
		nonce: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Send signs and submits one SendSms request as a form POST. A non-2xx
// status is surfaced as a provider rejection. A 2xx response is treated
// as success even when the provider embeds a failure code in the body;
// the body is logged at debug level so operators can spot those codes.
func (s *Sender) Send(ctx context.Context, n notification.Notification) error {
	if n.To == "" {
		return fmt.Errorf("%w: sms destination phone number is required", notification.ErrInvalidConfig)
	}

	// Nonce and timestamp are regenerated per call; retries of equal
	// input still produce distinct requests on the wire.
	params := s.requestParams(n.To, n.Body, s.now().UTC(), s.nonce())
	signature := Sign(s.cfg.AccessKeySecret, params)

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	form.Set("Signature", signature)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %w", notification.ErrSendFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", notification.ErrSendFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: sms api status %d: %s", notification.ErrProviderRejected, resp.StatusCode, body)
	}

	s.log.LogAttrs(ctx, slog.LevelDebug, "sms api response",
		slog.String("phone", n.To),
		slog.String("body", string(body)),
	)
	return nil
}

// requestParams assembles the full signed parameter set minus the
// Signature field itself.
func (s *Sender) requestParams(phone, templateParam string, ts time.Time, nonce string) map[string]string {
	return map[string]string{
		"Action":           actionSendSMS,
		"Version":          apiVersion,
		"RegionId":         regionID,
		"PhoneNumbers":     phone,
		"SignName":         s.cfg.SignName,
		"TemplateCode":     s.cfg.TemplateCode,
		"TemplateParam":    templateParam,
		"AccessKeyId":      s.cfg.AccessKeyID,
		"SignatureMethod":  signatureMethod,
		"SignatureVersion": signatureVersion,
		"SignatureNonce":   nonce,
		"Timestamp":        ts.Format(timestampLayout),
	}
}
