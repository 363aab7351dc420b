package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client posts JSON payloads to webhook endpoints over a pooled HTTP
// client. The zero value is not usable; use NewClient. A single Client is
// safe for concurrent use and is meant to be shared by all webhook
// senders in the process.
type Client struct {
	http *http.Client
}

// NewClient creates a webhook client with a pooled default transport.
// Connection reuse matters here because every notification is a separate
// POST to a small, fixed set of provider endpoints.
func NewClient() *Client {
	return &Client{
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// NewClientWithHTTP creates a webhook client on a caller-supplied
// http.Client, for custom transports or tests. A nil client falls back to
// the pooled default.
func NewClientWithHTTP(hc *http.Client) *Client {
	if hc == nil {
		return NewClient()
	}
	return &Client{http: hc}
}

// Post marshals payload to JSON and delivers it to webhookURL with a
// single POST request. There is no retrying: the caller decides what a
// failed delivery means. A non-2xx response is reported as ErrRejected
// carrying the status code and a truncated response body.
func (c *Client) Post(ctx context.Context, webhookURL string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: marshal: %w", ErrInvalidPayload, err)
	}

	if err := validateURL(webhookURL); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "flare-webhook/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Response body is kept for error context only; 64KB cap prevents a
	// misbehaving endpoint from exhausting memory.
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, sanitizeBody(respBody))
	}
	return nil
}

func validateURL(webhookURL string) error {
	if webhookURL == "" {
		return fmt.Errorf("%w: URL is required", ErrInvalidURL)
	}
	u, err := url.Parse(webhookURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidURL)
	}
	return nil
}

// sanitizeBody flattens newlines and truncates so provider responses can
// be embedded in error messages and logs safely.
func sanitizeBody(body []byte) string {
	s := strings.ReplaceAll(string(body), "\n", " ")
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
