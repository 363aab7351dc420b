package worker

import (
	"fmt"

	"github.com/fangbc5/flare/pkg/notification"
)

// Message is the queue envelope produced upstream. Payload is an opaque
// JSON object whose fields are interpreted per channel: email reads
// to/subject/body, SMS reads to and param (falling back to body), IM
// channels read text (falling back to body).
type Message struct {
	ID        string                   `json:"id"`
	Timestamp string                   `json:"timestamp"`
	Source    string                   `json:"source"`
	Channel   notification.ChannelType `json:"channel"`
	Payload   map[string]any           `json:"payload"`
}

// requireString extracts a non-empty string payload field. A miss is an
// invalid-message error scoped to this message only.
func requireString(payload map[string]any, key string) (string, error) {
	if v, ok := payload[key].(string); ok && v != "" {
		return v, nil
	}
	return "", fmt.Errorf("%w: missing or invalid payload field %q", notification.ErrInvalidConfig, key)
}

// stringOr tries keys in order and returns the first present value.
func stringOr(payload map[string]any, keys ...string) (string, error) {
	var err error
	for _, key := range keys {
		var v string
		if v, err = requireString(payload, key); err == nil {
			return v, nil
		}
	}
	return "", err
}
