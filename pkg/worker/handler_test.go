package worker_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fangbc5/flare/pkg/notification"
	"github.com/fangbc5/flare/pkg/worker"
)

type spySender struct {
	calls int
	last  notification.Notification
}

func (s *spySender) Send(_ context.Context, n notification.Notification) error {
	s.calls++
	s.last = n
	return nil
}

func envelope(t *testing.T, channel notification.ChannelType, payload map[string]any) []byte {
	t.Helper()
	raw, err := json.Marshal(worker.Message{
		ID:        "msg-1",
		Timestamp: "2024-01-01T00:00:00Z",
		Source:    "test",
		Channel:   channel,
		Payload:   payload,
	})
	require.NoError(t, err)
	return raw
}

func TestHandlerHandle(t *testing.T) {
	t.Parallel()

	t.Run("email extracts to, subject, body and applies default from", func(t *testing.T) {
		t.Parallel()

		spy := &spySender{}
		router := notification.NewRouter()
		router.Register(notification.ChannelEmail, spy)
		h := worker.NewHandler(router, worker.WithDefaultFrom("noreply@example.com"))

		data := envelope(t, notification.ChannelEmail, map[string]any{
			"to": "user@example.com", "subject": "Hi", "body": "Hello",
		})
		require.NoError(t, h.Handle(context.Background(), data))
		assert.Equal(t, notification.Notification{
			From:    "noreply@example.com",
			To:      "user@example.com",
			Subject: "Hi",
			Body:    "Hello",
			Channel: notification.ChannelEmail,
		}, spy.last)
	})

	t.Run("email with missing field fails without dispatch", func(t *testing.T) {
		t.Parallel()

		spy := &spySender{}
		router := notification.NewRouter()
		router.Register(notification.ChannelEmail, spy)
		h := worker.NewHandler(router)

		data := envelope(t, notification.ChannelEmail, map[string]any{"to": "user@example.com"})
		err := h.Handle(context.Background(), data)
		require.ErrorIs(t, err, notification.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "subject")
		assert.Zero(t, spy.calls)
	})

	t.Run("sms prefers param over body", func(t *testing.T) {
		t.Parallel()

		spy := &spySender{}
		router := notification.NewRouter()
		router.Register(notification.ChannelSMS, spy)
		h := worker.NewHandler(router)

		data := envelope(t, notification.ChannelSMS, map[string]any{
			"to": "13800000000", "param": `{"code":"1234"}`, "body": "ignored",
		})
		require.NoError(t, h.Handle(context.Background(), data))
		assert.Equal(t, "13800000000", spy.last.To)
		assert.Equal(t, `{"code":"1234"}`, spy.last.Body)

		data = envelope(t, notification.ChannelSMS, map[string]any{
			"to": "13800000000", "body": `{"code":"5678"}`,
		})
		require.NoError(t, h.Handle(context.Background(), data))
		assert.Equal(t, `{"code":"5678"}`, spy.last.Body)
	})

	t.Run("im channels prefer text over body", func(t *testing.T) {
		t.Parallel()

		for _, channel := range []notification.ChannelType{
			notification.ChannelIMFeishu,
			notification.ChannelIMDingding,
		} {
			spy := &spySender{}
			router := notification.NewRouter()
			router.Register(channel, spy)
			h := worker.NewHandler(router)

			data := envelope(t, channel, map[string]any{"text": "from text", "body": "from body"})
			require.NoError(t, h.Handle(context.Background(), data))
			assert.Equal(t, "from text", spy.last.Body, "channel %s", channel)

			data = envelope(t, channel, map[string]any{"body": "from body"})
			require.NoError(t, h.Handle(context.Background(), data))
			assert.Equal(t, "from body", spy.last.Body, "channel %s", channel)

			data = envelope(t, channel, map[string]any{})
			require.ErrorIs(t, h.Handle(context.Background(), data), notification.ErrInvalidConfig)
		}
	})

	t.Run("unsupported channel surfaces router error", func(t *testing.T) {
		t.Parallel()

		h := worker.NewHandler(notification.NewRouter())
		data := envelope(t, notification.ChannelPush, map[string]any{"text": "x"})
		require.ErrorIs(t, h.Handle(context.Background(), data), notification.ErrUnsupportedChannel)
	})

	t.Run("undecodable message is an invalid-message error", func(t *testing.T) {
		t.Parallel()

		h := worker.NewHandler(notification.NewRouter())
		err := h.Handle(context.Background(), []byte("not json"))
		require.ErrorIs(t, err, notification.ErrInvalidConfig)
	})

	t.Run("non-string payload fields are rejected", func(t *testing.T) {
		t.Parallel()

		spy := &spySender{}
		router := notification.NewRouter()
		router.Register(notification.ChannelSMS, spy)
		h := worker.NewHandler(router)

		data := envelope(t, notification.ChannelSMS, map[string]any{"to": 13800000000, "param": "{}"})
		require.ErrorIs(t, h.Handle(context.Background(), data), notification.ErrInvalidConfig)
		assert.Zero(t, spy.calls)
	})
}
