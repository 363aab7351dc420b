package notification_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fangbc5/flare/pkg/notification"
)

// spySender records invocations and returns a canned error.
type spySender struct {
	calls int
	last  notification.Notification
	err   error
}

func (s *spySender) Send(_ context.Context, n notification.Notification) error {
	s.calls++
	s.last = n
	return s.err
}

func TestRouterRoute(t *testing.T) {
	t.Parallel()

	t.Run("delegates to registered sender", func(t *testing.T) {
		t.Parallel()

		spy := &spySender{}
		router := notification.NewRouter()
		router.Register(notification.ChannelEmail, spy)

		n := notification.Notification{
			To:      "user@example.com",
			Subject: "hello",
			Body:    "world",
			Channel: notification.ChannelEmail,
		}
		require.NoError(t, router.Route(context.Background(), n))
		assert.Equal(t, 1, spy.calls)
		assert.Equal(t, n, spy.last)
	})

	t.Run("propagates sender errors", func(t *testing.T) {
		t.Parallel()

		sendErr := errors.New("boom")
		spy := &spySender{err: sendErr}
		router := notification.NewRouter()
		router.Register(notification.ChannelSMS, spy)

		err := router.Route(context.Background(), notification.Notification{Channel: notification.ChannelSMS})
		require.ErrorIs(t, err, sendErr)
	})

	t.Run("unregistered channel fails without invoking any sender", func(t *testing.T) {
		t.Parallel()

		spy := &spySender{}
		router := notification.NewRouter()
		router.Register(notification.ChannelEmail, spy)

		for _, channel := range []notification.ChannelType{
			notification.ChannelPush,
			notification.ChannelSiteMessage,
			notification.ChannelIMWechat,
			notification.ChannelType("carrier_pigeon"),
		} {
			err := router.Route(context.Background(), notification.Notification{Channel: channel})
			require.ErrorIs(t, err, notification.ErrUnsupportedChannel)
			assert.Contains(t, err.Error(), string(channel))
		}
		assert.Zero(t, spy.calls, "no sender may be invoked for unsupported channels")
	})

	t.Run("nil sender registration is ignored", func(t *testing.T) {
		t.Parallel()

		router := notification.NewRouter()
		router.Register(notification.ChannelEmail, nil)

		err := router.Route(context.Background(), notification.Notification{Channel: notification.ChannelEmail})
		require.ErrorIs(t, err, notification.ErrUnsupportedChannel)
	})
}

func TestChannelTypeValid(t *testing.T) {
	t.Parallel()

	valid := []notification.ChannelType{
		notification.ChannelEmail,
		notification.ChannelSMS,
		notification.ChannelIMFeishu,
		notification.ChannelIMDingding,
		notification.ChannelIMWechat,
		notification.ChannelPush,
		notification.ChannelSiteMessage,
	}
	for _, c := range valid {
		assert.True(t, c.Valid(), "channel %q should be valid", c)
	}
	assert.False(t, notification.ChannelType("").Valid())
	assert.False(t, notification.ChannelType("fax").Valid())
}
