package notification

import (
	"context"
	"fmt"
)

// Router dispatches notifications to the sender registered for their
// channel. It performs no signing or payload shaping itself; those stay
// inside the channel senders. The registry is populated during startup and
// read-only afterwards, so Route is safe for concurrent use.
type Router struct {
	senders map[ChannelType]Sender
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{senders: make(map[ChannelType]Sender)}
}

// Register binds a sender to a channel tag, replacing any previous binding.
// Nil senders are ignored so optional adapters can be wired conditionally.
func (r *Router) Register(channel ChannelType, s Sender) {
	if s == nil {
		return
	}
	r.senders[channel] = s
}

// Route delivers the notification through the sender registered for its
// channel. Channels without a registered sender fail with
// ErrUnsupportedChannel before any network call is made.
func (r *Router) Route(ctx context.Context, n Notification) error {
	s, ok := r.senders[n.Channel]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedChannel, n.Channel)
	}
	return s.Send(ctx, n)
}
