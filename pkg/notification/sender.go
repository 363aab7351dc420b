package notification

import "context"

// Sender delivers a single notification over one channel.
// Implementations make exactly one outbound network call per invocation,
// never retry internally, and must be safe for concurrent use. The context
// bounds the in-flight network I/O; callers impose deadlines externally.
type Sender interface {
	Send(ctx context.Context, n Notification) error
}
