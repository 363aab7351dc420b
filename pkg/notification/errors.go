package notification

import "errors"

// Sentinel errors shared by all channel senders. Layers wrap these with
// %w-context so callers can classify failures with errors.Is while still
// seeing the provider detail in the message.
//
// Classification:
//   - ErrInvalidConfig: missing or malformed credential or message field;
//     fatal for the single message, not the process.
//   - ErrSignature: the secret key could not be used to compute a signature.
//   - ErrSendFailed: network, HTTP, or SMTP transport failure.
//   - ErrProviderRejected: the provider answered with a non-2xx status;
//     the status code and response text are preserved in the wrapped error.
//   - ErrUnsupportedChannel: the router has no sender for the channel tag.
var (
	ErrInvalidConfig      = errors.New("invalid notification configuration")
	ErrSignature          = errors.New("signature computation failed")
	ErrSendFailed         = errors.New("notification delivery failed")
	ErrProviderRejected   = errors.New("provider rejected notification")
	ErrUnsupportedChannel = errors.New("unsupported notification channel")
)
