package webhook

import "errors"

// Domain errors for webhook delivery, designed for error wrapping and
// classification with errors.Is.
//
//   - ErrInvalidURL: the webhook URL is missing, unparsable, or uses a
//     scheme other than http/https.
//   - ErrInvalidPayload: the payload could not be marshaled to JSON.
//   - ErrDeliveryFailed: the request never completed (DNS, TCP, TLS,
//     context cancellation).
//   - ErrRejected: the endpoint answered with a non-2xx status; the status
//     code and response text are carried in the error message.
var (
	ErrInvalidURL     = errors.New("invalid webhook URL")
	ErrInvalidPayload = errors.New("invalid webhook payload")
	ErrDeliveryFailed = errors.New("webhook delivery failed")
	ErrRejected       = errors.New("webhook endpoint rejected payload")
)
