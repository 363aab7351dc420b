// Package worker consumes notification requests from the message broker
// and dispatches them through the channel router.
//
// The queue envelope is {id, timestamp, source, channel, payload}; the
// payload fields consumed depend on the channel. Workers join a NATS
// queue group so a subject fanned out to several nodes is still handled
// once per message. Delivery guarantees end there: a failed dispatch is
// logged, not redelivered.
package worker
