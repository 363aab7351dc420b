// Package email implements the SMTP channel sender. It maps a
// notification's from/to/subject/body onto a plain-text RFC 822 message
// and submits it through a single SMTP transaction with PLAIN auth.
//
// Both addresses must parse per RFC 5322 or the send fails before any
// network call. Transport failures and address errors propagate to the
// caller wrapped in the notification package's sentinel errors.
package email
