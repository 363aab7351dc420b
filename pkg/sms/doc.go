// Package sms implements the cloud SMS channel sender and its request
// signing scheme.
//
// Every request carries the full parameter set (template, credentials,
// nonce, timestamp) signed with HMAC-SHA1 over a canonicalized query
// string; see Sign for the exact rules. The provider rejects requests
// whose signature does not reproduce its own canonicalization bit for
// bit, so the encoding here must never drift.
//
// Known gap: a 2xx HTTP response whose body carries a provider failure
// code (e.g. throttling, bad template parameter) is reported as success.
// The response body is logged at debug level; parsing it is deliberately
// left out until the provider response envelope is pinned down.
package sms
