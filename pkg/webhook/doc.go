// Package webhook provides the shared transport for IM webhook senders:
// a pooled JSON POST client and the timestamp-bound HMAC-SHA256 URL
// signing scheme used by DingTalk and Feishu incoming webhooks.
//
// Delivery is intentionally single-shot. Retries, backoff, and delivery
// guarantees are the responsibility of whatever feeds the dispatcher,
// not of this package.
//
//	client := webhook.NewClient()
//	url := webhook.SignURL(cfg.Webhook, cfg.Secret, time.Now().Unix(), true)
//	err := client.Post(ctx, url, payload)
package webhook
