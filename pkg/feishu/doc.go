// Package feishu implements the Feishu (Lark) bot webhook channel
// sender.
//
// A notification body may be a structured envelope selecting one of the
// bot's message kinds:
//
//	{"msg_type":"post","content":{"post":{"zh_cn":{...}}}}
//
// which is forwarded as {"msg_type":"post","content":{...}}; interactive
// cards travel under "card" instead of "content". Any body that is not a
// well-formed envelope is delivered as a plain text message wrapping the
// raw string. When a signing secret is configured, the webhook URL gains
// timestamp (epoch seconds) and quoted sign query parameters per the bot
// security scheme.
package feishu
