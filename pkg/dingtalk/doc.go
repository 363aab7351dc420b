// Package dingtalk implements the DingTalk robot webhook channel sender.
//
// A notification body may be a structured envelope selecting one of the
// robot's message kinds:
//
//	{"msg_type":"markdown","content":{"title":"Build","text":"## done"}}
//
// which becomes {"msgtype":"markdown","markdown":{...}} on the wire. Any
// body that is not a well-formed envelope is delivered as a plain text
// message wrapping the raw string. When a signing secret is configured,
// the webhook URL gains timestamp (epoch milliseconds) and sign query
// parameters per the robot security scheme.
package dingtalk
