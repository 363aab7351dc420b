package notification

// ChannelType identifies the delivery medium for a notification.
// The set is closed: values outside the declared constants are rejected
// by the router rather than silently dropped.
type ChannelType string

const (
	ChannelEmail       ChannelType = "email"
	ChannelSMS         ChannelType = "sms"
	ChannelIMFeishu    ChannelType = "im_feishu"
	ChannelIMDingding  ChannelType = "im_dingding"
	ChannelIMWechat    ChannelType = "im_wechat"
	ChannelPush        ChannelType = "push"
	ChannelSiteMessage ChannelType = "site_message"
)

// Valid reports whether c is one of the declared channel tags.
func (c ChannelType) Valid() bool {
	switch c {
	case ChannelEmail, ChannelSMS, ChannelIMFeishu, ChannelIMDingding,
		ChannelIMWechat, ChannelPush, ChannelSiteMessage:
		return true
	}
	return false
}

// Notification is the canonical in-process representation of a message to
// deliver. Body is channel dependent: plain text for email, a pre-serialized
// template parameter JSON string for SMS, or a structured message envelope
// for IM channels. A Notification is immutable once constructed and is
// consumed exactly once by the sender for its channel.
type Notification struct {
	From    string      `json:"from"`
	To      string      `json:"to"`
	Subject string      `json:"subject"`
	Body    string      `json:"body"`
	Channel ChannelType `json:"channel"`
}
