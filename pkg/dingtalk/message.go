package dingtalk

import "encoding/json"

// MessageType enumerates the DingTalk robot message kinds. The envelope
// tag uses snake_case while the wire payload uses the robot API's
// camelCase names; wireName maps between the two.
type MessageType string

const (
	MessageText       MessageType = "text"
	MessageMarkdown   MessageType = "markdown"
	MessageLink       MessageType = "link"
	MessageActionCard MessageType = "action_card"
	MessageFeedCard   MessageType = "feed_card"
	MessageImage      MessageType = "image"
	MessageFile       MessageType = "file"
	MessageAudio      MessageType = "audio"
	MessageVideo      MessageType = "video"
)

// Valid reports whether t is one of the declared message types.
func (t MessageType) Valid() bool {
	switch t {
	case MessageText, MessageMarkdown, MessageLink, MessageActionCard,
		MessageFeedCard, MessageImage, MessageFile, MessageAudio, MessageVideo:
		return true
	}
	return false
}

// wireName returns both the msgtype value and the payload field name used
// by the robot API for this message type.
func (t MessageType) wireName() string {
	switch t {
	case MessageActionCard:
		return "actionCard"
	case MessageFeedCard:
		return "feedCard"
	default:
		return string(t)
	}
}

// envelope is the optional structured form of a notification body.
type envelope struct {
	MsgType *MessageType    `json:"msg_type"`
	Content json.RawMessage `json:"content"`
	Text    *string         `json:"text"`
}

// BuildPayload maps a raw notification body onto the robot wire payload.
//
// The body is parsed optimistically as an envelope. On success the
// payload is keyed by the resolved message type (text when absent); for
// text the content is chosen by priority content.content > text > raw
// body, and for every other type the content object is forwarded
// verbatim, substituting {} when absent. Any parse or schema mismatch -
// including an unknown msg_type - degrades silently to a plain-text
// payload wrapping the whole raw body. The fallback is required
// behavior, not an error path.
func BuildPayload(body string) map[string]any {
	var env envelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		return textPayload(body)
	}

	msgType := MessageText
	if env.MsgType != nil {
		if !env.MsgType.Valid() {
			return textPayload(body)
		}
		msgType = *env.MsgType
	}

	if msgType == MessageText {
		text := body
		if env.Text != nil {
			text = *env.Text
		}
		var content struct {
			Content *string `json:"content"`
		}
		if len(env.Content) > 0 && json.Unmarshal(env.Content, &content) == nil && content.Content != nil {
			text = *content.Content
		}
		return textPayload(text)
	}

	content := env.Content
	if len(content) == 0 || string(content) == "null" {
		content = json.RawMessage("{}")
	}
	name := msgType.wireName()
	return map[string]any{
		"msgtype": name,
		name:      content,
	}
}

func textPayload(text string) map[string]any {
	return map[string]any{
		"msgtype": "text",
		"text":    map[string]string{"content": text},
	}
}
