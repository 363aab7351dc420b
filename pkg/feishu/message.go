package feishu

import "encoding/json"

// MessageType enumerates the Feishu bot message kinds. The envelope tag
// and the wire msg_type use the same snake_case names.
type MessageType string

const (
	MessageText        MessageType = "text"
	MessagePost        MessageType = "post"
	MessageImage       MessageType = "image"
	MessageFile        MessageType = "file"
	MessageAudio       MessageType = "audio"
	MessageMedia       MessageType = "media"
	MessageSticker     MessageType = "sticker"
	MessageInteractive MessageType = "interactive"
	MessageShareChat   MessageType = "share_chat"
	MessageShareUser   MessageType = "share_user"
	MessageSystem      MessageType = "system"
)

// Valid reports whether t is one of the declared message types.
func (t MessageType) Valid() bool {
	switch t {
	case MessageText, MessagePost, MessageImage, MessageFile, MessageAudio,
		MessageMedia, MessageSticker, MessageInteractive, MessageShareChat,
		MessageShareUser, MessageSystem:
		return true
	}
	return false
}

// envelope is the optional structured form of a notification body. Card
// exists because the interactive kind carries its payload under "card"
// rather than "content".
type envelope struct {
	MsgType *MessageType    `json:"msg_type"`
	Content json.RawMessage `json:"content"`
	Card    json.RawMessage `json:"card"`
	Text    *string         `json:"text"`
}

// BuildPayload maps a raw notification body onto the bot wire payload.
//
// Well-formed envelopes produce {"msg_type":t,"content":...}, except
// interactive which forwards the card object under "card". For text the
// content is chosen by priority content.text > text > raw body; for
// every other type the content (or card) object is forwarded verbatim,
// substituting {} when absent. Any parse or schema mismatch degrades
// silently to a plain-text payload wrapping the whole raw body.
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

	switch msgType {
	case MessageText:
		text := body
		if env.Text != nil {
			text = *env.Text
		}
		var content struct {
			Text *string `json:"text"`
		}
		if len(env.Content) > 0 && json.Unmarshal(env.Content, &content) == nil && content.Text != nil {
			text = *content.Text
		}
		return textPayload(text)

	case MessageInteractive:
		card := env.Card
		if len(card) == 0 || string(card) == "null" {
			card = json.RawMessage("{}")
		}
		return map[string]any{
			"msg_type": string(MessageInteractive),
			"card":     card,
		}

	default:
		content := env.Content
		if len(content) == 0 || string(content) == "null" {
			content = json.RawMessage("{}")
		}
		return map[string]any{
			"msg_type": string(msgType),
			"content":  content,
		}
	}
}

func textPayload(text string) map[string]any {
	return map[string]any{
		"msg_type": "text",
		"content":  map[string]string{"text": text},
	}
}
