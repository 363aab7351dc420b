package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

// Channel records a notification channel tag under the key "channel".
func Channel(channel any) slog.Attr {
	if channel == nil {
		return slog.Attr{}
	}
	return slog.Any("channel", channel)
}

// MessageID records a queue message identifier under the key "message_id".
func MessageID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("message_id", id)
}
