package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/url"
	"strconv"
	"strings"
)

// Sign computes the webhook HMAC signature for an epoch timestamp.
// The string to sign is "{timestamp}\n{secret}", keyed by the secret
// itself, and the raw HMAC-SHA256 digest is base64 encoded. Providers
// differ only in the timestamp resolution (seconds vs milliseconds) and
// in how the value is embedded in the URL; both are the caller's choice.
func Sign(timestamp int64, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte{'\n'})
	mac.Write([]byte(secret))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// SignURL appends "timestamp" and "sign" query parameters to rawURL,
// choosing "?" or "&" as separator depending on whether the URL already
// carries a query string. When quoteSign is set the signature value is
// wrapped in literal double quotes before percent-encoding, which is what
// the Feishu endpoint verifies against.
//
// An empty secret means the webhook is not configured for signing; the
// URL is returned unchanged. That is a valid configuration, not an error.
func SignURL(rawURL, secret string, timestamp int64, quoteSign bool) string {
	if secret == "" {
		return rawURL
	}

	sign := Sign(timestamp, secret)
	if quoteSign {
		sign = `"` + sign + `"`
	}

	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + "timestamp=" + strconv.FormatInt(timestamp, 10) + "&sign=" + url.QueryEscape(sign)
}
