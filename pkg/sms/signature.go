package sms

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"sort"
	"strings"
)

// Sign computes the provider request signature over a flat parameter map.
//
// The canonicalization is exact and the provider verifies it bit for bit:
// entries are sorted by key in byte order, each key and value is
// percent-encoded independently, pairs are joined with "=" and "&", and
// the string to sign is "POST&" + enc("/") + "&" + enc(query). The HMAC
// key is the access key secret with a literal "&" appended; the raw
// HMAC-SHA1 digest is base64 encoded.
//
// Sign is a pure function: for a fixed secret and parameter set (nonce
// and timestamp included) the result is deterministic.
func Sign(accessKeySecret string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, percentEncode(k)+"="+percentEncode(params[k]))
	}
	query := strings.Join(pairs, "&")

	stringToSign := "POST&" + percentEncode("/") + "&" + percentEncode(query)

	mac := hmac.New(sha1.New, []byte(accessKeySecret+"&"))
	mac.Write([]byte(stringToSign))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

const upperhex = "0123456789ABCDEF"

// percentEncode applies the provider's POP-style encoding: RFC 3986
// unreserved characters pass through, everything else becomes uppercase
// %XX. Unlike url.QueryEscape, space is %20 and "~" stays literal.
func percentEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9',
			c == '-', c == '_', c == '.', c == '~':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		}
	}
	return b.String()
}
