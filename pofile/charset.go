package pofile

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// contentTypeCharsetPattern finds the charset parameter of the
// Content-Type header inside raw, still-encoded file bytes. The capture
// may include the escaped line break and closing quote of the PO string
// it lives in; DetectCharset strips those.
var contentTypeCharsetPattern = regexp.MustCompile(`Content-Type: [^;]+; charset=([^\r\n]+)`)

// DetectCharset scans raw PO file bytes for a declared charset,
// defaulting to utf-8 when none is found.
func DetectCharset(data []byte) string {
	m := contentTypeCharsetPattern.FindSubmatch(data)
	if m == nil {
		return "utf-8"
	}
	cs := strings.TrimSpace(string(m[1]))
	cs = strings.TrimSpace(strings.Trim(cs, `\n"`))
	if cs == "" {
		return "utf-8"
	}
	return cs
}

// decode converts raw bytes to text using the named IANA charset.
// UTF-8 and unknown charsets pass bytes through unchanged; undecodable
// byte sequences are replaced, never fatal.
func decode(data []byte, charset string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8", "ascii", "us-ascii":
		return string(data), nil
	}

	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return string(data), nil
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decoding %s content: %w", charset, err)
	}
	return string(out), nil
}
