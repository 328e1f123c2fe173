package parser

import "strings"

// unescape resolves the PO escape sequences \\ \" \t \r \n. Unknown
// escapes keep the backslash, matching gettext leniency.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
			case 't':
				b.WriteByte('\t')
				i++
			case 'r':
				b.WriteByte('\r')
				i++
			case '\\':
				b.WriteByte('\\')
				i++
			case '"':
				b.WriteByte('"')
				i++
			default:
				b.WriteByte(s[i])
			}
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// quotedValue extracts the unescaped content of the quoted string that
// follows the first prefixLen bytes of line. Returns "" when the
// remainder is not fully quoted.
func quotedValue(line string, prefixLen int) string {
	v := strings.TrimSpace(line[prefixLen:])
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return unescape(v[1 : len(v)-1])
	}
	return ""
}
