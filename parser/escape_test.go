package parser

import "testing"

func TestUnescape(t *testing.T) {
	cases := []struct{ in, want string }{
		{`plain`, "plain"},
		{`a\nb`, "a\nb"},
		{`a\tb`, "a\tb"},
		{`a\rb`, "a\rb"},
		{`a\\b`, `a\b`},
		{`a\"b`, `a"b`},
		{`a\xb`, `a\xb`}, // unknown escape keeps the backslash
		{`trailing\`, `trailing\`},
	}
	for _, tc := range cases {
		if got := unescape(tc.in); got != tc.want {
			t.Errorf("unescape(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestQuotedValue(t *testing.T) {
	if got := quotedValue(`msgid "hello"`, len("msgid")); got != "hello" {
		t.Fatalf("got %q", got)
	}
	if got := quotedValue(`msgid   "spaced"`, len("msgid")); got != "spaced" {
		t.Fatalf("got %q", got)
	}
	// Not fully quoted: the value is dropped, not partially read.
	if got := quotedValue(`msgid "unterminated`, len("msgid")); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := quotedValue(`msgid bare`, len("msgid")); got != "" {
		t.Fatalf("got %q", got)
	}
}
