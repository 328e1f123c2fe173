package parser

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		line string
		want Token
	}{
		{`msgid "hello"`, TokenMsgid},
		{`msgid ""`, TokenMsgid},
		{`msgid_plural "hellos"`, TokenMsgidPlural},
		{`msgctxt "menu"`, TokenMsgctxt},
		{`msgstr "bonjour"`, TokenMsgstr},
		{`msgstr[0] "one"`, TokenMsgstrIndex},
		{`msgstr[12] "many"`, TokenMsgstrIndex},
		{`"continued"`, TokenContinuation},
		{`# translator note`, TokenComment},
		{`#: src/main.go:42`, TokenComment},
		{`#, fuzzy`, TokenComment},
		{`#. extracted`, TokenComment},
		{`#| msgid "old"`, TokenComment},
		{`#~ msgid "gone"`, TokenObsoleteMsgid},
		{`#~ msgid_plural "gones"`, TokenObsoleteMsgidPlural},
		{`#~ msgctxt "old menu"`, TokenObsoleteMsgctxt},
		{`#~ msgstr "parti"`, TokenObsoleteMsgstr},
		{`#~ msgstr[1] "partis"`, TokenObsoleteMsgstrIndex},
		{`#~ "continued obsolete"`, TokenContinuation},
		{`#~msgid "no space"`, TokenObsoleteMsgid},
		{`#~ garbage`, TokenInvalid},
		{`#~`, TokenInvalid},
		{`garbage line`, TokenInvalid},
		{`msg "typo"`, TokenInvalid},
	}

	for _, tc := range cases {
		if got := Classify(tc.line); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.line, got, tc.want)
		}
	}
}

func TestClassify_LongerKeywordsWin(t *testing.T) {
	// msgid_plural must not classify as msgid, msgstr[ not as msgstr.
	if got := Classify(`msgid_plural "x"`); got != TokenMsgidPlural {
		t.Fatalf("msgid_plural classified as %s", got)
	}
	if got := Classify(`msgstr[0] "x"`); got != TokenMsgstrIndex {
		t.Fatalf("msgstr[0] classified as %s", got)
	}
}

func TestClassify_EmptyLinePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty line")
		}
	}()
	Classify("")
}
