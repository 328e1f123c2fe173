package parser

// recognizedFlags is the set of gettext format flags accepted in "#,"
// comments. An unrecognized flag is a fatal error for the entry.
var recognizedFlags = map[string]struct{}{}

func init() {
	for _, f := range []string{
		"fuzzy",
		"c-format", "no-c-format",
		"c++-format", "no-c++-format",
		"objc-format", "no-objc-format",
		"java-format", "no-java-format", "no-java-printf-format",
		"python-format", "no-python-format", "no-python-brace-format",
		"php-format", "no-php-format",
		"gcc-internal-format", "no-gcc-internal-format",
		"gfc-internal-format", "no-gfc-internal-format",
		"qt-format", "no-qt-format", "qt-plural-format",
		"kde-format", "no-kde-format",
		"boost-format", "no-boost-format",
		"csharp-format", "no-csharp-format",
		"elisp-format", "no-elisp-format",
		"javascript-format", "no-javascript-format",
		"lua-format", "no-lua-format",
		"perl-format", "no-perl-format",
		"perl-brace-format", "no-perl-brace-format",
		"ruby-format", "no-ruby-format",
		"rust-format", "no-rust-format",
		"scheme-format", "no-scheme-format",
		"sh-format", "no-sh-format",
		"smalltalk-format", "no-smalltalk-format",
		"tcl-format", "no-tcl-format",
		"ycp-format", "no-ycp-format",
		"awk-format", "no-awk-format",
		"lisp-format", "no-lisp-format",
		"librep-format", "no-librep-format",
		"object-pascal-format", "no-object-pascal-format",
	} {
		recognizedFlags[f] = struct{}{}
	}
}

// validHeaderKeys is the set of header field names accepted in the
// header block's msgstr continuation lines.
var validHeaderKeys = map[string]struct{}{
	"Project-Id-Version":        {},
	"Report-Msgid-Bugs-To":      {},
	"POT-Creation-Date":         {},
	"PO-Revision-Date":          {},
	"Last-Translator":           {},
	"Language-Team":             {},
	"Language":                  {},
	"Plural-Forms":              {},
	"MIME-Version":              {},
	"Content-Type":              {},
	"Content-Transfer-Encoding": {},
	"Generated-By":              {},
}

// headerSeparator splits a header line into its key and value.
const headerSeparator = ":"
