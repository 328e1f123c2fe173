// Package i18n localizes pocat's own user-facing strings.
//
// It wraps the gotext library behind small T() and N() helpers. The
// translation catalogs are embedded in the binary via //go:embed and
// loaded once at startup via Init().
//
// Usage:
//
//	import "github.com/minios-linux/pocat/i18n"
//
//	func main() {
//	    i18n.Init("") // auto-detect from LANGUAGE/LC_ALL/LC_MESSAGES/LANG
//	    fmt.Println(i18n.T("parsed without errors"))
//	}
package i18n

import (
	"embed"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// locales embeds the translation catalogs, laid out as
// locales/{lang}/LC_MESSAGES/pocat.po.
//
//go:embed all:locales
var locales embed.FS

// domain is the gettext domain name for pocat.
const domain = "pocat"

// locale is the gotext locale used for lookups; nil until Init runs.
var locale *gotext.Locale

// Init initializes the i18n system. An empty lang auto-detects from
// the environment following GNU gettext conventions. Call once at
// program startup, before any T() or N() use.
func Init(lang string) {
	if lang == "" {
		lang = detectLanguage()
	}

	locale = gotext.NewLocaleFSWithPath(lang, locales, "locales")
	locale.AddDomain(domain)
	locale.SetDomain(domain)
}

// T translates a string, returning the original unchanged when no
// translation is available.
func T(msgid string) string {
	if locale == nil {
		return msgid
	}
	return locale.Get(msgid)
}

// N translates a string with plural forms; the target language's
// plural formula picks the form.
func N(singular, plural string, n int) string {
	if locale == nil {
		if n == 1 {
			return singular
		}
		return plural
	}
	return locale.GetN(singular, plural, n)
}

// detectLanguage determines the preferred language from the
// environment, in GNU gettext priority order.
func detectLanguage() string {
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(env)
		if val == "" {
			continue
		}
		// LANGUAGE can be a colon-separated list; take the first.
		if env == "LANGUAGE" {
			val, _, _ = strings.Cut(val, ":")
		}
		// Strip the encoding suffix ("ru_RU.UTF-8" -> "ru_RU").
		if idx := strings.IndexByte(val, '.'); idx >= 0 {
			val = val[:idx]
		}
		// "C" and "POSIX" mean no translation.
		if val == "C" || val == "POSIX" || val == "" {
			continue
		}
		return val
	}
	return "en"
}
