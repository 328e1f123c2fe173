package catalog

import "strings"

// pluralCountForLang returns the standard number of plural forms for a
// language code. Used only when the catalog has no Plural-Forms header.
func pluralCountForLang(lang string) int {
	base := lang
	if idx := strings.IndexAny(lang, "_-"); idx > 0 {
		base = lang[:idx]
	}

	switch base {
	case "ja", "ko", "zh", "vi", "th", "id", "ms":
		return 1
	case "ru", "uk", "be", "hr", "sr", "bs", "pl", "cs", "sk", "ro", "lt", "lv":
		return 3
	case "ar":
		return 6
	default:
		return 2
	}
}
