package inputmask

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used when a mask is built without a locale or with one
// that cannot be parsed.
const DefaultLocale = "en-US"

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// resolveLocale returns the tag used for formatting. ok is false when the
// identifier was unusable and DefaultLocale was substituted.
func resolveLocale(locale string) (tag language.Tag, resolved string, ok bool) {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return language.MustParse(DefaultLocale), DefaultLocale, true
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return language.MustParse(DefaultLocale), DefaultLocale, false
	}
	return tag, tag.String(), true
}

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}

	return ""
}

// localeCandidates lists locale itself followed by its parents and base
// language, closest first and without duplicates.
func localeCandidates(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil
	}

	chain := []string{locale}
	seen := map[string]struct{}{locale: {}}

	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		if _, exists := seen[current]; exists {
			break
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	if tag, err := language.Parse(locale); err == nil {
		if base, conf := tag.Base(); conf != language.No {
			if _, exists := seen[base.String()]; !exists {
				chain = append(chain, base.String())
			}
		}
	}

	return chain
}

// EnvironmentLocale derives a locale identifier from the POSIX locale
// variables (LC_ALL, LC_NUMERIC, LANG). It returns "" when none is set or
// the value is "C"/"POSIX". Hosts may pass the result to WithLocale.
func EnvironmentLocale() string {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		if locale := posixToBCP47(os.Getenv(key)); locale != "" {
			return locale
		}
	}
	return ""
}

func posixToBCP47(value string) string {
	value = strings.TrimSpace(value)
	if idx := strings.IndexAny(value, ".@"); idx >= 0 {
		value = value[:idx]
	}
	switch value {
	case "", "C", "POSIX":
		return ""
	}
	return normalizeLocale(value)
}
