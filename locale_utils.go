package localedata

import "strings"

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// canonicalLocale returns the serialized form of a parseable locale string.
func canonicalLocale(locale string) (string, error) {
	l, err := ParseLocale(locale)
	if err != nil {
		return "", err
	}
	return l.String(), nil
}
