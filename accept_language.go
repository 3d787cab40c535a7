package localedata

import (
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the header size handed to the parser.
const maxAcceptLanguageLength = 4096

// mul is what x/text reports for the "*" wildcard.
var mul = language.MustParseBase("mul")

// ParseAcceptLanguage turns an Accept-Language header into locales ordered by
// quality, most preferred first. Entries with q=0, the wildcard and
// undetermined languages are skipped; repeated locales keep their first,
// highest ranked position. Extensions are dropped.
//
// An empty header yields no locales and no error.
func ParseAcceptLanguage(header string) ([]Locale, error) {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
		// drop the entry the cut landed in
		if idx := strings.LastIndexByte(header, ','); idx >= 0 {
			header = header[:idx]
		}
	}
	if header == "" {
		return nil, nil
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil, &MalformedLocaleError{Input: header, Reason: err.Error()}
	}

	locales := make([]Locale, 0, len(tags))
	seen := make(map[Locale]struct{}, len(tags))
	for _, tag := range tags {
		if base, _ := tag.Base(); base == mul {
			continue
		}
		l := FromTag(tag)
		if l.IsUnd() {
			continue
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		locales = append(locales, l)
	}
	return locales, nil
}
