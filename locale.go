package localedata

import (
	"strings"

	"golang.org/x/text/language"
)

const undetermined = "und"

// Locale is a canonical, comparable locale identifier made of a language,
// optional script and region, and an ordered list of variants.
//
// The zero value is the undetermined locale "und". Two Locales are equal
// under == exactly when their serialized forms are equal.
type Locale struct {
	language string // empty means und
	script   string
	region   string
	variants string // canonical, '-' separated
}

// Und is the language neutral locale every fallback chain ends in.
var Und = Locale{}

// ParseLocale parses a BCP-47 like identifier (language[-script][-region][-variant...]).
// Both '-' and '_' are accepted as delimiters and case is normalized.
//
// On failure ParseLocale returns Und together with a *MalformedLocaleError, so
// best effort callers may keep using the returned value.
func ParseLocale(input string) (Locale, error) {
	normalized := normalizeLocale(input)
	if normalized == "" {
		return Und, &MalformedLocaleError{Input: input, Reason: "empty locale"}
	}

	var (
		l        Locale
		variants []string
	)

	for i, part := range strings.Split(normalized, "-") {
		if part == "" {
			return Und, &MalformedLocaleError{Input: input, Reason: "empty subtag"}
		}
		if !isAlphanumeric(part) {
			return Und, &MalformedLocaleError{Input: input, Reason: "invalid characters in " + quote(part)}
		}

		if i == 0 {
			if !isLanguageSubtag(part) {
				return Und, &MalformedLocaleError{Input: input, Reason: "invalid language subtag " + quote(part)}
			}
			if lower := strings.ToLower(part); lower != undetermined {
				l.language = lower
			}
			continue
		}

		switch {
		case len(part) == 1:
			return Und, &MalformedLocaleError{Input: input, Reason: "extensions are not supported"}
		case isScriptSubtag(part) && l.script == "" && l.region == "" && len(variants) == 0:
			l.script = strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		case isRegionSubtag(part) && l.region == "" && len(variants) == 0:
			l.region = strings.ToUpper(part)
		case len(part) <= 8:
			variants = append(variants, strings.ToLower(part))
		default:
			return Und, &MalformedLocaleError{Input: input, Reason: "subtag too long " + quote(part)}
		}
	}

	l.variants = strings.Join(variants, "-")
	return l, nil
}

// MustParseLocale is like ParseLocale but panics on malformed input.
func MustParseLocale(input string) Locale {
	l, err := ParseLocale(input)
	if err != nil {
		panic(err)
	}
	return l
}

// FromTag converts an x/text language tag. Extensions and private use
// subtags are dropped.
func FromTag(tag language.Tag) Locale {
	base, script, region := tag.Raw()

	var l Locale
	if value := base.String(); value != undetermined {
		l.language = value
	}
	if script != (language.Script{}) {
		l.script = script.String()
	}
	if region != (language.Region{}) {
		l.region = region.String()
	}

	if variants := tag.Variants(); len(variants) > 0 {
		parts := make([]string, 0, len(variants))
		for _, variant := range variants {
			parts = append(parts, strings.ToLower(variant.String()))
		}
		l.variants = strings.Join(parts, "-")
	}
	return l
}

// Tag converts the locale into an x/text language tag.
func (l Locale) Tag() (language.Tag, error) {
	return language.Parse(l.String())
}

// String returns the canonical serialization used as the table lookup key.
func (l Locale) String() string {
	if l.script == "" && l.region == "" && l.variants == "" {
		return l.Language()
	}
	var buf [32]byte
	return string(l.appendString(buf[:0]))
}

// appendString appends the canonical serialization to dst.
func (l Locale) appendString(dst []byte) []byte {
	dst = append(dst, l.Language()...)
	if l.script != "" {
		dst = append(dst, '-')
		dst = append(dst, l.script...)
	}
	if l.region != "" {
		dst = append(dst, '-')
		dst = append(dst, l.region...)
	}
	if l.variants != "" {
		dst = append(dst, '-')
		dst = append(dst, l.variants...)
	}
	return dst
}

// Compare orders locales byte-wise on their serialized form.
func (l Locale) Compare(other Locale) int {
	return strings.Compare(l.String(), other.String())
}

// Language returns the language subtag, "und" when undetermined.
func (l Locale) Language() string {
	if l.language == "" {
		return undetermined
	}
	return l.language
}

func (l Locale) Script() string { return l.script }

func (l Locale) Region() string { return l.region }

// Variants returns a copy of the variant subtags in order.
func (l Locale) Variants() []string {
	if l.variants == "" {
		return nil
	}
	return strings.Split(l.variants, "-")
}

// IsUnd reports whether the language subtag is undetermined.
func (l Locale) IsUnd() bool {
	return l.language == ""
}

// SubtagCount counts the subtags that fallback can remove. An undetermined
// language does not count.
func (l Locale) SubtagCount() int {
	count := 0
	if l.language != "" {
		count++
	}
	if l.script != "" {
		count++
	}
	if l.region != "" {
		count++
	}
	if l.variants != "" {
		count += strings.Count(l.variants, "-") + 1
	}
	return count
}

func isLanguageSubtag(s string) bool {
	return (len(s) == 2 || len(s) == 3) && isAlpha(s)
}

func isScriptSubtag(s string) bool {
	return len(s) == 4 && isAlpha(s)
}

func isRegionSubtag(s string) bool {
	return (len(s) == 2 && isAlpha(s)) || (len(s) == 3 && isDigits(s))
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || (c|0x20 >= 'a' && c|0x20 <= 'z') {
			continue
		}
		return false
	}
	return true
}

func quote(s string) string {
	return "\"" + s + "\""
}
