package localedata

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Style is the width of relative time phrases.
type Style string

const (
	StyleLong   Style = "long"
	StyleShort  Style = "short"
	StyleNarrow Style = "narrow"
)

// Unit is the calendar or clock unit a relative time phrase speaks about.
type Unit string

const (
	UnitSecond  Unit = "second"
	UnitMinute  Unit = "minute"
	UnitHour    Unit = "hour"
	UnitDay     Unit = "day"
	UnitWeek    Unit = "week"
	UnitMonth   Unit = "month"
	UnitQuarter Unit = "quarter"
	UnitYear    Unit = "year"
)

var (
	styles = []Style{StyleLong, StyleShort, StyleNarrow}
	units  = []Unit{UnitSecond, UnitMinute, UnitHour, UnitDay, UnitWeek, UnitMonth, UnitQuarter, UnitYear}
)

// ParseStyle accepts long, short and narrow, case insensitive.
func ParseStyle(raw string) (Style, error) {
	value := Style(strings.ToLower(strings.TrimSpace(raw)))
	for _, style := range styles {
		if style == value {
			return style, nil
		}
	}
	return "", fmt.Errorf("localedata: unknown relative time style %q", raw)
}

// ParseUnit accepts second through year, case insensitive.
func ParseUnit(raw string) (Unit, error) {
	value := Unit(strings.ToLower(strings.TrimSpace(raw)))
	for _, unit := range units {
		if unit == value {
			return unit, nil
		}
	}
	return "", fmt.Errorf("localedata: unknown relative time unit %q", raw)
}

// RelativeTimeKey returns the data key for a style and unit,
// e.g. "relativetime/long/week@1".
func RelativeTimeKey(style Style, unit Unit) DataKey {
	return DataKey("relativetime/" + string(style) + "/" + string(unit) + "@1")
}

// NoPlaceholder marks a sub pattern without a number slot ("a week ago").
const NoPlaceholder = -1

const placeholder = "{0}"

// SubPattern is a phrase with the number removed. Index is the byte offset
// where the formatted number belongs, or NoPlaceholder.
type SubPattern struct {
	Pattern string
	Index   int
}

// HasPlaceholder reports whether the pattern expects a number.
func (p SubPattern) HasPlaceholder() bool {
	return p.Index != NoPlaceholder
}

// Template renders the pattern back with a "{0}" slot.
func (p SubPattern) Template() string {
	if !p.HasPlaceholder() || p.Index > len(p.Pattern) || p.Index < 0 {
		return p.Pattern
	}
	return p.Pattern[:p.Index] + placeholder + p.Pattern[p.Index:]
}

func (p SubPattern) validate() error {
	if p.Index == NoPlaceholder {
		return nil
	}
	if p.Index < 0 || p.Index > len(p.Pattern) {
		return fmt.Errorf("placeholder index %d out of range for %q", p.Index, p.Pattern)
	}
	if p.Index < len(p.Pattern) && !utf8.RuneStart(p.Pattern[p.Index]) {
		return fmt.Errorf("placeholder index %d splits a character in %q", p.Index, p.Pattern)
	}
	return nil
}

// parseSubPattern compiles a "{0}" template into a SubPattern.
func parseSubPattern(template string) (SubPattern, error) {
	idx := strings.Index(template, placeholder)
	if idx < 0 {
		return SubPattern{Pattern: template, Index: NoPlaceholder}, nil
	}
	rest := template[idx+len(placeholder):]
	if strings.Contains(rest, placeholder) {
		return SubPattern{}, fmt.Errorf("pattern %q has more than one placeholder", template)
	}
	return SubPattern{Pattern: template[:idx] + rest, Index: idx}, nil
}

// PluralPatterns maps plural categories to sub patterns. Other is always
// present; the remaining categories are optional.
type PluralPatterns struct {
	Zero  *SubPattern
	One   *SubPattern
	Two   *SubPattern
	Few   *SubPattern
	Many  *SubPattern
	Other SubPattern
}

// Get returns the pattern stored for exactly this category.
func (p PluralPatterns) Get(category PluralCategory) (SubPattern, bool) {
	var pattern *SubPattern
	switch category {
	case PluralZero:
		pattern = p.Zero
	case PluralOne:
		pattern = p.One
	case PluralTwo:
		pattern = p.Two
	case PluralFew:
		pattern = p.Few
	case PluralMany:
		pattern = p.Many
	case PluralOther:
		return p.Other, true
	}
	if pattern == nil {
		return SubPattern{}, false
	}
	return *pattern, true
}

// Select returns the category pattern, falling back to Other.
func (p PluralPatterns) Select(category PluralCategory) SubPattern {
	if pattern, ok := p.Get(category); ok {
		return pattern
	}
	return p.Other
}

// Categories lists the categories that carry a pattern, in CLDR order.
func (p PluralPatterns) Categories() []PluralCategory {
	categories := make([]PluralCategory, 0, len(PluralCategories))
	for _, category := range PluralCategories {
		if _, ok := p.Get(category); ok {
			categories = append(categories, category)
		}
	}
	return categories
}

func (p *PluralPatterns) set(category PluralCategory, pattern SubPattern) {
	switch category {
	case PluralZero:
		p.Zero = &pattern
	case PluralOne:
		p.One = &pattern
	case PluralTwo:
		p.Two = &pattern
	case PluralFew:
		p.Few = &pattern
	case PluralMany:
		p.Many = &pattern
	case PluralOther:
		p.Other = pattern
	}
}

func (p PluralPatterns) validate() error {
	if p.Other.Pattern == "" {
		return fmt.Errorf("missing 'other' pattern")
	}
	for _, category := range PluralCategories {
		pattern, ok := p.Get(category)
		if !ok {
			continue
		}
		if err := pattern.validate(); err != nil {
			return fmt.Errorf("%s: %w", category, err)
		}
	}
	return nil
}

// RelativePhrase is a fixed phrase for a small offset, e.g. -1 "last week".
type RelativePhrase struct {
	Offset int
	Text   string
}

// RelativeTimePatterns is the record stored in relative time tables.
// Records are shared between table entries and must not be modified.
type RelativeTimePatterns struct {
	DisplayName string
	Relatives   []RelativePhrase // sorted by Offset
	Past        PluralPatterns
	Future      PluralPatterns
}

// Relative returns the fixed phrase for offset, if the locale has one.
func (r *RelativeTimePatterns) Relative(offset int) (string, bool) {
	if r == nil {
		return "", false
	}
	for _, phrase := range r.Relatives {
		if phrase.Offset == offset {
			return phrase.Text, true
		}
	}
	return "", false
}

// Validate checks the record invariants table compilers must guarantee.
func (r *RelativeTimePatterns) Validate() error {
	if r == nil {
		return fmt.Errorf("nil relative time record")
	}
	for i := 1; i < len(r.Relatives); i++ {
		if r.Relatives[i-1].Offset >= r.Relatives[i].Offset {
			return fmt.Errorf("relatives not sorted at offset %d", r.Relatives[i].Offset)
		}
	}
	if err := r.Past.validate(); err != nil {
		return fmt.Errorf("past: %w", err)
	}
	if err := r.Future.validate(); err != nil {
		return fmt.Errorf("future: %w", err)
	}
	return nil
}
