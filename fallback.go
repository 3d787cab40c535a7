package localedata

import (
	"fmt"
	"strings"
)

// Subtag identifies a category of locale subtags removable during fallback.
type Subtag uint8

const (
	SubtagVariant Subtag = iota + 1
	SubtagRegion
	SubtagScript
	SubtagLanguage
)

const maxSubtagCategories = 4

func (s Subtag) String() string {
	switch s {
	case SubtagVariant:
		return "variant"
	case SubtagRegion:
		return "region"
	case SubtagScript:
		return "script"
	case SubtagLanguage:
		return "language"
	default:
		return fmt.Sprintf("Subtag(%d)", uint8(s))
	}
}

// FallbackPolicy is the ordered list of subtag categories a fallback step
// strips. Each step removes the first category in the order that is present
// on the current candidate. Categories missing from the policy are never
// removed.
//
// The zero value behaves as LanguagePriority.
type FallbackPolicy struct {
	order [maxSubtagCategories]Subtag
	n     uint8
}

var (
	// LanguagePriority keeps the language until the last step:
	// en-GB-oxendict, en-GB, en, und.
	LanguagePriority = FallbackPolicy{
		order: [maxSubtagCategories]Subtag{SubtagVariant, SubtagRegion, SubtagScript, SubtagLanguage},
		n:     4,
	}

	// RegionPriority keeps the region until the last step:
	// ca-ES-valencia, ca-ES, und-ES, und.
	RegionPriority = FallbackPolicy{
		order: [maxSubtagCategories]Subtag{SubtagVariant, SubtagScript, SubtagLanguage, SubtagRegion},
		n:     4,
	}

	// CollationPriority is the policy collation data keys name. It strips
	// subtags in the same order as LanguagePriority.
	CollationPriority = LanguagePriority
)

// NewFallbackPolicy builds a policy from an explicit order.
func NewFallbackPolicy(order ...Subtag) (FallbackPolicy, error) {
	if len(order) == 0 {
		return FallbackPolicy{}, fmt.Errorf("localedata: fallback policy needs at least one subtag")
	}
	if len(order) > maxSubtagCategories {
		return FallbackPolicy{}, fmt.Errorf("localedata: fallback policy has %d subtags, max %d", len(order), maxSubtagCategories)
	}

	var policy FallbackPolicy
	seen := make(map[Subtag]struct{}, len(order))
	for _, subtag := range order {
		if subtag < SubtagVariant || subtag > SubtagLanguage {
			return FallbackPolicy{}, fmt.Errorf("localedata: unknown subtag %s in fallback policy", subtag)
		}
		if _, exists := seen[subtag]; exists {
			return FallbackPolicy{}, fmt.Errorf("localedata: duplicate subtag %s in fallback policy", subtag)
		}
		seen[subtag] = struct{}{}
		policy.order[policy.n] = subtag
		policy.n++
	}
	return policy, nil
}

// ParseFallbackPolicy maps "language", "region" and "collation" to the
// built-in policies.
func ParseFallbackPolicy(name string) (FallbackPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "language":
		return LanguagePriority, nil
	case "region":
		return RegionPriority, nil
	case "collation":
		return CollationPriority, nil
	default:
		return FallbackPolicy{}, fmt.Errorf("localedata: unknown fallback policy %q", name)
	}
}

// Order returns the subtag categories in stripping order.
func (p FallbackPolicy) Order() []Subtag {
	p = p.effective()
	out := make([]Subtag, p.n)
	copy(out, p.order[:p.n])
	return out
}

func (p FallbackPolicy) String() string {
	p = p.effective()
	parts := make([]string, 0, p.n)
	for _, subtag := range p.order[:p.n] {
		parts = append(parts, subtag.String())
	}
	return strings.Join(parts, ">")
}

func (p FallbackPolicy) effective() FallbackPolicy {
	if p.n == 0 {
		return LanguagePriority
	}
	return p
}

// strip removes one subtag from l according to the policy. It reports false
// when nothing in the policy can be removed.
func (p FallbackPolicy) strip(l Locale) (Locale, bool) {
	p = p.effective()
	for _, subtag := range p.order[:p.n] {
		switch subtag {
		case SubtagVariant:
			if l.variants == "" {
				continue
			}
			if idx := strings.LastIndexByte(l.variants, '-'); idx >= 0 {
				l.variants = l.variants[:idx]
			} else {
				l.variants = ""
			}
			return l, true
		case SubtagRegion:
			if l.region == "" {
				continue
			}
			l.region = ""
			return l, true
		case SubtagScript:
			if l.script == "" {
				continue
			}
			l.script = ""
			return l, true
		case SubtagLanguage:
			if l.language == "" {
				continue
			}
			l.language = ""
			return l, true
		}
	}
	return l, false
}

// FallbackIterator walks the strict ancestors of a locale. It is a plain
// value and never allocates; copy it to restart from the same point.
type FallbackIterator struct {
	current   Locale
	policy    FallbackPolicy
	steps     int
	exhausted bool
}

// NewFallbackIterator returns an iterator positioned on start. The start
// locale itself is not yielded by Next.
func NewFallbackIterator(start Locale, policy FallbackPolicy) FallbackIterator {
	return FallbackIterator{current: start, policy: policy.effective()}
}

// Next advances to the next, less specific candidate. It returns false once
// the chain is exhausted.
func (it *FallbackIterator) Next() (Locale, bool) {
	if it.exhausted {
		return Und, false
	}
	next, ok := it.policy.strip(it.current)
	if !ok {
		it.exhausted = true
		return Und, false
	}
	it.current = next
	it.steps++
	return next, true
}

// Current returns the last yielded candidate, or the start locale before the first step.
func (it *FallbackIterator) Current() Locale {
	return it.current
}

// Steps returns how many candidates have been yielded.
func (it *FallbackIterator) Steps() int {
	return it.steps
}

// Exhausted reports whether Next has run out of candidates.
func (it *FallbackIterator) Exhausted() bool {
	return it.exhausted
}

// FallbackChain returns start followed by every fallback candidate.
func FallbackChain(start Locale, policy FallbackPolicy) []Locale {
	chain := make([]Locale, 0, start.SubtagCount()+1)
	chain = append(chain, start)

	it := NewFallbackIterator(start, policy)
	for {
		next, ok := it.Next()
		if !ok {
			break
		}
		chain = append(chain, next)
	}
	return chain
}
