package localedata

import (
	"fmt"
	"sort"
	"strings"
)

// DataKey names one category of localized data, for example
// "relativetime/long/week@1". Every key has its own KeyTable.
type DataKey string

func (k DataKey) String() string { return string(k) }

// Entry binds a serialized locale to its record.
type Entry[R any] struct {
	Locale string
	Record R
}

// KeyTable is an immutable table of records sorted by locale string. It is
// read only after construction and safe for concurrent lookups.
type KeyTable[R any] struct {
	key     DataKey
	entries []Entry[R]
	policy  FallbackPolicy
}

type tableConfig struct {
	policy FallbackPolicy
}

// TableOption customizes a KeyTable at construction.
type TableOption func(*tableConfig)

// WithTablePolicy sets the fallback policy resolutions against the table use.
func WithTablePolicy(policy FallbackPolicy) TableOption {
	return func(cfg *tableConfig) {
		cfg.policy = policy
	}
}

// NewSortedKeyTable wraps entries that are already sorted, unique and
// canonical. The slice is used as is and must not be modified afterwards.
// Generated tables use this constructor; nothing is checked.
func NewSortedKeyTable[R any](key DataKey, entries []Entry[R], opts ...TableOption) *KeyTable[R] {
	cfg := buildTableConfig(opts)
	return &KeyTable[R]{key: key, entries: entries, policy: cfg.policy}
}

// NewKeyTable builds a table from arbitrary entries. Locales are
// canonicalized and sorted; duplicates and malformed locales are rejected.
func NewKeyTable[R any](key DataKey, entries []Entry[R], opts ...TableOption) (*KeyTable[R], error) {
	cfg := buildTableConfig(opts)

	sorted := make([]Entry[R], 0, len(entries))
	for _, entry := range entries {
		canonical, err := canonicalLocale(entry.Locale)
		if err != nil {
			return nil, fmt.Errorf("localedata: table %s: %w", key, err)
		}
		sorted = append(sorted, Entry[R]{Locale: canonical, Record: entry.Record})
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Locale < sorted[j].Locale
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Locale == sorted[i-1].Locale {
			return nil, fmt.Errorf("localedata: table %s: %w %q", key, ErrDuplicateKey, sorted[i].Locale)
		}
	}

	return &KeyTable[R]{key: key, entries: sorted, policy: cfg.policy}, nil
}

func buildTableConfig(opts []TableOption) tableConfig {
	cfg := tableConfig{policy: LanguagePriority}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	cfg.policy = cfg.policy.effective()
	return cfg
}

// Lookup returns the record stored under the exact locale string.
func (t *KeyTable[R]) Lookup(locale string) (R, bool) {
	var zero R
	if t == nil || len(t.entries) == 0 {
		return zero, false
	}

	idx := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Locale >= locale
	})
	if idx < len(t.entries) && t.entries[idx].Locale == locale {
		return t.entries[idx].Record, true
	}
	return zero, false
}

// lookupBytes is Lookup for a key held in a caller owned buffer.
func (t *KeyTable[R]) lookupBytes(key []byte) (R, bool) {
	var zero R
	if t == nil || len(t.entries) == 0 {
		return zero, false
	}

	idx := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Locale >= string(key)
	})
	if idx < len(t.entries) && t.entries[idx].Locale == string(key) {
		return t.entries[idx].Record, true
	}
	return zero, false
}

// lookupLocale serializes l into a stack buffer before searching.
func (t *KeyTable[R]) lookupLocale(l Locale) (R, bool) {
	var buf [32]byte
	return t.lookupBytes(l.appendString(buf[:0]))
}

// Validate checks the ordering and uniqueness invariants that lookups rely
// on. Table compilers and tests call it; lookups never do.
func (t *KeyTable[R]) Validate() error {
	if t == nil {
		return nil
	}
	for i := 1; i < len(t.entries); i++ {
		prev, cur := t.entries[i-1].Locale, t.entries[i].Locale
		switch cmp := strings.Compare(prev, cur); {
		case cmp == 0:
			return fmt.Errorf("localedata: table %s: %w %q", t.key, ErrDuplicateKey, cur)
		case cmp > 0:
			return fmt.Errorf("localedata: table %s: %w at %q", t.key, ErrUnsortedTable, cur)
		}
	}
	return nil
}

// Key returns the data key the table serves.
func (t *KeyTable[R]) Key() DataKey {
	if t == nil {
		return ""
	}
	return t.key
}

// Policy returns the fallback policy attached to the table.
func (t *KeyTable[R]) Policy() FallbackPolicy {
	if t == nil {
		return LanguagePriority
	}
	return t.policy.effective()
}

// WithPolicy returns a table sharing the same entries under another policy.
func (t *KeyTable[R]) WithPolicy(policy FallbackPolicy) *KeyTable[R] {
	if t == nil {
		return nil
	}
	return &KeyTable[R]{key: t.key, entries: t.entries, policy: policy.effective()}
}

func (t *KeyTable[R]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Locales returns the table keys in sorted order.
func (t *KeyTable[R]) Locales() []string {
	if t == nil || len(t.entries) == 0 {
		return nil
	}
	out := make([]string, len(t.entries))
	for i, entry := range t.entries {
		out[i] = entry.Locale
	}
	return out
}
