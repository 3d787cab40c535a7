package localedata

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// TableLoader produces the table for one data key on demand.
type TableLoader[R any] interface {
	LoadTable(key DataKey) (*KeyTable[R], error)
}

// TableLoaderFunc adapts a function to TableLoader.
type TableLoaderFunc[R any] func(key DataKey) (*KeyTable[R], error)

func (fn TableLoaderFunc[R]) LoadTable(key DataKey) (*KeyTable[R], error) {
	return fn(key)
}

// TableSetLoader produces every table it knows in one pass.
type TableSetLoader[R any] interface {
	LoadTables() ([]*KeyTable[R], error)
}

// RelativeTimeFileLoader reads relative time records from JSON, YAML and TOML
// files shaped as {data key: {locale: record}}:
//
//	relativetime/long/week@1:
//	  en:
//	    relatives: {"-1": last week, "0": this week, "1": next week}
//	    past: {one: "{0} week ago", other: "{0} weeks ago"}
//	    future: {one: "in {0} week", other: "in {0} weeks"}
//
// Files are read in order and a later file replaces records of earlier
// ones locale by locale.
type RelativeTimeFileLoader struct {
	paths []string
}

var (
	_ TableLoader[*RelativeTimePatterns]    = (*RelativeTimeFileLoader)(nil)
	_ TableSetLoader[*RelativeTimePatterns] = (*RelativeTimeFileLoader)(nil)
)

func NewRelativeTimeFileLoader(paths ...string) *RelativeTimeFileLoader {
	return &RelativeTimeFileLoader{paths: append([]string(nil), paths...)}
}

// LoadTables builds one validated table per data key found in the files.
func (l *RelativeTimeFileLoader) LoadTables() ([]*KeyTable[*RelativeTimePatterns], error) {
	buckets, err := l.load()
	if err != nil {
		return nil, err
	}

	keys := make([]DataKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	tables := make([]*KeyTable[*RelativeTimePatterns], 0, len(keys))
	for _, key := range keys {
		table, err := buildRelativeTimeTable(key, buckets[key])
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, nil
}

// LoadTable reads the files and returns the table for key alone.
func (l *RelativeTimeFileLoader) LoadTable(key DataKey) (*KeyTable[*RelativeTimePatterns], error) {
	buckets, err := l.load()
	if err != nil {
		return nil, err
	}
	records, ok := buckets[key]
	if !ok {
		return nil, fmt.Errorf("%w %s in %s", ErrUnknownDataKey, key, strings.Join(l.paths, ", "))
	}
	return buildRelativeTimeTable(key, records)
}

func (l *RelativeTimeFileLoader) load() (map[DataKey]map[string]*RelativeTimePatterns, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("localedata: no loader paths configured")
	}

	buckets := make(map[DataKey]map[string]*RelativeTimePatterns)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("localedata: read %s: %w", path, err)
		}

		raw, err := decodeRelativeTimeFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("localedata: decode %s: %w", path, err)
		}

		src, err := buildRelativeTimeBuckets(raw)
		if err != nil {
			return nil, fmt.Errorf("localedata: %s: %w", path, err)
		}
		mergeRelativeTimeBuckets(buckets, src)
	}
	return buckets, nil
}

type rawRelativeTime struct {
	DisplayName string            `json:"display_name" yaml:"display_name" toml:"display_name"`
	Relatives   map[string]string `json:"relatives" yaml:"relatives" toml:"relatives"`
	Past        map[string]string `json:"past" yaml:"past" toml:"past"`
	Future      map[string]string `json:"future" yaml:"future" toml:"future"`
}

type rawRelativeTimeFile map[string]map[string]rawRelativeTime

func decodeRelativeTimeFile(path string, data []byte) (rawRelativeTimeFile, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var raw rawRelativeTimeFile
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("toml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	if len(raw) == 0 {
		return nil, errors.New("no data keys")
	}
	return raw, nil
}

func buildRelativeTimeBuckets(raw rawRelativeTimeFile) (map[DataKey]map[string]*RelativeTimePatterns, error) {
	buckets := make(map[DataKey]map[string]*RelativeTimePatterns, len(raw))
	for key, locales := range raw {
		if strings.TrimSpace(key) == "" {
			return nil, errors.New("empty data key")
		}

		records := make(map[string]*RelativeTimePatterns, len(locales))
		sources := make(map[string]string, len(locales))
		for locale, value := range locales {
			canonical, err := canonicalLocale(locale)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			if previous, dup := sources[canonical]; dup {
				return nil, fmt.Errorf("%s: %w %q (%q and %q)", key, ErrDuplicateKey, canonical, previous, locale)
			}

			record, err := buildRelativeTimeRecord(value)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", key, locale, err)
			}
			sources[canonical] = locale
			records[canonical] = record
		}
		buckets[DataKey(key)] = records
	}
	return buckets, nil
}

func buildRelativeTimeRecord(raw rawRelativeTime) (*RelativeTimePatterns, error) {
	record := &RelativeTimePatterns{DisplayName: raw.DisplayName}

	for offset, text := range raw.Relatives {
		value, err := strconv.Atoi(strings.TrimSpace(offset))
		if err != nil {
			return nil, fmt.Errorf("relative offset %q is not an integer", offset)
		}
		record.Relatives = append(record.Relatives, RelativePhrase{Offset: value, Text: text})
	}
	sort.Slice(record.Relatives, func(i, j int) bool {
		return record.Relatives[i].Offset < record.Relatives[j].Offset
	})

	var err error
	if record.Past, err = buildPluralPatterns(raw.Past); err != nil {
		return nil, fmt.Errorf("past: %w", err)
	}
	if record.Future, err = buildPluralPatterns(raw.Future); err != nil {
		return nil, fmt.Errorf("future: %w", err)
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}

func buildPluralPatterns(raw map[string]string) (PluralPatterns, error) {
	var patterns PluralPatterns
	if len(raw) == 0 {
		return patterns, errors.New("no plural patterns")
	}
	if _, ok := raw[string(PluralOther)]; !ok {
		return patterns, errors.New("missing 'other' pattern")
	}
	for category, template := range raw {
		cat, err := parsePluralCategory(category)
		if err != nil {
			return PluralPatterns{}, err
		}
		pattern, err := parseSubPattern(template)
		if err != nil {
			return PluralPatterns{}, err
		}
		patterns.set(cat, pattern)
	}
	return patterns, nil
}

func mergeRelativeTimeBuckets(dst, src map[DataKey]map[string]*RelativeTimePatterns) {
	for key, records := range src {
		target := dst[key]
		if target == nil {
			target = make(map[string]*RelativeTimePatterns, len(records))
			dst[key] = target
		}
		for locale, record := range records {
			target[locale] = record
		}
	}
}

func buildRelativeTimeTable(key DataKey, records map[string]*RelativeTimePatterns) (*KeyTable[*RelativeTimePatterns], error) {
	entries := make([]Entry[*RelativeTimePatterns], 0, len(records))
	for locale, record := range records {
		entries = append(entries, Entry[*RelativeTimePatterns]{Locale: locale, Record: record})
	}
	return NewKeyTable(key, entries)
}
