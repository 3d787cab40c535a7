package localedata

import (
	"sort"
	"sync"
)

// Data keys served by the baked relative time tables.
var (
	LongWeekKey  = RelativeTimeKey(StyleLong, UnitWeek)
	LongMonthKey = RelativeTimeKey(StyleLong, UnitMonth)
)

var bakedRelativeTimeTables = sync.OnceValue(func() map[DataKey]*KeyTable[*RelativeTimePatterns] {
	return map[DataKey]*KeyTable[*RelativeTimePatterns]{
		LongWeekKey:  NewSortedKeyTable(LongWeekKey, longUnitWeekEntries),
		LongMonthKey: NewSortedKeyTable(LongMonthKey, longUnitMonthEntries),
	}
})

// BakedRelativeTimeTable returns the compiled table for key, if one ships
// with the package.
func BakedRelativeTimeTable(key DataKey) (*KeyTable[*RelativeTimePatterns], bool) {
	table, ok := bakedRelativeTimeTables()[key]
	return table, ok
}

// BakedRelativeTimeKeys lists the data keys compiled into the package.
func BakedRelativeTimeKeys() []DataKey {
	tables := bakedRelativeTimeTables()
	keys := make([]DataKey, 0, len(tables))
	for key := range tables {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
