package localedata

// Resolution is the outcome of a successful lookup. Record is valid for
// Locale, which differs from the requested locale when Exact is false.
type Resolution[R any] struct {
	Record R
	Locale Locale
	Exact  bool
}

// Resolve finds the most specific record for requested, trying the locale
// verbatim and then every candidate of the table's fallback policy. It never
// substitutes a default: when the chain is exhausted a *NotFoundError is
// returned and the caller decides what to do.
func Resolve[R any](table *KeyTable[R], requested Locale) (Resolution[R], error) {
	return ResolveWithPolicy(table, requested, table.Policy())
}

// ResolveWithPolicy is Resolve with an explicit fallback policy.
func ResolveWithPolicy[R any](table *KeyTable[R], requested Locale, policy FallbackPolicy) (Resolution[R], error) {
	if record, ok := table.lookupLocale(requested); ok {
		return Resolution[R]{Record: record, Locale: requested, Exact: true}, nil
	}

	it := NewFallbackIterator(requested, policy)
	for {
		candidate, ok := it.Next()
		if !ok {
			break
		}
		if record, ok := table.lookupLocale(candidate); ok {
			return Resolution[R]{Record: record, Locale: candidate}, nil
		}
	}

	return Resolution[R]{}, &NotFoundError{Key: table.Key(), Original: requested}
}

// ResolveString parses input and resolves it. Parse failures are returned
// unchanged and match ErrMalformedLocale.
func ResolveString[R any](table *KeyTable[R], input string) (Resolution[R], error) {
	requested, err := ParseLocale(input)
	if err != nil {
		return Resolution[R]{}, err
	}
	return Resolve(table, requested)
}

// ResolveAny resolves a list of preferences, most preferred first. Every
// preference is tried down to its most generic language specific candidate
// before language neutral data is considered; the language neutral fallback
// then comes from the first preference. Exact refers to the preference that
// matched.
func ResolveAny[R any](table *KeyTable[R], requested ...Locale) (Resolution[R], error) {
	if len(requested) == 0 {
		return Resolution[R]{}, &NotFoundError{Key: table.Key(), Original: Und}
	}

	policy := table.Policy()
	for _, preference := range requested {
		if preference.IsUnd() {
			continue
		}
		if record, ok := table.lookupLocale(preference); ok {
			return Resolution[R]{Record: record, Locale: preference, Exact: true}, nil
		}

		it := NewFallbackIterator(preference, policy)
		for {
			candidate, ok := it.Next()
			if !ok || candidate.IsUnd() {
				break
			}
			if record, ok := table.lookupLocale(candidate); ok {
				return Resolution[R]{Record: record, Locale: candidate}, nil
			}
		}
	}

	return ResolveWithPolicy(table, requested[0], policy)
}
