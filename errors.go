package localedata

import (
	"errors"
	"fmt"
)

// ErrMalformedLocale indicates that an input string could not be parsed into a Locale.
var ErrMalformedLocale = errors.New("localedata: malformed locale")

// ErrNotFound indicates that the fallback chain was exhausted without a table hit.
var ErrNotFound = errors.New("localedata: no data for locale")

// ErrUnknownDataKey is returned by a Provider asked for a key it was not configured with.
var ErrUnknownDataKey = errors.New("localedata: unknown data key")

// ErrDuplicateKey and ErrUnsortedTable are build time table violations.
var (
	ErrDuplicateKey  = errors.New("localedata: duplicate table key")
	ErrUnsortedTable = errors.New("localedata: table is not sorted")
)

// MalformedLocaleError reports why a locale string was rejected.
type MalformedLocaleError struct {
	Input  string
	Reason string
}

func (e *MalformedLocaleError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("localedata: malformed locale %q", e.Input)
	}
	return fmt.Sprintf("localedata: malformed locale %q: %s", e.Input, e.Reason)
}

func (e *MalformedLocaleError) Unwrap() error {
	return ErrMalformedLocale
}

// NotFoundError is returned when no candidate in the fallback chain had data.
type NotFoundError struct {
	Key      DataKey
	Original Locale
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("localedata: no data for locale %q", e.Original.String())
	}
	return fmt.Sprintf("localedata: no data for locale %q in %s", e.Original.String(), e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
