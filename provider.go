package localedata

import (
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Provider serves records for several data keys. Tables are either
// registered up front or loaded on first use; once published a table is
// never replaced, so lookups only read.
//
// A Provider is safe for concurrent use.
type Provider[R any] struct {
	slots   map[DataKey]*tableSlot[R]
	keys    []DataKey
	logger  *slog.Logger
	hooks   []ResolutionHook
	metrics *Metrics
	group   singleflight.Group
}

type tableSlot[R any] struct {
	key       DataKey
	table     atomic.Pointer[KeyTable[R]]
	loader    TableLoader[R]
	policy    FallbackPolicy
	hasPolicy bool
}

// NewProvider builds a Provider from options.
func NewProvider[R any](opts ...Option[R]) (*Provider[R], error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	p := &Provider[R]{
		slots:   make(map[DataKey]*tableSlot[R], len(cfg.Tables)+len(cfg.Loaders)),
		logger:  cfg.Logger,
		hooks:   cfg.Hooks,
		metrics: cfg.Metrics,
	}

	for key, table := range cfg.Tables {
		slot := &tableSlot[R]{key: key}
		slot.policy, slot.hasPolicy = cfg.Policies[key]
		slot.table.Store(slot.apply(table))
		p.slots[key] = slot
	}
	for key, loader := range cfg.Loaders {
		slot := &tableSlot[R]{key: key, loader: loader}
		slot.policy, slot.hasPolicy = cfg.Policies[key]
		p.slots[key] = slot
	}
	for key := range cfg.Policies {
		if _, ok := p.slots[key]; !ok {
			return nil, fmt.Errorf("localedata: fallback policy for %s: %w", key, ErrUnknownDataKey)
		}
	}

	p.keys = make([]DataKey, 0, len(p.slots))
	for key := range p.slots {
		p.keys = append(p.keys, key)
	}
	sort.Slice(p.keys, func(i, j int) bool { return p.keys[i] < p.keys[j] })

	return p, nil
}

// NewRelativeTimeProvider returns a Provider preloaded with the baked
// relative time tables. Options may add keys or replace baked ones.
func NewRelativeTimeProvider(opts ...Option[*RelativeTimePatterns]) (*Provider[*RelativeTimePatterns], error) {
	baked := make([]Option[*RelativeTimePatterns], 0, len(opts)+2)
	for _, key := range BakedRelativeTimeKeys() {
		table, _ := BakedRelativeTimeTable(key)
		baked = append(baked, WithTable(table))
	}
	return NewProvider(append(baked, opts...)...)
}

func (s *tableSlot[R]) apply(table *KeyTable[R]) *KeyTable[R] {
	if s.hasPolicy {
		return table.WithPolicy(s.policy)
	}
	return table
}

// Keys lists the configured data keys in sorted order.
func (p *Provider[R]) Keys() []DataKey {
	if p == nil {
		return nil
	}
	return append([]DataKey(nil), p.keys...)
}

// Table returns the table for key, loading it first if needed. Concurrent
// first loads of one key share a single loader call. A failed load is not
// remembered; the next call tries again.
func (p *Provider[R]) Table(key DataKey) (*KeyTable[R], error) {
	table, _, err := p.table(key)
	return table, err
}

func (p *Provider[R]) table(key DataKey) (*KeyTable[R], bool, error) {
	if p == nil {
		return nil, false, fmt.Errorf("%w %s", ErrUnknownDataKey, key)
	}
	slot, ok := p.slots[key]
	if !ok {
		return nil, false, fmt.Errorf("%w %s", ErrUnknownDataKey, key)
	}
	if table := slot.table.Load(); table != nil {
		return table, false, nil
	}

	v, err, _ := p.group.Do(string(key), func() (any, error) {
		if table := slot.table.Load(); table != nil {
			return table, nil
		}

		table, err := slot.load()
		p.metrics.observeLoad(key, err)
		if err != nil {
			return nil, err
		}

		table = slot.apply(table)
		slot.table.Store(table)
		p.logger.Debug("localedata table loaded", "key", key, "locales", table.Len(), "policy", table.Policy().String())
		return table, nil
	})
	if err != nil {
		p.logger.Warn("localedata table load failed", "key", key, "error", err)
		return nil, false, err
	}
	return v.(*KeyTable[R]), true, nil
}

func (s *tableSlot[R]) load() (*KeyTable[R], error) {
	key := s.key
	table, err := s.loader.LoadTable(key)
	if err != nil {
		return nil, fmt.Errorf("localedata: load %s: %w", key, err)
	}
	if table == nil {
		return nil, fmt.Errorf("localedata: load %s: loader returned no table", key)
	}
	if table.Key() != key {
		return nil, fmt.Errorf("localedata: load %s: loader returned table for %s", key, table.Key())
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// Load resolves requested against the table for key.
func (p *Provider[R]) Load(key DataKey, requested Locale) (Resolution[R], error) {
	return p.resolve(&ResolutionHookContext{Key: key, Requested: requested})
}

// LoadString parses input and resolves it. Malformed input fails before any
// hook runs.
func (p *Provider[R]) LoadString(key DataKey, input string) (Resolution[R], error) {
	requested, err := ParseLocale(input)
	if err != nil {
		return Resolution[R]{}, err
	}
	return p.Load(key, requested)
}

// LoadAcceptLanguage resolves the preferences of an Accept-Language header
// with ResolveAny. An empty header resolves Und.
func (p *Provider[R]) LoadAcceptLanguage(key DataKey, header string) (Resolution[R], error) {
	preferences, err := ParseAcceptLanguage(header)
	if err != nil {
		return Resolution[R]{}, err
	}
	requested := Und
	if len(preferences) > 0 {
		requested = preferences[0]
	} else {
		preferences = []Locale{Und}
	}
	return p.resolve(&ResolutionHookContext{Key: key, Requested: requested, Preferences: preferences})
}

func (p *Provider[R]) resolve(ctx *ResolutionHookContext) (Resolution[R], error) {
	var hooks []ResolutionHook
	var metrics *Metrics
	if p != nil {
		hooks = p.hooks
		metrics = p.metrics
	}

	requested := ctx.Requested
	for _, hook := range hooks {
		hook.BeforeResolve(ctx)
	}
	if ctx.Requested != requested && len(ctx.Preferences) > 0 {
		preferences := append([]Locale(nil), ctx.Preferences...)
		preferences[0] = ctx.Requested
		ctx.Preferences = preferences
	}

	var res Resolution[R]
	table, loaded, err := p.table(ctx.Key)
	if loaded {
		ctx.SetMetadata(MetadataTableLoaded, true)
	}
	if err == nil {
		if len(ctx.Preferences) > 0 {
			res, err = ResolveAny(table, ctx.Preferences...)
		} else {
			res, err = Resolve(table, ctx.Requested)
		}
	}

	if err == nil {
		ctx.Resolved = res.Locale
		ctx.Exact = res.Exact
		ctx.Record = res.Record
		if !res.Exact {
			if len(ctx.Preferences) == 0 {
				ctx.SetMetadata(MetadataFallbackSteps, ctx.Requested.SubtagCount()-res.Locale.SubtagCount())
			}
			p.logger.Debug("localedata resolved by fallback", "key", ctx.Key, "requested", ctx.Requested.String(), "resolved", res.Locale.String())
		}
	}
	ctx.Err = err

	for _, hook := range hooks {
		hook.AfterResolve(ctx)
	}
	if err != nil && ctx.Err == nil {
		res, ctx.Err = recoveredResolution[R](ctx, err)
	}
	metrics.observeResolution(ctx.Key, ctx.Exact, ctx.Err)

	if ctx.Err != nil {
		return Resolution[R]{}, ctx.Err
	}
	return res, nil
}

// recoveredResolution builds the result of a failed lookup whose error an
// after hook cleared. The hook must supply a Record of type R; otherwise the
// original error stands.
func recoveredResolution[R any](ctx *ResolutionHookContext, err error) (Resolution[R], error) {
	record, ok := ctx.Record.(R)
	if !ok {
		return Resolution[R]{}, err
	}
	return Resolution[R]{Record: record, Locale: ctx.Resolved, Exact: ctx.Exact}, nil
}
