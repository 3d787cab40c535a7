package localedata

import (
	"fmt"
	"io"
	"log/slog"
)

// Config captures Provider setup for records of type R.
type Config[R any] struct {
	Tables   map[DataKey]*KeyTable[R]
	Loaders  map[DataKey]TableLoader[R]
	Policies map[DataKey]FallbackPolicy
	Logger   *slog.Logger
	Hooks    []ResolutionHook
	Metrics  *Metrics
}

// Option mutates Config during construction
type Option[R any] func(*Config[R]) error

// NewConfig builds Config via supplied options. Options apply in order and
// later registrations for a key replace earlier ones.
func NewConfig[R any](opts ...Option[R]) (*Config[R], error) {
	cfg := &Config[R]{
		Tables:   make(map[DataKey]*KeyTable[R]),
		Loaders:  make(map[DataKey]TableLoader[R]),
		Policies: make(map[DataKey]FallbackPolicy),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return cfg, nil
}

// WithTable registers a ready table under its own key.
func WithTable[R any](table *KeyTable[R]) Option[R] {
	return func(c *Config[R]) error {
		if table == nil {
			return fmt.Errorf("localedata: nil table")
		}
		if table.Key() == "" {
			return fmt.Errorf("localedata: table without data key")
		}
		delete(c.Loaders, table.Key())
		c.Tables[table.Key()] = table
		return nil
	}
}

// WithTableLoader defers loading key until its first lookup.
func WithTableLoader[R any](key DataKey, loader TableLoader[R]) Option[R] {
	return func(c *Config[R]) error {
		if key == "" {
			return fmt.Errorf("localedata: loader without data key")
		}
		if loader == nil {
			return fmt.Errorf("localedata: nil loader for %s", key)
		}
		delete(c.Tables, key)
		c.Loaders[key] = loader
		return nil
	}
}

// WithLoader eagerly loads every table the loader provides. A failing
// loader fails construction.
func WithLoader[R any](loader TableSetLoader[R]) Option[R] {
	return func(c *Config[R]) error {
		if loader == nil {
			return nil
		}
		tables, err := loader.LoadTables()
		if err != nil {
			return err
		}
		for _, table := range tables {
			if err := WithTable(table)(c); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithKeyPolicy overrides the fallback policy for one key.
func WithKeyPolicy[R any](key DataKey, policy FallbackPolicy) Option[R] {
	return func(c *Config[R]) error {
		c.Policies[key] = policy.effective()
		return nil
	}
}

func WithLogger[R any](logger *slog.Logger) Option[R] {
	return func(c *Config[R]) error {
		c.Logger = logger
		return nil
	}
}

func WithHooks[R any](hooks ...ResolutionHook) Option[R] {
	return func(c *Config[R]) error {
		c.Hooks = append(c.Hooks, filterHooks(hooks)...)
		return nil
	}
}

// WithMetrics reports resolutions and lazy loads to m. Registration is left
// to the caller.
func WithMetrics[R any](m *Metrics) Option[R] {
	return func(c *Config[R]) error {
		c.Metrics = m
		return nil
	}
}
