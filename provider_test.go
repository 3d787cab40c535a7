package localedata

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

type recordingHook struct {
	beforeCalls int
	afterCalls  int
	lastCtx     ResolutionHookContext
}

func (h *recordingHook) BeforeResolve(ctx *ResolutionHookContext) {
	h.beforeCalls++
}

func (h *recordingHook) AfterResolve(ctx *ResolutionHookContext) {
	h.afterCalls++
	h.lastCtx = *ctx
}

func greetingTable(t *testing.T) *KeyTable[string] {
	t.Helper()
	table, err := NewKeyTable("test/greeting@1", []Entry[string]{
		{Locale: "en", Record: "hello"},
		{Locale: "es", Record: "hola"},
		{Locale: "und", Record: "hi"},
	})
	if err != nil {
		t.Fatalf("NewKeyTable: %v", err)
	}
	return table
}

func TestProviderLoad(t *testing.T) {
	provider, err := NewProvider(WithTable(greetingTable(t)))
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	res, err := provider.Load("test/greeting@1", MustParseLocale("es-MX"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.Record != "hola" || res.Locale.String() != "es" || res.Exact {
		t.Fatalf("Load(es-MX) = %+v", res)
	}

	if _, err := provider.Load("test/missing@1", MustParseLocale("en")); !errors.Is(err, ErrUnknownDataKey) {
		t.Fatalf("expected ErrUnknownDataKey, got %v", err)
	}

	if _, err := provider.LoadString("test/greeting@1", "en-!"); !errors.Is(err, ErrMalformedLocale) {
		t.Fatalf("expected ErrMalformedLocale, got %v", err)
	}
}

func TestProviderLazyLoadOnce(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	loader := TableLoaderFunc[string](func(key DataKey) (*KeyTable[string], error) {
		calls.Add(1)
		<-release
		return NewKeyTable(key, []Entry[string]{{Locale: "en", Record: "hello"}})
	})

	provider, err := NewProvider(WithTableLoader[string]("test/lazy@1", loader))
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := provider.LoadString("test/lazy@1", "en-US")
			if err != nil {
				errs <- err
				return
			}
			if res.Record != "hello" {
				errs <- errors.New("unexpected record " + res.Record)
			}
		}()
	}
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent Load: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader calls = %d want 1", got)
	}
	if _, err := provider.Table("test/lazy@1"); err != nil {
		t.Fatalf("Table: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("published table reloaded, calls = %d", got)
	}
}

func TestProviderRetriesFailedLoad(t *testing.T) {
	var calls int
	loader := TableLoaderFunc[string](func(key DataKey) (*KeyTable[string], error) {
		calls++
		if calls == 1 {
			return nil, errors.New("backend unavailable")
		}
		return NewKeyTable(key, []Entry[string]{{Locale: "en", Record: "hello"}})
	})

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	provider, err := NewProvider(WithTableLoader[string]("test/lazy@1", loader), WithLogger[string](logger))
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	if _, err := provider.Table("test/lazy@1"); err == nil || !strings.Contains(err.Error(), "backend unavailable") {
		t.Fatalf("expected loader error, got %v", err)
	}
	if _, err := provider.Table("test/lazy@1"); err != nil {
		t.Fatalf("second Table: %v", err)
	}
	if calls != 2 {
		t.Fatalf("loader calls = %d want 2", calls)
	}

	out := logs.String()
	if !strings.Contains(out, "localedata table load failed") || !strings.Contains(out, "localedata table loaded") {
		t.Fatalf("missing load logs:\n%s", out)
	}
}

func TestProviderRejectsBadLoaderTables(t *testing.T) {
	tests := map[string]TableLoaderFunc[string]{
		"nil table": func(DataKey) (*KeyTable[string], error) { return nil, nil },
		"wrong key": func(DataKey) (*KeyTable[string], error) {
			return NewSortedKeyTable[string]("test/other@1", nil), nil
		},
		"unsorted": func(key DataKey) (*KeyTable[string], error) {
			return NewSortedKeyTable(key, []Entry[string]{{Locale: "fr"}, {Locale: "en"}}), nil
		},
	}

	for name, loader := range tests {
		t.Run(name, func(t *testing.T) {
			provider, err := NewProvider(WithTableLoader[string]("test/lazy@1", loader))
			if err != nil {
				t.Fatalf("NewProvider: %v", err)
			}
			if _, err := provider.Table("test/lazy@1"); err == nil {
				t.Fatal("expected load error")
			}
		})
	}
}

func TestProviderHooks(t *testing.T) {
	recorder := &recordingHook{}
	rewrite := ResolutionHookFuncs{
		Before: func(ctx *ResolutionHookContext) {
			if ctx.Requested.Language() == "xx" {
				ctx.Requested = MustParseLocale("es")
			}
		},
	}

	provider, err := NewProvider(
		WithTable(greetingTable(t)),
		WithHooks[string](rewrite, nil, recorder),
	)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	res, err := provider.LoadString("test/greeting@1", "xx")
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if res.Record != "hola" || !res.Exact {
		t.Fatalf("Before hook rewrite ignored: %+v", res)
	}

	if _, err := provider.LoadString("test/greeting@1", "en-GB"); err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if recorder.beforeCalls != 2 || recorder.afterCalls != 2 {
		t.Fatalf("unexpected hook counts before=%d after=%d", recorder.beforeCalls, recorder.afterCalls)
	}

	ctx := recorder.lastCtx
	if ctx.Resolved.String() != "en" || ctx.Exact || !ctx.Degraded() || ctx.Record != "hello" {
		t.Fatalf("unexpected hook context %+v", ctx)
	}
	if steps, ok := ctx.MetadataValue(MetadataFallbackSteps); !ok || steps != 1 {
		t.Fatalf("fallback steps = %v,%v", steps, ok)
	}
}

func TestProviderHookCanReplaceError(t *testing.T) {
	table, err := NewKeyTable("test/greeting@1", []Entry[string]{{Locale: "fr", Record: "salut"}})
	if err != nil {
		t.Fatalf("NewKeyTable: %v", err)
	}

	sentinel := errors.New("greeting unavailable")
	provider, err := NewProvider(
		WithTable(table),
		WithHooks[string](ResolutionHookFuncs{
			After: func(ctx *ResolutionHookContext) {
				if errors.Is(ctx.Err, ErrNotFound) {
					ctx.Err = sentinel
				}
			},
		}),
	)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	if _, err := provider.LoadString("test/greeting@1", "de"); !errors.Is(err, sentinel) {
		t.Fatalf("expected hook error, got %v", err)
	}
}

func TestProviderHookClearingErrorKeepsFailure(t *testing.T) {
	table, err := NewKeyTable("test/greeting@1", []Entry[string]{{Locale: "fr", Record: "salut"}})
	if err != nil {
		t.Fatalf("NewKeyTable: %v", err)
	}

	metrics := NewMetrics("test")
	provider, err := NewProvider(
		WithTable(table),
		WithMetrics[string](metrics),
		WithHooks[string](ResolutionHookFuncs{
			After: func(ctx *ResolutionHookContext) {
				ctx.Err = nil
			},
		}),
	)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	res, err := provider.LoadString("test/greeting@1", "de")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got res=%+v err=%v", res, err)
	}
	if res.Record != "" {
		t.Fatalf("failed lookup returned record %q", res.Record)
	}
	if got := testutil.ToFloat64(metrics.Resolutions.WithLabelValues("test/greeting@1", OutcomeNotFound)); got != 1 {
		t.Fatalf("not_found count = %v", got)
	}
}

func TestProviderHookCanRecoverWithRecord(t *testing.T) {
	table, err := NewKeyTable("test/greeting@1", []Entry[string]{{Locale: "fr", Record: "salut"}})
	if err != nil {
		t.Fatalf("NewKeyTable: %v", err)
	}

	provider, err := NewProvider(
		WithTable(table),
		WithHooks[string](ResolutionHookFuncs{
			After: func(ctx *ResolutionHookContext) {
				if errors.Is(ctx.Err, ErrNotFound) {
					ctx.Err = nil
					ctx.Resolved = MustParseLocale("fr")
					ctx.Record = "salut"
				}
			},
		}),
	)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	res, err := provider.LoadString("test/greeting@1", "de")
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if res.Record != "salut" || res.Locale.String() != "fr" || res.Exact {
		t.Fatalf("recovered resolution = %+v", res)
	}
}

func TestProviderBeforeHookRewritesAcceptLanguage(t *testing.T) {
	provider, err := NewProvider(
		WithTable(greetingTable(t)),
		WithHooks[string](ResolutionHookFuncs{
			Before: func(ctx *ResolutionHookContext) {
				if ctx.Requested.Language() == "de" {
					ctx.Requested = MustParseLocale("es")
				}
			},
		}),
	)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	res, err := provider.LoadAcceptLanguage("test/greeting@1", "de-DE, en;q=0.5")
	if err != nil {
		t.Fatalf("LoadAcceptLanguage: %v", err)
	}
	if res.Record != "hola" || !res.Exact {
		t.Fatalf("rewritten preference ignored: %+v", res)
	}
}

func TestProviderKeyPolicy(t *testing.T) {
	table, err := NewKeyTable("test/region@1", []Entry[string]{
		{Locale: "ca", Record: "català"},
		{Locale: "und-ES", Record: "spain"},
	})
	if err != nil {
		t.Fatalf("NewKeyTable: %v", err)
	}

	provider, err := NewProvider(WithTable(table), WithKeyPolicy[string]("test/region@1", RegionPriority))
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	res, err := provider.LoadString("test/region@1", "ca-ES-valencia")
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if res.Record != "spain" {
		t.Fatalf("policy override ignored, got %q from %s", res.Record, res.Locale)
	}

	if _, err := NewProvider(WithTable(table), WithKeyPolicy[string]("test/unknown@1", RegionPriority)); !errors.Is(err, ErrUnknownDataKey) {
		t.Fatalf("expected ErrUnknownDataKey, got %v", err)
	}
}

func TestProviderOptionErrors(t *testing.T) {
	if _, err := NewProvider(WithTable[string](nil)); err == nil {
		t.Fatal("expected error for nil table")
	}
	if _, err := NewProvider(WithTable(NewSortedKeyTable[string]("", nil))); err == nil {
		t.Fatal("expected error for table without key")
	}
	if _, err := NewProvider(WithTableLoader[string]("test/lazy@1", nil)); err == nil {
		t.Fatal("expected error for nil loader")
	}
}

func TestProviderLoadAcceptLanguage(t *testing.T) {
	provider, err := NewProvider(WithTable(greetingTable(t)))
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	tests := []struct {
		header string
		want   string
		exact  bool
	}{
		{header: "de-DE,es;q=0.8,en;q=0.5", want: "hola", exact: true},
		{header: "fr-CA, es-MX;q=0.9", want: "hola"},
		{header: "fr, de", want: "hi"},
		{header: "", want: "hi", exact: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			res, err := provider.LoadAcceptLanguage("test/greeting@1", tt.header)
			if err != nil {
				t.Fatalf("LoadAcceptLanguage: %v", err)
			}
			if res.Record != tt.want || res.Exact != tt.exact {
				t.Fatalf("LoadAcceptLanguage(%q) = %+v", tt.header, res)
			}
		})
	}
}

func TestNewRelativeTimeProvider(t *testing.T) {
	provider, err := NewRelativeTimeProvider(
		WithLoader[*RelativeTimePatterns](NewRelativeTimeFileLoader(filepath.Join("testdata", "relativetime_en.json"))),
	)
	if err != nil {
		t.Fatalf("NewRelativeTimeProvider: %v", err)
	}

	keys := provider.Keys()
	want := []DataKey{LongMonthKey, LongWeekKey, shortDayKey}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys() = %v want %v", keys, want)
		}
	}

	res, err := provider.LoadString(LongWeekKey, "sr_Latn_ME")
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if res.Locale.String() != "sr-Latn" {
		t.Fatalf("resolved %s", res.Locale)
	}

	day, err := provider.LoadString(shortDayKey, "en-AU")
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if got, _ := day.Record.Relative(1); got != "tomorrow" {
		t.Fatalf("Relative(1) = %q", got)
	}
}

func TestNewRelativeTimeProviderLazyFiles(t *testing.T) {
	loader := NewRelativeTimeFileLoader(filepath.Join("testdata", "relativetime_es.yaml"))
	recorder := &recordingHook{}

	provider, err := NewRelativeTimeProvider(
		WithTableLoader[*RelativeTimePatterns]("relativetime/short/hour@1", loader),
		WithHooks[*RelativeTimePatterns](recorder),
	)
	if err != nil {
		t.Fatalf("NewRelativeTimeProvider: %v", err)
	}

	if _, err := provider.LoadString("relativetime/short/hour@1", "es-AR"); err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if loaded, ok := recorder.lastCtx.MetadataValue(MetadataTableLoaded); !ok || loaded != true {
		t.Fatalf("first lookup should report the table load, got %v,%v", loaded, ok)
	}

	if _, err := provider.LoadString("relativetime/short/hour@1", "es"); err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if _, ok := recorder.lastCtx.MetadataValue(MetadataTableLoaded); ok {
		t.Fatal("second lookup should read the published table")
	}
}

func TestNilProvider(t *testing.T) {
	var provider *Provider[string]
	if _, err := provider.Load("test/greeting@1", Und); !errors.Is(err, ErrUnknownDataKey) {
		t.Fatalf("expected ErrUnknownDataKey, got %v", err)
	}
	if provider.Keys() != nil {
		t.Fatal("nil provider has no keys")
	}
}
