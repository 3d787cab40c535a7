package localedata

// Metadata keys set by the Provider on hook contexts.
const (
	MetadataTableLoaded   = "table_loaded"
	MetadataFallbackSteps = "fallback_steps"
)

// ResolutionHook observes Provider lookups. BeforeResolve may rewrite Key,
// Requested and Preferences; a rewritten Requested also replaces the first
// preference of an Accept-Language lookup. AfterResolve may replace Err. An
// AfterResolve that clears Err must set Record to the Provider's record type
// along with Resolved and Exact, or the original error is returned.
type ResolutionHook interface {
	BeforeResolve(ctx *ResolutionHookContext)
	AfterResolve(ctx *ResolutionHookContext)
}

type ResolutionHookContext struct {
	Key         DataKey
	Requested   Locale
	Preferences []Locale
	Resolved    Locale
	Exact       bool
	Record      any
	Err         error
	Metadata    map[string]any
}

func (ctx *ResolutionHookContext) ensureMetadata() {
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
}

func (ctx *ResolutionHookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	ctx.ensureMetadata()
	ctx.Metadata[key] = value
}

func (ctx *ResolutionHookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

// Degraded reports a successful resolution that needed fallback.
func (ctx *ResolutionHookContext) Degraded() bool {
	return ctx != nil && ctx.Err == nil && !ctx.Exact
}

type ResolutionHookFuncs struct {
	Before func(ctx *ResolutionHookContext)
	After  func(ctx *ResolutionHookContext)
}

func (h ResolutionHookFuncs) BeforeResolve(ctx *ResolutionHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h ResolutionHookFuncs) AfterResolve(ctx *ResolutionHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

func filterHooks(hooks []ResolutionHook) []ResolutionHook {
	var filtered []ResolutionHook
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}
	return filtered
}
