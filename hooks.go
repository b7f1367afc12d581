package inputmask

// Hook observes every Normalize call.
type Hook interface {
	BeforeNormalize(ctx *NormalizeContext)
	AfterNormalize(ctx *NormalizeContext)
}

// NormalizeContext carries one Normalize call through the hooks. Hooks may
// replace Result in AfterNormalize; the replaced value is what the caller
// and OnChange receive. Changed is recomputed from the final Result, so
// OnChange only fires when it differs from Previous.
type NormalizeContext struct {
	Candidate string
	Previous  Value
	Result    Value
	Rejected  bool
	Changed   bool
	Metadata  map[string]any
}

func (ctx *NormalizeContext) ensureMetadata() {
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
}

func (ctx *NormalizeContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	ctx.ensureMetadata()
	ctx.Metadata[key] = value
}

func (ctx *NormalizeContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

// HookFuncs adapts plain functions to Hook; nil fields are skipped.
type HookFuncs struct {
	Before func(ctx *NormalizeContext)
	After  func(ctx *NormalizeContext)
}

func (h HookFuncs) BeforeNormalize(ctx *NormalizeContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h HookFuncs) AfterNormalize(ctx *NormalizeContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

// ChangeFunc receives every accepted value that differs from the previous one.
type ChangeFunc func(value Value)

func filterHooks(hooks []Hook) []Hook {
	filtered := make([]Hook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}
	return filtered
}
