package inputmask

import "log/slog"

// AutoCompleteOff is the autocomplete attribute every masked field carries;
// browser autofill fights the caret corrections.
const AutoCompleteOff = "off"

// Mask formats and normalizes one numeric field and pins its caret between
// the prefix and suffix. A Mask holds no per-edit state and may be shared
// by every render of its field.
type Mask struct {
	decorator  Decorator
	normalizer Normalizer
	formatter  *NumberFormatter
	places     int
	onChange   ChangeFunc
	hooks      []Hook
	scheduler  Scheduler
	logger     *slog.Logger
}

func newMask(cfg *Config) *Mask {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	scheduler := cfg.Scheduler
	if scheduler == nil {
		scheduler = NewTaskQueue()
	}

	formatter := NewNumberFormatter(cfg.Locale, NewSeparatorRulesProvider(cfg.separators))
	if formatter.FellBack() {
		logger.Debug("inputmask: unusable locale, using default",
			slog.String("locale", cfg.Locale),
			slog.String("default", DefaultLocale))
	}

	return &Mask{
		decorator: Decorator{Prefix: cfg.Prefix, Suffix: cfg.Suffix},
		normalizer: Normalizer{
			Places:      cfg.DecimalPlaces,
			StringValue: cfg.StringValue,
			AllowEmpty:  cfg.AllowEmpty,
		},
		formatter: formatter,
		places:    cfg.DecimalPlaces,
		onChange:  cfg.OnChange,
		hooks:     append([]Hook(nil), cfg.Hooks...),
		scheduler: scheduler,
		logger:    logger,
	}
}

// Format renders value as prefix + localized number + suffix. Empty values
// render as zero.
func (m *Mask) Format(value Value) string {
	return m.decorator.Decorate(m.formatter.FormatDecimal(value.Decimal(), m.places))
}

// FormatFloat is Format(Number(value)).
func (m *Mask) FormatFloat(value float64) string {
	return m.Format(Number(value))
}

// Normalize recovers the stored value from candidate, the field text after
// an edit. An edit that damaged the prefix or suffix, or whose digits do not
// fit a float64, is rejected and previous is returned unchanged, without
// calling OnChange.
func (m *Mask) Normalize(candidate string, previous Value) Value {
	ctx := &NormalizeContext{
		Candidate: candidate,
		Previous:  previous,
	}

	for _, hook := range m.hooks {
		hook.BeforeNormalize(ctx)
	}

	if middle, ok := m.decorator.Undecorate(ctx.Candidate); !ok {
		ctx.Rejected = true
		ctx.Result = previous
		m.logger.Debug("inputmask: edit rejected, decoration changed",
			slog.String("candidate", ctx.Candidate),
			slog.String("prefix", m.decorator.Prefix),
			slog.String("suffix", m.decorator.Suffix))
	} else if result, err := m.normalizer.Normalize(middle); err != nil {
		ctx.Rejected = true
		ctx.Result = previous
		m.logger.Debug("inputmask: edit rejected",
			slog.String("candidate", ctx.Candidate),
			slog.Any("error", err))
	} else {
		ctx.Result = result
	}
	ctx.Changed = !ctx.Rejected && !ctx.Result.Equal(previous)

	for _, hook := range m.hooks {
		hook.AfterNormalize(ctx)
	}
	// hooks may have replaced Result
	ctx.Changed = !ctx.Rejected && !ctx.Result.Equal(previous)

	if ctx.Changed && m.onChange != nil {
		m.onChange(ctx.Result)
	}
	return ctx.Result
}

// Caret returns the selection the field must be corrected to.
func (m *Mask) Caret(state FieldState) Selection {
	pos := CaretPosition(state.Value, m.decorator.PrefixLen(), m.decorator.SuffixLen())
	return Selection{Start: pos, End: pos}
}

// OnKeyDown schedules a caret correction for the event target.
func (m *Mask) OnKeyDown(ev *Event) { m.manageCaret(ev) }

// OnMouseDown schedules a caret correction for the event target.
func (m *Mask) OnMouseDown(ev *Event) { m.manageCaret(ev) }

// OnFocus schedules a caret correction for the event target.
func (m *Mask) OnFocus(ev *Event) { m.manageCaret(ev) }

// OnClick schedules a caret correction for the event target.
func (m *Mask) OnClick(ev *Event) { m.manageCaret(ev) }

// manageCaret defers the correction so it sees the field after the host
// applied the edit and redrew. Events without a target are ignored.
func (m *Mask) manageCaret(ev *Event) {
	if ev == nil || ev.Target == nil {
		return
	}
	if ev.Persist != nil {
		ev.Persist()
	}

	target := ev.Target
	m.scheduler.Schedule(func() {
		sel := m.Caret(FieldState{Value: target.Value()})
		target.SetSelectionRange(sel.Start, sel.End)
	})
}

// AutoComplete returns AutoCompleteOff.
func (m *Mask) AutoComplete() string {
	return AutoCompleteOff
}

// Scheduler returns the scheduler caret corrections are queued on. With the
// default configuration it is a *TaskQueue the host flushes after redraws.
func (m *Mask) Scheduler() Scheduler {
	return m.scheduler
}

// Decorator returns the prefix and suffix of the mask.
func (m *Mask) Decorator() Decorator {
	return m.decorator
}

// DecimalPlaces returns the fixed fraction digit count.
func (m *Mask) DecimalPlaces() int {
	return m.places
}

// StringValue reports whether Normalize yields text values.
func (m *Mask) StringValue() bool {
	return m.normalizer.StringValue
}

// Locale returns the locale used for formatting.
func (m *Mask) Locale() string {
	return m.formatter.Locale()
}

// Props is what a form binding spreads onto a field.
type Props struct {
	Format       func(Value) string
	Normalize    func(candidate string, previous Value) Value
	OnKeyDown    func(*Event)
	OnMouseDown  func(*Event)
	OnFocus      func(*Event)
	OnClick      func(*Event)
	AutoComplete string
}

// Props returns the binding hooks of m.
func (m *Mask) Props() Props {
	return Props{
		Format:       m.Format,
		Normalize:    m.Normalize,
		OnKeyDown:    m.OnKeyDown,
		OnMouseDown:  m.OnMouseDown,
		OnFocus:      m.OnFocus,
		OnClick:      m.OnClick,
		AutoComplete: AutoCompleteOff,
	}
}
