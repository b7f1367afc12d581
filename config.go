package inputmask

import (
	"fmt"
	"log/slog"
)

// DefaultDecimalPlaces is the fraction digit count of masks built without
// WithDecimalPlaces.
const DefaultDecimalPlaces = 2

// Config captures the options of one masked field. It is read only once
// Build returns.
type Config struct {
	Prefix        string
	Suffix        string
	DecimalPlaces int
	Locale        string
	StringValue   bool
	AllowEmpty    bool
	OnChange      ChangeFunc
	Hooks         []Hook
	Scheduler     Scheduler
	Logger        *slog.Logger

	separators map[string]SeparatorRules
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		DecimalPlaces: DefaultDecimalPlaces,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.Locale = normalizeLocale(cfg.Locale)
	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}

	if cfg.Scheduler == nil {
		cfg.Scheduler = NewTaskQueue()
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	cfg.Hooks = filterHooks(cfg.Hooks)

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.DecimalPlaces < 0 {
		return fmt.Errorf("inputmask: decimal places %d: %w", cfg.DecimalPlaces, ErrInvalidDecimalPlaces)
	}
	return nil
}

// WithPrefix sets the literal text shown before the number
func WithPrefix(prefix string) Option {
	return func(c *Config) error {
		c.Prefix = prefix
		return nil
	}
}

// WithSuffix sets the literal text shown after the number
func WithSuffix(suffix string) Option {
	return func(c *Config) error {
		c.Suffix = suffix
		return nil
	}
}

func WithDecimalPlaces(places int) Option {
	return func(c *Config) error {
		if places < 0 {
			return fmt.Errorf("inputmask: decimal places %d: %w", places, ErrInvalidDecimalPlaces)
		}
		c.DecimalPlaces = places
		return nil
	}
}

// WithDecimalPlacesText accepts the textual form of a decimal place count,
// such as "4", as found in form attributes and config files.
func WithDecimalPlacesText(places string) Option {
	return func(c *Config) error {
		n, err := ParseDecimalPlaces(places)
		if err != nil {
			return err
		}
		c.DecimalPlaces = n
		return nil
	}
}

func WithLocale(locale string) Option {
	return func(c *Config) error {
		c.Locale = locale
		return nil
	}
}

// WithStringValue makes Normalize return dot-decimal text values instead of
// floats, for stores that keep amounts as strings.
func WithStringValue(enabled bool) Option {
	return func(c *Config) error {
		c.StringValue = enabled
		return nil
	}
}

// WithAllowEmpty makes a cleared field normalize to Empty instead of zero.
func WithAllowEmpty(enabled bool) Option {
	return func(c *Config) error {
		c.AllowEmpty = enabled
		return nil
	}
}

func WithOnChange(fn ChangeFunc) Option {
	return func(c *Config) error {
		c.OnChange = fn
		return nil
	}
}

func WithHooks(hooks ...Hook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

// WithScheduler sets where caret corrections are deferred to. Defaults to a
// new TaskQueue reachable through Mask.Scheduler.
func WithScheduler(scheduler Scheduler) Option {
	return func(c *Config) error {
		c.Scheduler = scheduler
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithSeparatorRules overrides the CLDR separators for locale. Lookups walk
// the parent chain, so rules for "de" also cover "de-AT".
func WithSeparatorRules(locale string, rules SeparatorRules) Option {
	return func(c *Config) error {
		locale = normalizeLocale(locale)
		if locale == "" {
			return nil
		}
		if c.separators == nil {
			c.separators = make(map[string]SeparatorRules)
		}
		c.separators[locale] = rules
		return nil
	}
}

// Build returns the mask described by cfg.
func (cfg *Config) Build() (*Mask, error) {
	if cfg == nil {
		return New()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newMask(cfg), nil
}

// New builds a Mask from options.
func New(opts ...Option) (*Mask, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.Build()
}
