package inputmask

import (
	"errors"
	"log/slog"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.DecimalPlaces != DefaultDecimalPlaces {
		t.Fatalf("DecimalPlaces = %d want %d", cfg.DecimalPlaces, DefaultDecimalPlaces)
	}

	if cfg.Locale != DefaultLocale {
		t.Fatalf("Locale = %q want %q", cfg.Locale, DefaultLocale)
	}

	if _, ok := cfg.Scheduler.(*TaskQueue); !ok {
		t.Fatalf("expected default task queue, got %T", cfg.Scheduler)
	}

	if cfg.Logger == nil {
		t.Fatal("expected default logger")
	}

	if cfg.StringValue || cfg.AllowEmpty || cfg.Prefix != "" || cfg.Suffix != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestNewConfigOptions(t *testing.T) {
	queue := NewTaskQueue()
	logger := slog.New(slog.DiscardHandler)

	cfg, err := NewConfig(
		WithPrefix("BTC "),
		WithSuffix(" total"),
		WithDecimalPlacesText(" 5 "),
		WithLocale(" pt_BR "),
		WithStringValue(true),
		WithAllowEmpty(true),
		WithScheduler(queue),
		WithLogger(logger),
		WithHooks(nil, HookFuncs{}),
		nil,
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.Prefix != "BTC " || cfg.Suffix != " total" {
		t.Fatalf("decorations = %q,%q", cfg.Prefix, cfg.Suffix)
	}
	if cfg.DecimalPlaces != 5 {
		t.Fatalf("DecimalPlaces = %d", cfg.DecimalPlaces)
	}
	if cfg.Locale != "pt-BR" {
		t.Fatalf("Locale = %q want pt-BR", cfg.Locale)
	}
	if !cfg.StringValue || !cfg.AllowEmpty {
		t.Fatal("expected string value and allow empty")
	}
	if cfg.Scheduler != queue || cfg.Logger != logger {
		t.Fatal("scheduler or logger not applied")
	}
	if len(cfg.Hooks) != 1 {
		t.Fatalf("Hooks length = %d want 1", len(cfg.Hooks))
	}
}

func TestNewConfigInvalidDecimalPlaces(t *testing.T) {
	tests := []Option{
		WithDecimalPlaces(-2),
		WithDecimalPlacesText("-1"),
		WithDecimalPlacesText("2.5"),
		WithDecimalPlacesText(""),
	}

	for i, opt := range tests {
		if _, err := NewConfig(opt); !errors.Is(err, ErrInvalidDecimalPlaces) {
			t.Fatalf("case %d: err = %v want ErrInvalidDecimalPlaces", i, err)
		}
	}
}

func TestConfigBuildValidates(t *testing.T) {
	cfg := &Config{DecimalPlaces: -1}
	if _, err := cfg.Build(); !errors.Is(err, ErrInvalidDecimalPlaces) {
		t.Fatalf("Build err = %v", err)
	}

	// a literal config without scheduler or locale still builds
	m, err := (&Config{Prefix: "$"}).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if m.Locale() != DefaultLocale {
		t.Fatalf("Locale() = %q", m.Locale())
	}
	if m.Scheduler() == nil {
		t.Fatal("expected scheduler")
	}
}

func TestWithSeparatorRules(t *testing.T) {
	m, err := New(
		WithLocale("de-CH"),
		WithSeparatorRules("de_CH", SeparatorRules{Decimal: ".", Group: "'"}),
		WithSeparatorRules("", SeparatorRules{Decimal: "?"}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := m.FormatFloat(1234567.5); got != "1'234'567.50" {
		t.Fatalf("Format() = %q", got)
	}
}

func TestParseDecimalPlaces(t *testing.T) {
	valid := []struct {
		input    any
		expected int
	}{
		{3, 3},
		{int64(4), 4},
		{uint64(1), 1},
		{float64(2), 2},
		{"0", 0},
		{" 7 ", 7},
	}
	for _, tt := range valid {
		got, err := ParseDecimalPlaces(tt.input)
		if err != nil || got != tt.expected {
			t.Errorf("ParseDecimalPlaces(%v) = %d,%v want %d", tt.input, got, err, tt.expected)
		}
	}

	for _, input := range []any{-1, 1.5, "x", nil, true} {
		if _, err := ParseDecimalPlaces(input); !errors.Is(err, ErrInvalidDecimalPlaces) {
			t.Errorf("ParseDecimalPlaces(%v) err = %v", input, err)
		}
	}
}
