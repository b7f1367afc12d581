package inputmask

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Preset is a named mask definition loaded from a file.
type Preset struct {
	Prefix        string `json:"prefix" yaml:"prefix" toml:"prefix"`
	Suffix        string `json:"suffix" yaml:"suffix" toml:"suffix"`
	DecimalPlaces Places `json:"decimal_places" yaml:"decimal_places" toml:"decimal_places"`
	Locale        string `json:"locale" yaml:"locale" toml:"locale"`
	StringValue   bool   `json:"string_value" yaml:"string_value" toml:"string_value"`
	AllowEmpty    bool   `json:"allow_empty" yaml:"allow_empty" toml:"allow_empty"`
}

// Options converts the preset into mask options. Unset decimal places keep
// DefaultDecimalPlaces.
func (p Preset) Options() []Option {
	opts := []Option{
		WithPrefix(p.Prefix),
		WithSuffix(p.Suffix),
		WithLocale(p.Locale),
		WithStringValue(p.StringValue),
		WithAllowEmpty(p.AllowEmpty),
	}
	if places, ok := p.DecimalPlaces.Int(); ok {
		opts = append(opts, WithDecimalPlaces(places))
	}
	return opts
}

type presetFile struct {
	Masks      map[string]Preset         `json:"masks" yaml:"masks" toml:"masks"`
	Separators map[string]SeparatorRules `json:"separators" yaml:"separators" toml:"separators"`
}

// PresetLoader reads preset files. Later files override earlier ones, mask
// by mask and locale by locale.
type PresetLoader struct {
	paths  []string
	logger *slog.Logger
}

func NewPresetLoader(paths ...string) *PresetLoader {
	return &PresetLoader{paths: append([]string(nil), paths...)}
}

// WithLogger sets the logger used to report loaded files.
func (l *PresetLoader) WithLogger(logger *slog.Logger) *PresetLoader {
	if l == nil {
		return l
	}
	l.logger = logger
	return l
}

func (l *PresetLoader) Load() (*PresetStore, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, ErrNoPresetPaths
	}

	masks := make(map[string]Preset)
	separators := make(map[string]SeparatorRules)

	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("inputmask: read %s: %w", path, err)
		}

		file, err := decodePresetFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("inputmask: decode %s: %w", path, err)
		}

		for name, preset := range file.Masks {
			name = strings.TrimSpace(name)
			if name == "" {
				return nil, fmt.Errorf("inputmask: empty preset name in %s", path)
			}
			masks[name] = preset
		}
		for locale, rules := range file.Separators {
			separators[normalizeLocale(locale)] = rules
		}

		if l.logger != nil {
			l.logger.Debug("inputmask: loaded presets",
				slog.String("path", path),
				slog.Int("masks", len(file.Masks)),
				slog.Int("separators", len(file.Separators)))
		}
	}

	return NewPresetStore(masks, separators), nil
}

func decodePresetFile(path string, data []byte) (presetFile, error) {
	var file presetFile
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return presetFile{}, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return presetFile{}, err
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &file); err != nil {
			return presetFile{}, err
		}
	default:
		return presetFile{}, fmt.Errorf("%w: %q", ErrUnsupportedPresetFormat, ext)
	}
	return file, nil
}

// PresetStore is an immutable snapshot of loaded presets.
type PresetStore struct {
	presets    map[string]Preset
	separators map[string]SeparatorRules
	names      []string
}

// NewPresetStore copies presets and separator overrides into a store.
func NewPresetStore(presets map[string]Preset, separators map[string]SeparatorRules) *PresetStore {
	store := &PresetStore{
		presets:    make(map[string]Preset, len(presets)),
		separators: make(map[string]SeparatorRules, len(separators)),
		names:      make([]string, 0, len(presets)),
	}
	for name, preset := range presets {
		store.presets[name] = preset
		store.names = append(store.names, name)
	}
	for locale, rules := range separators {
		store.separators[locale] = rules
	}

	// make names deterministic
	sort.Strings(store.names)
	return store
}

func (s *PresetStore) Get(name string) (Preset, bool) {
	if s == nil {
		return Preset{}, false
	}
	preset, ok := s.presets[name]
	return preset, ok
}

// Names returns the preset names in sorted order.
func (s *PresetStore) Names() []string {
	if s == nil || len(s.names) == 0 {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Separators returns a copy of the separator overrides.
func (s *PresetStore) Separators() map[string]SeparatorRules {
	if s == nil {
		return nil
	}
	out := make(map[string]SeparatorRules, len(s.separators))
	for locale, rules := range s.separators {
		out[locale] = rules
	}
	return out
}

// Mask builds the named preset with the store's separator overrides. extra
// options are applied last.
func (s *PresetStore) Mask(name string, extra ...Option) (*Mask, error) {
	preset, ok := s.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	opts := preset.Options()
	for locale, rules := range s.separators {
		opts = append(opts, WithSeparatorRules(locale, rules))
	}
	opts = append(opts, extra...)
	return New(opts...)
}
