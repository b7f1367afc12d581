package inputmask

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseDecimalPlaces coerces a decimal place count given as an integer,
// an integral float or a numeric string to a non-negative int.
func ParseDecimalPlaces(v any) (int, error) {
	var n int
	switch value := v.(type) {
	case int:
		n = value
	case int64:
		n = int(value)
	case uint64:
		if value > math.MaxInt32 {
			return 0, fmt.Errorf("inputmask: decimal places %d: %w", value, ErrInvalidDecimalPlaces)
		}
		n = int(value)
	case float64:
		if value != math.Trunc(value) || math.Abs(value) > math.MaxInt32 {
			return 0, fmt.Errorf("inputmask: decimal places %v: %w", value, ErrInvalidDecimalPlaces)
		}
		n = int(value)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("inputmask: decimal places %q: %w", value, ErrInvalidDecimalPlaces)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("inputmask: decimal places of type %T: %w", v, ErrInvalidDecimalPlaces)
	}

	if n < 0 {
		return 0, fmt.Errorf("inputmask: decimal places %d: %w", n, ErrInvalidDecimalPlaces)
	}
	return n, nil
}

// Places is a decimal place count that decodes from either a number or a
// numeric string in JSON, YAML and TOML presets. The zero Places is unset.
type Places struct {
	n   int
	set bool
}

// PlacesOf returns a set Places holding n.
func PlacesOf(n int) Places {
	return Places{n: n, set: true}
}

// Int returns the count and whether it was set.
func (p Places) Int() (int, bool) {
	return p.n, p.set
}

func (p *Places) assign(v any) error {
	n, err := ParseDecimalPlaces(v)
	if err != nil {
		return err
	}
	*p = PlacesOf(n)
	return nil
}

func (p *Places) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		return p.assign(unquoted)
	}
	return p.assignNumber(raw)
}

// assignNumber reads a numeric token, accepting integral floats like 4.0.
func (p *Places) assignNumber(token string) error {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return fmt.Errorf("inputmask: decimal places %q: %w", token, ErrInvalidDecimalPlaces)
	}
	return p.assign(f)
}

func (p *Places) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("inputmask: decimal places at line %d: %w", node.Line, ErrInvalidDecimalPlaces)
	}
	switch node.ShortTag() {
	case "!!null":
		return nil
	case "!!int", "!!float":
		return p.assignNumber(node.Value)
	}
	return p.assign(node.Value)
}

// UnmarshalTOML implements toml.Unmarshaler.
func (p *Places) UnmarshalTOML(v any) error {
	return p.assign(v)
}
