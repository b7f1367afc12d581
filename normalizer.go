package inputmask

import (
	"fmt"
	"strconv"
	"strings"
)

// Normalizer rebuilds a value from the digits of an edited field. Separators
// are never interpreted: the last Places digits are the fraction and the
// rest is the integer part, so half-typed separators cannot break parsing.
type Normalizer struct {
	Places      int
	StringValue bool
	AllowEmpty  bool
}

// Normalize reads raw, the undecorated middle of a field. A digit run too
// large for a float64 fails with ErrValueOutOfRange; text values have no
// such limit.
func (n Normalizer) Normalize(raw string) (Value, error) {
	digits := ExtractDigits(raw)
	if digits == "" && n.AllowEmpty {
		return Empty(), nil
	}

	assembled := PlaceDecimal(digits, n.Places)
	if n.StringValue {
		return Text(assembled), nil
	}

	f, err := strconv.ParseFloat(assembled, 64)
	if err != nil {
		return Value{}, fmt.Errorf("inputmask: %d digits: %w", len(digits), ErrValueOutOfRange)
	}
	return Number(f), nil
}

// ExtractDigits keeps the ASCII digits of s, in order.
func ExtractDigits(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			builder.WriteByte(c)
		}
	}
	return builder.String()
}

// PlaceDecimal splits digits into integer and fraction parts, padding the
// fraction with leading zeros when fewer than places digits exist. Leading
// zeros of the integer part are dropped, keeping at least one.
//
//	PlaceDecimal("1234567", 3) == "1234.567"
//	PlaceDecimal("5", 2)       == "0.05"
//	PlaceDecimal("", 0)        == "0"
func PlaceDecimal(digits string, places int) string {
	if places < 0 {
		places = 0
	}
	if len(digits) < places {
		digits = strings.Repeat("0", places-len(digits)) + digits
	}

	split := len(digits) - places
	integerPart := strings.TrimLeft(digits[:split], "0")
	if integerPart == "" {
		integerPart = "0"
	}
	if places == 0 {
		return integerPart
	}
	return integerPart + "." + digits[split:]
}
