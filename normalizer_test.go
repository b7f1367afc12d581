package inputmask

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractDigits(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"1,234.56", "123456"},
		{"a1,!2?3.4/", "1234"},
		{"1 234,5", "12345"},
		{"\u0661\u0662\u0663", ""},
		{"12\u00a0345,67", "1234567"},
	}
	for _, tt := range tests {
		if got := ExtractDigits(tt.input); got != tt.expected {
			t.Errorf("ExtractDigits(%q) = %q want %q", tt.input, got, tt.expected)
		}
	}
}

func TestPlaceDecimal(t *testing.T) {
	tests := []struct {
		digits   string
		places   int
		expected string
	}{
		{"1234567", 3, "1234.567"},
		{"12345", 0, "12345"},
		{"5", 2, "0.05"},
		{"", 2, "0.00"},
		{"", 0, "0"},
		{"000123", 2, "1.23"},
		{"0001", 0, "1"},
		{"123456780", 4, "12345.6780"},
	}
	for _, tt := range tests {
		if got := PlaceDecimal(tt.digits, tt.places); got != tt.expected {
			t.Errorf("PlaceDecimal(%q, %d) = %q want %q", tt.digits, tt.places, got, tt.expected)
		}
	}
}

func mustNormalize(t *testing.T, n Normalizer, raw string) Value {
	t.Helper()
	v, err := n.Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize(%q): %v", raw, err)
	}
	return v
}

func TestNormalizerNumber(t *testing.T) {
	n := Normalizer{Places: 3}

	got := mustNormalize(t, n, "1,234,567")
	if !got.Equal(Number(1234.567)) {
		t.Fatalf("Normalize = %v (%s) want 1234.567", got, got.Kind())
	}

	if got := mustNormalize(t, n, ""); !got.Equal(Number(0)) {
		t.Fatalf("Normalize(empty) = %v (%s) want 0", got, got.Kind())
	}
}

func TestNormalizerStringValue(t *testing.T) {
	n := Normalizer{Places: 0, StringValue: true}
	if got := mustNormalize(t, n, "1,2345"); !got.Equal(Text("12345")) {
		t.Fatalf("Normalize = %q (%s) want text 12345", got.String(), got.Kind())
	}

	n = Normalizer{Places: 2, StringValue: true}
	if got := mustNormalize(t, n, ""); !got.Equal(Text("0.00")) {
		t.Fatalf("Normalize(empty) = %q want 0.00", got.String())
	}
}

func TestNormalizerAllowEmpty(t *testing.T) {
	for _, stringValue := range []bool{false, true} {
		n := Normalizer{Places: 2, StringValue: stringValue, AllowEmpty: true}
		if got := mustNormalize(t, n, " ,. "); !got.IsEmpty() {
			t.Fatalf("Normalize(no digits) stringValue=%v = %v want empty", stringValue, got)
		}
		if got := mustNormalize(t, n, "0"); got.IsEmpty() {
			t.Fatalf("Normalize(\"0\") stringValue=%v should not be empty", stringValue)
		}
	}
}

func TestNormalizerOutOfRange(t *testing.T) {
	huge := "1" + strings.Repeat("0", 400)

	if _, err := (Normalizer{Places: 2}).Normalize(huge); !errors.Is(err, ErrValueOutOfRange) {
		t.Fatalf("Normalize(huge) err = %v want ErrValueOutOfRange", err)
	}

	got := mustNormalize(t, Normalizer{Places: 2, StringValue: true}, huge)
	if got.String() != "1"+strings.Repeat("0", 398)+".00" {
		t.Fatalf("Normalize(huge) text = %q", got.String())
	}
}
