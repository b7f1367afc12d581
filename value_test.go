package inputmask

import (
	"math"
	"testing"
)

func TestValueKinds(t *testing.T) {
	if !(Value{}).IsEmpty() || !Empty().IsEmpty() {
		t.Fatal("zero value should be empty")
	}
	if Number(1).Kind() != KindNumber || Text("1").Kind() != KindString {
		t.Fatal("unexpected kinds")
	}
	if KindEmpty.String() != "empty" || KindNumber.String() != "number" || KindString.String() != "string" {
		t.Fatal("unexpected kind names")
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		a, b     Value
		expected bool
	}{
		{Empty(), Value{}, true},
		{Number(1.5), Number(1.5), true},
		{Number(1.5), Number(1.25), false},
		{Text("1.50"), Text("1.50"), true},
		{Text("1.50"), Text("1.5"), false},
		{Number(1), Text("1"), false},
		{Number(0), Empty(), false},
	}
	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.expected {
			t.Errorf("%v.Equal(%v) = %v want %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestValueConversions(t *testing.T) {
	if got := Text("12345.6789").Float64(); got != 12345.6789 {
		t.Fatalf("Float64() = %v", got)
	}
	if got := Text("oops").Float64(); got != 0 {
		t.Fatalf("Float64(bad text) = %v", got)
	}
	if got := Text("98765432109876543.21").Decimal().String(); got != "98765432109876543.21" {
		t.Fatalf("Decimal() = %s", got)
	}
	if !Number(math.NaN()).Decimal().IsZero() || !Number(math.Inf(-1)).Decimal().IsZero() {
		t.Fatal("non-finite numbers should read as zero")
	}
	if Number(12.5).String() != "12.5" || Empty().String() != "" {
		t.Fatal("unexpected String()")
	}
}
