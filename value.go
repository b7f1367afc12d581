package inputmask

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind identifies which representation a Value carries.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "empty"
	}
}

// Value is the stored side of a masked field. Masks configured with
// WithStringValue produce KindString values holding a dot-decimal digit
// string; all other masks produce KindNumber. The zero Value is empty.
type Value struct {
	kind Kind
	num  float64
	text string
}

// Number wraps a float64.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Text wraps a dot-decimal digit string such as "1234.50".
func Text(s string) Value {
	return Value{kind: KindString, text: s}
}

// Empty returns the value of a cleared field.
func Empty() Value {
	return Value{}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsEmpty() bool {
	return v.kind == KindEmpty
}

// Float64 returns the numeric reading of v. Empty values and text that does
// not parse read as zero.
func (v Value) Float64() float64 {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Decimal returns v as an exact decimal. Text values are read digit for
// digit; NaN, infinities and unparseable text become zero.
func (v Value) Decimal() decimal.Decimal {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(v.num)
	case KindString:
		d, err := decimal.NewFromString(strings.TrimSpace(v.text))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindString:
		return v.text
	default:
		return ""
	}
}

// Equal reports whether both values have the same kind and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == other.num
	case KindString:
		return v.text == other.text
	default:
		return true
	}
}
