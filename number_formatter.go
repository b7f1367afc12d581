package inputmask

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberFormatter renders numbers with the grouping and decimal symbols of
// one locale and a fixed count of fraction digits.
//
// Values are rounded half away from zero on their shortest decimal
// representation (1.005 -> 1.01, 2.5 -> 3, -2.5 -> -3) and rendered digit
// for digit from the exact decimal, so text values of any length survive.
// Digits are always ASCII.
type NumberFormatter struct {
	locale   string
	symbols  numberSymbols
	fallback bool
}

// NewNumberFormatter resolves locale once. Unparseable identifiers fall back
// to DefaultLocale. provider may be nil.
func NewNumberFormatter(locale string, provider *SeparatorRulesProvider) *NumberFormatter {
	tag, resolved, ok := resolveLocale(locale)

	f := &NumberFormatter{
		locale:   resolved,
		fallback: !ok,
	}

	if rules, found := provider.Get(resolved); found {
		f.symbols = symbolsFromRules(rules)
		return f
	}

	// Force the latin numbering system so formatted digits stay readable by
	// the digit extractor.
	if latn, err := tag.SetTypeForKey("nu", "latn"); err == nil {
		tag = latn
	}
	f.symbols = cldrSymbols(message.NewPrinter(tag))
	return f
}

// Locale returns the identifier actually used for formatting.
func (f *NumberFormatter) Locale() string {
	return f.locale
}

// FellBack reports whether the requested locale was replaced by DefaultLocale.
func (f *NumberFormatter) FellBack() bool {
	return f.fallback
}

// FormatFloat formats value. NaN and infinities format as zero.
func (f *NumberFormatter) FormatFloat(value float64, places int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	return f.FormatDecimal(decimal.NewFromFloat(value), places)
}

// FormatDecimal formats an exact decimal.
func (f *NumberFormatter) FormatDecimal(value decimal.Decimal, places int) string {
	if places < 0 {
		places = 0
	}

	rounded := value.Round(int32(places))
	fixed := rounded.Abs().StringFixed(int32(places))
	integerPart, fraction, _ := strings.Cut(fixed, ".")

	s := f.symbols
	prefix, suffix := s.posPrefix, s.posSuffix
	if rounded.IsNegative() {
		prefix, suffix = s.negPrefix, s.negSuffix
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(groupDigits(integerPart, s.group, s.primary, s.secondary))
	if places > 0 {
		b.WriteString(s.decimal)
		b.WriteString(fraction)
	}
	b.WriteString(suffix)
	return b.String()
}

// FormatNumber formats value for locale with exactly decimalPlaces fraction
// digits. It never panics; unknown locales fall back to DefaultLocale.
func FormatNumber(value float64, decimalPlaces int, locale string) string {
	return NewNumberFormatter(locale, nil).FormatFloat(value, decimalPlaces)
}

// numberSymbols is the layout a NumberFormatter renders with.
type numberSymbols struct {
	decimal   string
	group     string
	primary   int
	secondary int
	posPrefix string
	posSuffix string
	negPrefix string
	negSuffix string
}

var defaultSymbols = numberSymbols{
	decimal:   ".",
	group:     ",",
	primary:   3,
	secondary: 3,
	negPrefix: "-",
}

func symbolsFromRules(rules SeparatorRules) numberSymbols {
	rules = rules.withDefaults()
	return numberSymbols{
		decimal:   rules.Decimal,
		group:     rules.Group,
		primary:   rules.GroupSize,
		secondary: rules.GroupSize,
		negPrefix: "-",
	}
}

// groupingSample has enough digits to show both grouping sizes and is exact
// as a float64.
const groupingSample = 1234567890123

// cldrSymbols reads the CLDR layout of p by printing reference numbers.
func cldrSymbols(p *message.Printer) numberSymbols {
	render := func(v float64, places int) string {
		return p.Sprintf("%v", number.Decimal(v,
			number.MinFractionDigits(places),
			number.MaxFractionDigits(places)))
	}
	return symbolsFromSamples(render(1, 0), render(-1, 0), render(0.5, 1), render(groupingSample, 0))
}

// symbolsFromSamples derives the layout from the renderings of 1, -1, 0.5
// and groupingSample. Anything it cannot read keeps the en-US default.
func symbolsFromSamples(one, minusOne, half, grouped string) numberSymbols {
	s := defaultSymbols

	if first, last, ok := digitSpan(one); ok {
		s.posPrefix, s.posSuffix = one[:first], one[last+1:]
	}
	if first, last, ok := digitSpan(minusOne); ok {
		s.negPrefix, s.negSuffix = minusOne[:first], minusOne[last+1:]
	}
	if first, last, ok := digitSpan(half); ok && last > first+1 {
		s.decimal = half[first+1 : last]
	}

	first, last, ok := digitSpan(grouped)
	if !ok {
		return s
	}
	body := grouped[first : last+1]

	var groups []int
	count := 0
	group := ""
	for i := 0; i < len(body); {
		if isASCIIDigit(body[i]) {
			count++
			i++
			continue
		}
		j := i
		for j < len(body) && !isASCIIDigit(body[j]) {
			j++
		}
		if group == "" {
			group = body[i:j]
		}
		groups = append(groups, count)
		count = 0
		i = j
	}
	groups = append(groups, count)

	if len(groups) == 1 {
		s.group, s.primary, s.secondary = "", 0, 0
		return s
	}
	s.group = group
	s.primary = groups[len(groups)-1]
	s.secondary = s.primary
	if len(groups) > 2 {
		s.secondary = groups[len(groups)-2]
	}
	return s
}

// digitSpan returns the byte offsets of the first and last ASCII digit in s.
func digitSpan(s string) (first, last int, ok bool) {
	first = strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
	if first < 0 {
		return 0, 0, false
	}
	last = strings.LastIndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
	return first, last, true
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
