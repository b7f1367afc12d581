package inputmask

import (
	"slices"
	"strings"
)

// SeparatorRules replaces the CLDR symbols of a locale.
type SeparatorRules struct {
	Decimal   string `json:"decimal" yaml:"decimal" toml:"decimal"`
	Group     string `json:"group" yaml:"group" toml:"group"`
	GroupSize int    `json:"group_size" yaml:"group_size" toml:"group_size"`
}

func (r SeparatorRules) withDefaults() SeparatorRules {
	if r.Decimal == "" {
		r.Decimal = "."
	}
	if r.GroupSize <= 0 {
		r.GroupSize = 3
	}
	return r
}

// SeparatorRulesProvider looks up separator overrides for a locale
type SeparatorRulesProvider struct {
	rules map[string]SeparatorRules
}

// NewSeparatorRulesProvider copies rules keyed by locale identifier.
func NewSeparatorRulesProvider(rules map[string]SeparatorRules) *SeparatorRulesProvider {
	copied := make(map[string]SeparatorRules, len(rules))
	for locale, rule := range rules {
		locale = normalizeLocale(locale)
		if locale == "" {
			continue
		}
		copied[strings.ToLower(locale)] = rule.withDefaults()
	}
	return &SeparatorRulesProvider{rules: copied}
}

// Get tries the exact locale, then its parent chain, then its base language.
// ok is false when no override applies and CLDR data should be used.
func (p *SeparatorRulesProvider) Get(locale string) (SeparatorRules, bool) {
	if p == nil || len(p.rules) == 0 {
		return SeparatorRules{}, false
	}

	for _, candidate := range localeCandidates(locale) {
		if rules, ok := p.rules[strings.ToLower(candidate)]; ok {
			return rules, true
		}
	}
	return SeparatorRules{}, false
}

// groupDigits applies group separators from right to left: the rightmost
// group holds primary digits, every group before it secondary digits.
// integerPart must be ASCII digits.
func groupDigits(integerPart, sep string, primary, secondary int) string {
	if sep == "" || primary <= 0 || len(integerPart) <= primary {
		return integerPart
	}
	if secondary <= 0 {
		secondary = primary
	}

	head := integerPart[:len(integerPart)-primary]
	groups := []string{integerPart[len(integerPart)-primary:]}
	for len(head) > secondary {
		groups = append(groups, head[len(head)-secondary:])
		head = head[:len(head)-secondary]
	}
	groups = append(groups, head)
	slices.Reverse(groups)
	return strings.Join(groups, sep)
}
