package inputmask

import (
	"strings"
	"unicode/utf8"
)

// Decorator wraps formatted numbers in a literal prefix and suffix.
//
// Matching is positional: a prefix ending in a digit or a suffix starting
// with one is not told apart from the number it touches.
type Decorator struct {
	Prefix string
	Suffix string
}

// Decorate returns Prefix + formatted + Suffix.
func (d Decorator) Decorate(formatted string) string {
	return d.Prefix + formatted + d.Suffix
}

// Undecorate returns the text between the prefix and suffix. ok is false
// when candidate is too short to hold both or either literal was edited.
func (d Decorator) Undecorate(candidate string) (middle string, ok bool) {
	if len(candidate) < len(d.Prefix)+len(d.Suffix) {
		return "", false
	}
	if !strings.HasPrefix(candidate, d.Prefix) || !strings.HasSuffix(candidate, d.Suffix) {
		return "", false
	}
	return candidate[len(d.Prefix) : len(candidate)-len(d.Suffix)], true
}

// PrefixLen is the prefix length in runes.
func (d Decorator) PrefixLen() int {
	return utf8.RuneCountInString(d.Prefix)
}

// SuffixLen is the suffix length in runes.
func (d Decorator) SuffixLen() int {
	return utf8.RuneCountInString(d.Suffix)
}
