package inputmask

import "unicode/utf8"

// Selection is a caret range in runes. A collapsed caret has Start == End.
type Selection struct {
	Start int
	End   int
}

// FieldState is a snapshot of a text field taken when an input event fires.
type FieldState struct {
	Value     string
	Selection Selection
}

// Field is the host text field as seen by the caret handlers.
type Field interface {
	Value() string
	SetSelectionRange(start, end int)
}

// Event is an input event delivered by the host binding. Persist, when set,
// is called before the correction is scheduled so hosts that recycle event
// objects keep this one alive.
type Event struct {
	Target  Field
	Persist func()
}

// CaretPosition returns the rune offset the caret is pinned to: right after
// the prefix for an empty field, otherwise right before the suffix.
func CaretPosition(value string, prefixLen, suffixLen int) int {
	if value == "" {
		return max(prefixLen, 0)
	}
	return max(utf8.RuneCountInString(value)-suffixLen, 0)
}
