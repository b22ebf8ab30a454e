package textfield

import (
	"github.com/iw2rmb/eddy/internal/grapheme"
	"github.com/iw2rmb/eddy/store"
)

// Reduce is the text field reducer. Unrecognized actions, and malformed
// CharacterTyped payloads (empty or multi-cluster Char), return text
// unchanged so renderers can skip the update on equality.
func Reduce(text string, action store.Action) string {
	switch a := action.(type) {
	case CharacterTyped:
		if !IsCharacter(a.Char) {
			return text
		}
		return text + a.Char
	case Backspace:
		return grapheme.TrimLast(text)
	default:
		return text
	}
}

// IsCharacter reports whether s has the shape CharacterTyped expects:
// exactly one grapheme cluster.
func IsCharacter(s string) bool {
	return grapheme.IsSingle(s)
}

// Length returns the number of characters in text, counting the way the
// reducer edits: one per grapheme cluster.
func Length(text string) int {
	return grapheme.Count(text)
}
