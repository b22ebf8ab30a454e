package textfield

import "github.com/iw2rmb/eddy/store"

// CharacterTyped appends one typed character. Char must be a single
// grapheme cluster; anything else makes the action a no-op.
type CharacterTyped struct {
	Char string
}

// Backspace removes the last character.
type Backspace struct{}

func (CharacterTyped) Tag() string { return "CHARACTER_TYPED" }
func (Backspace) Tag() string      { return "BACKSPACE" }

// InsertCharacter is the action creator for typing ch.
func InsertCharacter(ch string) store.Action {
	return CharacterTyped{Char: ch}
}

// RemoveCharacter is the action creator for deleting the last character.
func RemoveCharacter() store.Action {
	return Backspace{}
}
