// Package textfield is the reducer domain for a single editable line of
// text: typed characters append, backspace removes the last character, and
// everything else is a no-op. Characters are grapheme clusters throughout.
package textfield
