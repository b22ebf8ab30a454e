// Package grapheme provides cluster-accurate helpers for single-line text.
//
// "Character" in the public API means grapheme cluster, never byte or rune:
// a combining sequence or a ZWJ emoji counts as one character.
package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	n := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		n++
	}
	return n
}

// IsSingle reports whether text is exactly one grapheme cluster.
func IsSingle(text string) bool {
	if text == "" {
		return false
	}
	g := uniseg.NewGraphemes(text)
	if !g.Next() {
		return false
	}
	return !g.Next()
}

// Last returns the final grapheme cluster of text, or "" for empty text.
func Last(text string) string {
	if text == "" {
		return ""
	}
	var last string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		last = g.Str()
	}
	return last
}

// TrimLast returns text without its final grapheme cluster. Trimming empty
// text returns empty text.
func TrimLast(text string) string {
	if text == "" {
		return ""
	}
	start := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		from, _ := g.Positions()
		start = from
	}
	return text[:start]
}

// Width returns the terminal-cell width of text. Zero-width clusters fall
// back to the uniseg width, which handles emoji sequences better.
func Width(text string) int {
	total := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		c := g.Str()
		w := runewidth.StringWidth(c)
		if w <= 0 {
			if fallback := uniseg.StringWidth(c); fallback > w {
				w = fallback
			}
		}
		if w > 0 {
			total += w
		}
	}
	return total
}
