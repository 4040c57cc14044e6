// Package wcwidth provides utilities for determining the column width of
// characters when displayed on the terminal.
package wcwidth

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/width"
)

var (
	overrideMutex sync.RWMutex
	override      = map[rune]int{}
)

// OfRune returns the column width of the rune.
func OfRune(r rune) int {
	overrideMutex.RLock()
	w, ok := override[r]
	overrideMutex.RUnlock()
	if ok {
		return w
	}
	switch {
	case r == 0,
		unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf),
		0x1160 <= r && r <= 0x11FF, // Hangul jamo medial vowels and final consonants
		r == 0x200B:
		return 0
	case unicode.IsControl(r):
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// Override overrides the column width of a rune. A negative w removes the
// override.
func Override(r rune, w int) {
	overrideMutex.Lock()
	defer overrideMutex.Unlock()
	if w < 0 {
		delete(override, r)
	} else {
		override[r] = w
	}
}

// Unoverride removes the override of a rune.
func Unoverride(r rune) {
	overrideMutex.Lock()
	defer overrideMutex.Unlock()
	delete(override, r)
}

// Of returns the column width of a string, assuming no soft line breaks.
func Of(s string) (w int) {
	for _, r := range s {
		w += OfRune(r)
	}
	return
}

// Trim trims the string s so that it has a width of at most wmax.
func Trim(s string, wmax int) string {
	w := 0
	for i, r := range s {
		w += OfRune(r)
		if w > wmax {
			return s[:i]
		}
	}
	return s
}

// Force forces the string s to the given width by trimming and padding.
func Force(s string, width int) string {
	w := 0
	for i, r := range s {
		w0 := OfRune(r)
		w += w0
		if w > width {
			w -= w0
			s = s[:i]
			break
		}
	}
	return s + strings.Repeat(" ", width-w)
}

// TrimEachLine trims each line of s so that it is no wider than the specified
// width.
func TrimEachLine(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = Trim(lines[i], width)
	}
	return strings.Join(lines, "\n")
}
