package symbols

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
)

// Mode selects what counts as one symbol.
type Mode int

const (
	// RuneMode treats every rune as a symbol.
	RuneMode Mode = iota
	// GraphemeMode treats every grapheme cluster as a symbol.
	GraphemeMode
)

func (m Mode) String() string {
	switch m {
	case RuneMode:
		return "runes"
	case GraphemeMode:
		return "graphemes"
	}
	return "<unknown>"
}

// ParseMode finds a Mode from its name. Recognized are "runes" and "graphemes"
// (case-insensitive); the empty string selects RuneMode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "rune", "runes":
		return RuneMode, nil
	case "grapheme", "graphemes":
		return GraphemeMode, nil
	}
	return RuneMode, fmt.Errorf("unknown symbol mode %q", s)
}

// Runes splits text into runes.
func Runes(text string) []rune {
	return []rune(text)
}

var setupGraphemes sync.Once

// Graphemes splits text into grapheme clusters.
func Graphemes(text string) []string {
	if text == "" {
		return []string{}
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(text)
	seq := make([]string, gstr.Len())
	for i := range seq {
		seq[i] = gstr.Nth(i)
	}
	tracer().Debugf("symbols: %d bytes => %d graphemes", len(text), len(seq))
	return seq
}
