package password

import (
	"regexp"
	"unicode/utf16"
)

// PatternKind identifies a penalised password shape.
type PatternKind int

const (
	PatternCapitalWordDigit PatternKind = iota
	PatternRepeatedCharacter
	PatternKeyboardSequence
)

func (k PatternKind) String() string {
	switch k {
	case PatternCapitalWordDigit:
		return "capital_word_digit"
	case PatternRepeatedCharacter:
		return "repeated_character"
	case PatternKeyboardSequence:
		return "keyboard_sequence"
	default:
		return "unknown"
	}
}

// Penalty is a triggered rule.
type Penalty struct {
	Kind    PatternKind
	Bits    float64
	Message string
}

// Rule deducts Bits when Match reports true.
type Rule struct {
	Kind    PatternKind
	Bits    float64
	Message string
	Match   func(string) bool
}

var (
	capitalWordDigitPattern = regexp.MustCompile(`^[A-Z][a-z]+[0-9]$`)
	keyboardSequencePattern = regexp.MustCompile(`(?i)123|abc|qwerty|asdf`)
)

// Rules are evaluated in order and every one is checked; penalties add up.
var Rules = []Rule{
	{
		Kind:    PatternCapitalWordDigit,
		Bits:    10,
		Message: "Common 'Capital + word + number' pattern.",
		Match:   capitalWordDigitPattern.MatchString,
	},
	{
		Kind:    PatternRepeatedCharacter,
		Bits:    15,
		Message: "Repeated characters (aaa) are easy to guess.",
		Match:   hasTripleRepeat,
	},
	{
		Kind:    PatternKeyboardSequence,
		Bits:    20,
		Message: "Common keyboard sequences detected.",
		Match:   keyboardSequencePattern.MatchString,
	},
}

// hasTripleRepeat reports whether any UTF-16 code unit other than a line
// terminator appears three times in a row. Surrogate halves are separate
// units, so a repeated astral character never forms a run.
func hasTripleRepeat(s string) bool {
	var prev uint16
	run := 0
	for _, r := range utf16.Encode([]rune(s)) {
		if isLineTerminator(r) {
			run = 0
			continue
		}
		if run > 0 && r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run >= 3 {
			return true
		}
	}
	return false
}

func isLineTerminator(r uint16) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

func evaluate(rules []Rule, s string) []Penalty {
	var penalties []Penalty
	for _, rule := range rules {
		if rule.Match(s) {
			penalties = append(penalties, Penalty{Kind: rule.Kind, Bits: rule.Bits, Message: rule.Message})
		}
	}
	return penalties
}
