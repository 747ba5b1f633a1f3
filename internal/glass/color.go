package glass

import (
	"fmt"
	"strconv"
	"unicode"
)

// Channel is one decoded colour component. Valid is false when the source
// digits could not be parsed, in which case the channel renders as NaN.
type Channel struct {
	Value int
	Valid bool
}

func (c Channel) String() string {
	if !c.Valid {
		return "NaN"
	}
	return strconv.Itoa(c.Value)
}

// RGB is a tint split into its red, green and blue channels.
type RGB struct {
	R, G, B Channel
}

// String renders the channels as "R, G, B".
func (c RGB) String() string {
	return fmt.Sprintf("%s, %s, %s", c.R, c.G, c.B)
}

// Valid reports whether all three channels parsed.
func (c RGB) Valid() bool {
	return c.R.Valid && c.G.Valid && c.B.Valid
}

// HexToRGB decodes a "#rrggbb" tint. The pairs at offsets 1-2, 3-4 and 5-6
// are parsed independently; anything after offset 6 is ignored.
func HexToRGB(hex string) RGB {
	runes := []rune(hex)
	return RGB{
		R: parseHexComponent(sliceRunes(runes, 1, 3)),
		G: parseHexComponent(sliceRunes(runes, 3, 5)),
		B: parseHexComponent(sliceRunes(runes, 5, 7)),
	}
}

func sliceRunes(r []rune, start, end int) []rune {
	if start > len(r) {
		start = len(r)
	}
	if end > len(r) {
		end = len(r)
	}
	return r[start:end]
}

// parseHexComponent reads a base-16 integer prefix: leading whitespace and
// a single sign are skipped, an optional 0x prefix is accepted, and parsing
// stops at the first non-hex digit. No digits at all yields an invalid channel.
func parseHexComponent(s []rune) Channel {
	i := 0
	for i < len(s) && (unicode.IsSpace(s[i]) || s[i] == '\uFEFF') {
		i++
	}

	sign := 1
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}

	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		i += 2
	}

	value, digits := 0, 0
	for ; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			break
		}
		value = value*16 + d
		digits++
	}

	if digits == 0 {
		return Channel{}
	}
	return Channel{Value: sign * value, Valid: true}
}

func hexDigit(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}
