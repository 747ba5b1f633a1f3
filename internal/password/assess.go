package password

import (
	"math"
	"unicode/utf16"
)

// GuessRate is the assumed attacker throughput in guesses per second.
const GuessRate = 1e14

// Character class contributions to the pool.
const (
	PoolLowercase = 26
	PoolUppercase = 26
	PoolDigit     = 10
	PoolSymbol    = 32
)

// State distinguishes an empty input from an assessed one.
type State int

const (
	StateEmpty State = iota
	StateAssessed
)

// Assessment is the full result of estimating one input. Length counts
// UTF-16 code units, so an astral character counts twice.
type Assessment struct {
	State        State
	Length       int
	Pool         int
	RawBits      float64
	Penalties    []Penalty
	Bits         float64
	Tier         Tier
	CrackSeconds float64
}

// Issues returns the messages of the triggered penalties in rule order.
func (a Assessment) Issues() []string {
	if len(a.Penalties) == 0 {
		return nil
	}
	issues := make([]string, len(a.Penalties))
	for i, p := range a.Penalties {
		issues[i] = p.Message
	}
	return issues
}

// TotalPenalty is the sum of all deducted bits.
func (a Assessment) TotalPenalty() float64 {
	total := 0.0
	for _, p := range a.Penalties {
		total += p.Bits
	}
	return total
}

// Assess estimates the strength of text. The result depends only on text.
func Assess(text string) Assessment {
	if text == "" {
		return Assessment{State: StateEmpty, Tier: TierWaiting}
	}

	length := len(utf16.Encode([]rune(text)))
	pool := PoolSize(text)

	raw := 0.0
	if pool > 0 {
		raw = float64(length) * math.Log2(float64(pool))
	}

	a := Assessment{
		State:     StateAssessed,
		Length:    length,
		Pool:      pool,
		RawBits:   raw,
		Penalties: evaluate(Rules, text),
	}
	a.Bits = math.Max(0, raw-a.TotalPenalty())
	a.Tier = Classify(a.Bits)
	a.CrackSeconds = CrackSeconds(a.Bits)
	return a
}

// PoolSize sums the contribution of each character class present in text.
func PoolSize(text string) int {
	var lower, upper, digit, symbol bool
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}

	pool := 0
	if lower {
		pool += PoolLowercase
	}
	if upper {
		pool += PoolUppercase
	}
	if digit {
		pool += PoolDigit
	}
	if symbol {
		pool += PoolSymbol
	}
	return pool
}

// CrackSeconds is the time to exhaust 2^bits guesses at GuessRate.
func CrackSeconds(bits float64) float64 {
	return math.Pow(2, bits) / GuessRate
}
