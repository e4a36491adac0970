package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRoll is returned when a die outcome is outside 1-6.
var ErrInvalidRoll = errors.New("invalid die roll")

// Die faces.
const (
	MinRoll = 1
	MaxRoll = 6
)

// symbolWidth is the minimum width of a pair's binary rendering.
const symbolWidth = 5

// ValidateRoll checks that r is a six-sided die outcome.
func ValidateRoll(r int) error {
	if r < MinRoll || r > MaxRoll {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidRoll, r, MinRoll, MaxRoll)
	}
	return nil
}

// RollPair is two consecutive die outcomes combined into one base-36 symbol.
type RollPair struct {
	First  int `json:"first" yaml:"first"`
	Second int `json:"second" yaml:"second"`
}

// NewRollPair validates both rolls and returns the pair.
func NewRollPair(first, second int) (RollPair, error) {
	if err := ValidateRoll(first); err != nil {
		return RollPair{}, err
	}
	if err := ValidateRoll(second); err != nil {
		return RollPair{}, err
	}
	return RollPair{First: first, Second: second}, nil
}

// Symbol returns the pair as a value in [0,35].
func (p RollPair) Symbol() int {
	return (p.First-1)*6 + (p.Second - 1)
}

// Bits returns the symbol in binary, zero-padded to five digits. Symbols
// 32-35 do not fit in five bits and render with six.
func (p RollPair) Bits() BitString {
	s := strconv.FormatInt(int64(p.Symbol()), 2)
	if len(s) < symbolWidth {
		s = strings.Repeat("0", symbolWidth-len(s)) + s
	}
	return BitString(s)
}

// String renders the pair as "(a, b)".
func (p RollPair) String() string {
	return fmt.Sprintf("(%d, %d)", p.First, p.Second)
}

// FormatRollAudit renders pairs as a bracketed list, e.g. "[(1, 2), (6, 6)]".
func FormatRollAudit(pairs []RollPair) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
