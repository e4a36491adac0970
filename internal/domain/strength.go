// Package domain holds the value types behind dice-derived seed entropy.
package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidStrength is returned when a strength is not one of the
// supported entropy sizes.
var ErrInvalidStrength = errors.New("invalid entropy strength")

// Strength is the number of entropy bits in a seed, excluding the checksum.
type Strength int

// Supported strengths.
const (
	Strength128 Strength = 128
	Strength160 Strength = 160
	Strength192 Strength = 192
	Strength224 Strength = 224
	Strength256 Strength = 256
)

var strengths = [...]Strength{Strength128, Strength160, Strength192, Strength224, Strength256}

// Strengths returns the supported strengths in selector order. The result
// is a copy.
func Strengths() []Strength {
	s := strengths
	return s[:]
}

// ParseStrength validates a bit count.
func ParseStrength(bits int) (Strength, error) {
	s := Strength(bits)
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %d bits (want one of 128, 160, 192, 224, 256)", ErrInvalidStrength, bits)
	}
	return s, nil
}

// StrengthFromChoice maps the interactive selector value (1-5) to a strength.
func StrengthFromChoice(choice int) (Strength, error) {
	if choice < 1 || choice > len(strengths) {
		return 0, fmt.Errorf("%w: choice %d (want 1-%d)", ErrInvalidStrength, choice, len(strengths))
	}
	return strengths[choice-1], nil
}

// StrengthFromWords maps a mnemonic word count (12, 15, 18, 21, 24) to a strength.
func StrengthFromWords(words int) (Strength, error) {
	for _, s := range strengths {
		if s.WordCount() == words {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %d words (want one of 12, 15, 18, 21, 24)", ErrInvalidStrength, words)
}

// Valid reports whether s is a supported strength.
func (s Strength) Valid() bool {
	for _, v := range strengths {
		if s == v {
			return true
		}
	}
	return false
}

// Bits returns the entropy bit count.
func (s Strength) Bits() int { return int(s) }

// EntropyBytes returns the entropy size in bytes.
func (s Strength) EntropyBytes() int { return int(s) / 8 }

// ChecksumBits returns the number of checksum bits appended to the entropy.
func (s Strength) ChecksumBits() int { return s.EntropyBytes() * 8 / 32 }

// TotalBits returns entropy plus checksum bits.
func (s Strength) TotalBits() int { return s.EntropyBytes()*8 + s.ChecksumBits() }

// WordCount returns the length of the mnemonic encoding this strength.
func (s Strength) WordCount() int { return s.TotalBits() / 11 }

// RollsNeeded returns the number of die rolls requested for this strength.
// A roll carries log2(6) bits of entropy.
func (s Strength) RollsNeeded() int {
	return int(math.Ceil(float64(s.TotalBits()) / math.Log2(6)))
}

// PairsNeeded returns the upper bound on roll pairs collected.
func (s Strength) PairsNeeded() int {
	return (s.RollsNeeded() + 1) / 2
}

// String implements fmt.Stringer.
func (s Strength) String() string {
	return fmt.Sprintf("%d bits", int(s))
}
