// Package entropy turns a stream of die rolls into canonical seed entropy.
//
// Assembly has no output side effects: the result is a pure function of the
// strength and the ordered rolls the RollSource yields.
package entropy

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/eykd/diceseed-go/internal/domain"
)

// ErrRollsExhausted is returned by a SliceSource that runs out of rolls.
var ErrRollsExhausted = errors.New("not enough die rolls")

// RollRequest describes the roll being asked for.
type RollRequest struct {
	// Index is the 1-based roll number.
	Index         int
	BitsGenerated int
	TotalBits     int
}

// RollSource yields die outcomes on demand. Implementations return an error
// only to abort the whole assembly.
type RollSource interface {
	NextRoll(ctx context.Context, req RollRequest) (int, error)
}

// Result holds the outcome of an assembly.
type Result struct {
	Strength domain.Strength
	// Entropy is the canonical-length output.
	Entropy []byte
	// Rolls is the ordered audit of pairs consumed.
	Rolls         []domain.RollPair
	BitsGenerated int
	// Raw is the byte-aligned roll-derived entropy the checksum was taken over.
	Raw      []byte
	Checksum domain.BitString
	// Candidate is the checksummed byte sequence before canonicalization.
	Candidate []byte
}

// Assemble collects rolls from src and converts them into canonical entropy
// for the given strength.
func Assemble(ctx context.Context, strength domain.Strength, src RollSource) (*Result, error) {
	if !strength.Valid() {
		return nil, fmt.Errorf("%w: %d bits", domain.ErrInvalidStrength, strength.Bits())
	}

	total := strength.TotalBits()
	var acc domain.BitString
	var rolls []domain.RollPair
	generated := 0

	for n := 1; n <= strength.PairsNeeded() && generated < total; n++ {
		first, err := src.NextRoll(ctx, RollRequest{Index: 2*n - 1, BitsGenerated: generated, TotalBits: total})
		if err != nil {
			return nil, err
		}
		second, err := src.NextRoll(ctx, RollRequest{Index: 2 * n, BitsGenerated: generated, TotalBits: total})
		if err != nil {
			return nil, err
		}
		pair, err := domain.NewRollPair(first, second)
		if err != nil {
			return nil, fmt.Errorf("roll %d: %w", 2*n-1, err)
		}
		rolls = append(rolls, pair)

		bits := pair.Bits().Prefix(total - generated)
		acc = acc.Append(bits)
		generated += bits.Len()
	}

	rawBits := acc.TruncateToByte()
	raw := rawBits.Bytes()

	digest := sha256.Sum256(raw)
	checksum := domain.BitStringFromBytes(digest[:]).Prefix(strength.ChecksumBits())

	candidate := rawBits.Append(checksum).TruncateToByte().Bytes()

	return &Result{
		Strength:      strength,
		Entropy:       domain.Canonicalize(candidate),
		Rolls:         rolls,
		BitsGenerated: generated,
		Raw:           raw,
		Checksum:      checksum,
		Candidate:     candidate,
	}, nil
}

// SliceSource serves rolls from a fixed sequence.
type SliceSource struct {
	rolls []int
	next  int
}

// NewSliceSource returns a SliceSource over rolls.
func NewSliceSource(rolls []int) *SliceSource {
	return &SliceSource{rolls: rolls}
}

// NextRoll returns the next roll, or ErrRollsExhausted.
func (s *SliceSource) NextRoll(ctx context.Context, req RollRequest) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.next >= len(s.rolls) {
		return 0, fmt.Errorf("%w: roll %d requested, %d supplied", ErrRollsExhausted, req.Index, len(s.rolls))
	}
	r := s.rolls[s.next]
	s.next++
	return r, nil
}

// Consumed returns how many rolls have been served.
func (s *SliceSource) Consumed() int { return s.next }

// AssembleRolls assembles entropy from a fixed roll sequence.
func AssembleRolls(ctx context.Context, strength domain.Strength, rolls []int) (*Result, error) {
	return Assemble(ctx, strength, NewSliceSource(rolls))
}
