// Package seed provides the application service that turns dice rolls into
// a mnemonic seed.
package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/eykd/diceseed-go/internal/domain"
	"github.com/eykd/diceseed-go/internal/entropy"
	"github.com/eykd/diceseed-go/internal/logging"
)

// Encoder abstracts converting canonical entropy into mnemonic words.
type Encoder interface {
	Encode(entropy []byte) ([]string, error)
}

// Outcome holds the result of a generation run.
type Outcome struct {
	Strength      domain.Strength
	Entropy       []byte
	Rolls         []domain.RollPair
	BitsGenerated int
	Words         []string
}

// Phrase returns the words joined by single spaces.
func (o *Outcome) Phrase() string {
	return strings.Join(o.Words, " ")
}

// Service coordinates roll collection, entropy assembly and encoding.
type Service struct {
	encoder Encoder
	log     zerolog.Logger
}

// NewService creates a Service with the given dependencies.
func NewService(encoder Encoder, log zerolog.Logger) *Service {
	return &Service{encoder: encoder, log: log}
}

// Generate collects rolls from src, assembles entropy for strength and
// encodes it. Errors from src abort the run and are returned unchanged.
func (s *Service) Generate(ctx context.Context, strength domain.Strength, src entropy.RollSource) (*Outcome, error) {
	s.log.Debug().Int(logging.Strength, strength.Bits()).
		Int(logging.TotalBits, strength.TotalBits()).
		Int(logging.Pairs, strength.PairsNeeded()).
		Msg(logging.StrengthChosen)

	res, err := entropy.Assemble(ctx, strength, src)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Int(logging.Bits, res.BitsGenerated).Int(logging.Pairs, len(res.Rolls)).Msg(logging.EntropyCollected)
	s.log.Debug().Int(logging.ChecksumBits, res.Checksum.Len()).Msg(logging.ChecksumComputed)
	s.log.Debug().Int(logging.Bits, len(res.Candidate)*8).Msg(logging.FullEntropy)
	s.log.Debug().Int(logging.Bytes, len(res.Entropy)).Msg(logging.FinalEntropy)

	words, err := s.encoder.Encode(res.Entropy)
	if err != nil {
		return nil, fmt.Errorf("encoding %d-byte entropy: %w", len(res.Entropy), err)
	}
	s.log.Debug().Int(logging.Words, len(words)).Msg(logging.MnemonicEncoded)

	return &Outcome{
		Strength:      res.Strength,
		Entropy:       res.Entropy,
		Rolls:         res.Rolls,
		BitsGenerated: res.BitsGenerated,
		Words:         words,
	}, nil
}
