// Package mnemonic encodes canonical entropy as a BIP39 English word list.
package mnemonic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"

	"github.com/eykd/diceseed-go/internal/domain"
)

// ErrNonCanonicalLength is returned when entropy is not 16, 20, 24, 28 or 32 bytes.
var ErrNonCanonicalLength = errors.New("entropy is not a canonical length")

// BIP39Encoder encodes entropy with the BIP39 English wordlist.
type BIP39Encoder struct{}

// Encode returns the mnemonic words for entropy.
func (BIP39Encoder) Encode(entropy []byte) ([]string, error) {
	if !domain.IsCanonicalLength(len(entropy)) {
		return nil, fmt.Errorf("%w: %d bytes", ErrNonCanonicalLength, len(entropy))
	}
	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("encoding mnemonic: %w", err)
	}
	return strings.Fields(phrase), nil
}
